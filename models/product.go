// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Product is a single catalog entry sold at the counter (cue sticks, chalk,
// drinks, table-time packages and so on).
type Product struct {
	// ID is the database identifier of the product.
	ID int64 `json:"id"`

	// Name is the display name shown on receipts and in the admin UI.
	Name string `json:"name"`

	// SKU is an optional unique stock keeping unit.
	SKU string `json:"sku,omitempty"`

	// Category groups products in the catalog (e.g. "equipment", "drinks").
	Category string `json:"category,omitempty"`

	// Description is free-form text shown on the product page.
	Description string `json:"description,omitempty"`

	// Unit is the selling unit (e.g. "piece", "hour", "bottle").
	Unit string `json:"unit,omitempty"`

	// Price is the selling price in VND. Never negative.
	Price float64 `json:"price"`

	// Images holds public paths of uploaded product images.
	Images []string `json:"images"`

	// Tags are free labels used for filtering.
	Tags []string `json:"tags"`

	// Active reports whether the product can currently be sold.
	Active bool `json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ProductUpdate carries the optional fields of a partial product update.
// Nil fields are left untouched.
type ProductUpdate struct {
	Name        *string  `json:"name,omitempty"`
	SKU         *string  `json:"sku,omitempty"`
	Category    *string  `json:"category,omitempty"`
	Description *string  `json:"description,omitempty"`
	Unit        *string  `json:"unit,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Active      *bool    `json:"active,omitempty"`
}

// IsEmpty reports whether the update does not change anything.
func (u ProductUpdate) IsEmpty() bool {
	return u.Name == nil && u.SKU == nil && u.Category == nil && u.Description == nil &&
		u.Unit == nil && u.Price == nil && u.Active == nil
}

// ProductFilter describes a catalog listing request.
type ProductFilter struct {
	// Search matches product names case-insensitively.
	Search string

	Category string
	Tag      string

	// Active filters by the active flag when non-nil.
	Active *bool

	// Sort is one of the ProductSort* values.
	Sort string

	Page  int
	Limit int
}

// Supported sort orders for product listings.
const (
	ProductSortNewest    = "newest"
	ProductSortName      = "name"
	ProductSortPriceAsc  = "price_asc"
	ProductSortPriceDesc = "price_desc"
)

// Offset returns the row offset of the requested page.
func (f ProductFilter) Offset() int {
	if f.Page < 1 {
		return 0
	}
	return (f.Page - 1) * f.Limit
}

// ProductPage is one page of a product listing.
type ProductPage struct {
	Items []Product `json:"items"`
	Total int64     `json:"total"`
	Page  int       `json:"page"`
	Limit int       `json:"limit"`
}
