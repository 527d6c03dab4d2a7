package validators

import "github.com/MKhiriev/billiard-pos/models"

// Product parameter names.
const (
	FieldID          = "id"
	FieldName        = "name"
	FieldSKU         = "sku"
	FieldCategory    = "category"
	FieldDescription = "description"
	FieldUnit        = "unit"
	FieldPrice       = "price"
	FieldImages      = "images"
	FieldTags        = "tags"
	FieldActive      = "active"
	FieldSearch      = "q"
	FieldTag         = "tag"
	FieldSort        = "sort"
	FieldPage        = "page"
	FieldLimit       = "limit"
)

// Listing bounds.
const (
	DefaultPageLimit = 20
	MaxPageLimit     = 100
	maxImages        = 10
	maxTags          = 20
)

func bound(v float64) *float64 { return &v }

var productID = Field{Name: FieldID, In: InPath, Type: TypeInt, Required: true, Min: bound(1)}

func productBody(required bool) []Field {
	return []Field{
		{Name: FieldName, In: InBody, Type: TypeString, Required: required, MinLen: 1, MaxLen: 120},
		{Name: FieldSKU, In: InBody, Type: TypeString, MaxLen: 64},
		{Name: FieldCategory, In: InBody, Type: TypeString, MaxLen: 50},
		{Name: FieldDescription, In: InBody, Type: TypeString, MaxLen: 2000},
		{Name: FieldUnit, In: InBody, Type: TypeString, MaxLen: 20},
		{Name: FieldPrice, In: InBody, Type: TypeNumber, Required: required, Min: bound(0)},
		{Name: FieldImages, In: InBody, Type: TypeStrings, MaxItems: maxImages, MaxLen: 255},
		{Name: FieldTags, In: InBody, Type: TypeStrings, MaxItems: maxTags, MaxLen: 30},
		{Name: FieldActive, In: InBody, Type: TypeBool},
	}
}

// Product endpoint schemas.
var (
	ProductList = &Schema{
		Name: "products.list",
		Fields: []Field{
			{Name: FieldSearch, In: InQuery, Type: TypeString, MaxLen: 100},
			{Name: FieldCategory, In: InQuery, Type: TypeString, MaxLen: 50},
			{Name: FieldTag, In: InQuery, Type: TypeString, MaxLen: 30},
			{Name: FieldActive, In: InQuery, Type: TypeBool},
			{Name: FieldSort, In: InQuery, Type: TypeString, Enum: []string{
				models.ProductSortNewest, models.ProductSortName, models.ProductSortPriceAsc, models.ProductSortPriceDesc,
			}},
			{Name: FieldPage, In: InQuery, Type: TypeInt, Min: bound(1)},
			{Name: FieldLimit, In: InQuery, Type: TypeInt, Min: bound(1), Max: bound(MaxPageLimit)},
		},
	}

	ProductGetOne = &Schema{
		Name:   "products.getOne",
		Fields: []Field{productID},
	}

	ProductCreate = &Schema{
		Name:   "products.create",
		Fields: productBody(true),
	}

	ProductUpdate = &Schema{
		Name:           "products.update",
		Fields:         append([]Field{productID}, productBody(false)...),
		RequireAnyBody: true,
	}

	ProductSetActive = &Schema{
		Name: "products.setActive",
		Fields: []Field{
			productID,
			{Name: FieldActive, In: InBody, Type: TypeBool, Required: true},
		},
	}

	ProductSetPrice = &Schema{
		Name: "products.setPrice",
		Fields: []Field{
			productID,
			{Name: FieldPrice, In: InBody, Type: TypeNumber, Required: true, Min: bound(0)},
		},
	}

	ProductSetImages = &Schema{
		Name: "products.setImages",
		Fields: []Field{
			productID,
			{Name: FieldImages, In: InBody, Type: TypeStrings, Required: true, MaxItems: maxImages, MaxLen: 255},
		},
	}

	ProductAddTags = &Schema{
		Name: "products.addTags",
		Fields: []Field{
			productID,
			{Name: FieldTags, In: InBody, Type: TypeStrings, Required: true, MinItems: 1, MaxItems: maxTags, MaxLen: 30},
		},
	}

	ProductRemoveTags = &Schema{
		Name: "products.removeTags",
		Fields: []Field{
			productID,
			{Name: FieldTags, In: InBody, Type: TypeStrings, Required: true, MinItems: 1, MaxItems: maxTags, MaxLen: 30},
		},
	}

	ProductRemove = &Schema{
		Name:   "products.remove",
		Fields: []Field{productID},
	}
)

// ProductFromValues builds a new product from validated create values.
// Active defaults to true.
func ProductFromValues(v Values) models.Product {
	product := models.Product{Active: true, Images: []string{}, Tags: []string{}}
	product.Name, _ = v.String(FieldName)
	product.SKU, _ = v.String(FieldSKU)
	product.Category, _ = v.String(FieldCategory)
	product.Description, _ = v.String(FieldDescription)
	product.Unit, _ = v.String(FieldUnit)
	product.Price, _ = v.Float(FieldPrice)
	if images, ok := v.Strings(FieldImages); ok {
		product.Images = images
	}
	if tags, ok := v.Strings(FieldTags); ok {
		product.Tags = tags
	}
	if active, ok := v.Bool(FieldActive); ok {
		product.Active = active
	}
	return product
}

// ProductUpdateFromValues builds a partial update from validated values.
func ProductUpdateFromValues(v Values) models.ProductUpdate {
	return models.ProductUpdate{
		Name:        v.StringPtr(FieldName),
		SKU:         v.StringPtr(FieldSKU),
		Category:    v.StringPtr(FieldCategory),
		Description: v.StringPtr(FieldDescription),
		Unit:        v.StringPtr(FieldUnit),
		Price:       v.FloatPtr(FieldPrice),
		Active:      v.BoolPtr(FieldActive),
	}
}

// ProductFilterFromValues builds a listing filter with defaults applied.
func ProductFilterFromValues(v Values) models.ProductFilter {
	filter := models.ProductFilter{
		Sort:  models.ProductSortNewest,
		Page:  1,
		Limit: DefaultPageLimit,
	}
	filter.Search, _ = v.String(FieldSearch)
	filter.Category, _ = v.String(FieldCategory)
	filter.Tag, _ = v.String(FieldTag)
	filter.Active = v.BoolPtr(FieldActive)
	if sort, ok := v.String(FieldSort); ok {
		filter.Sort = sort
	}
	if page, ok := v.Int(FieldPage); ok {
		filter.Page = int(page)
	}
	if limit, ok := v.Int(FieldLimit); ok {
		filter.Limit = int(limit)
	}
	return filter
}
