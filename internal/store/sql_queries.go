package store

import (
	"encoding/json"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/billiard-pos/models"
)

const (
	createUser = `INSERT INTO users (login, name, password_hash, role, active)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING user_id, login, name, password_hash, role, active, created_at;`

	findUserByLogin = `SELECT user_id, login, name, password_hash, role, active, created_at
    FROM users
    WHERE login = $1;`
)

const (
	productsTable       = "products"
	productSKUConstrait = "products_sku_key"
)

var productColumns = []string{
	"id", "name", "sku", "category", "description", "unit",
	"price", "images", "tags", "active", "created_at", "updated_at",
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var productSortOrders = map[string]string{
	models.ProductSortNewest:    "created_at DESC, id DESC",
	models.ProductSortName:      "name ASC, id ASC",
	models.ProductSortPriceAsc:  "price ASC, id ASC",
	models.ProductSortPriceDesc: "price DESC, id DESC",
}

func returningProduct() string {
	return "RETURNING " + strings.Join(productColumns, ", ")
}

func buildCreateProductQuery(p models.Product) (string, []any, error) {
	images, tags, err := encodeLists(p.Images, p.Tags)
	if err != nil {
		return "", nil, err
	}
	return psql.Insert(productsTable).
		Columns("name", "sku", "category", "description", "unit", "price", "images", "tags", "active").
		Values(p.Name, nullIfEmpty(p.SKU), p.Category, p.Description, p.Unit, p.Price,
			sq.Expr("?::jsonb", images), sq.Expr("?::jsonb", tags), p.Active).
		Suffix(returningProduct()).
		ToSql()
}

func buildGetProductQuery(id int64) (string, []any, error) {
	return psql.Select(productColumns...).
		From(productsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func productFilterCondition(f models.ProductFilter) (sq.And, error) {
	cond := sq.And{}
	if f.Search != "" {
		cond = append(cond, sq.ILike{"name": "%" + escapeLike(f.Search) + "%"})
	}
	if f.Category != "" {
		cond = append(cond, sq.Eq{"category": f.Category})
	}
	if f.Tag != "" {
		tag, err := json.Marshal([]string{f.Tag})
		if err != nil {
			return nil, err
		}
		cond = append(cond, sq.Expr("tags @> ?::jsonb", string(tag)))
	}
	if f.Active != nil {
		cond = append(cond, sq.Eq{"active": *f.Active})
	}
	return cond, nil
}

func buildListProductsQuery(f models.ProductFilter) (string, []any, error) {
	cond, err := productFilterCondition(f)
	if err != nil {
		return "", nil, err
	}
	order, ok := productSortOrders[f.Sort]
	if !ok {
		order = productSortOrders[models.ProductSortNewest]
	}
	return psql.Select(productColumns...).
		From(productsTable).
		Where(cond).
		OrderBy(order).
		Limit(uint64(max(f.Limit, 1))).
		Offset(uint64(f.Offset())).
		ToSql()
}

func buildCountProductsQuery(f models.ProductFilter) (string, []any, error) {
	cond, err := productFilterCondition(f)
	if err != nil {
		return "", nil, err
	}
	return psql.Select("COUNT(*)").From(productsTable).Where(cond).ToSql()
}

func buildAllProductsQuery() (string, []any, error) {
	return psql.Select(productColumns...).From(productsTable).OrderBy("id ASC").ToSql()
}

// buildUpdateProductQuery builds a partial UPDATE touching only the non-nil
// fields of u.
func buildUpdateProductQuery(id int64, u models.ProductUpdate) (string, []any, error) {
	set := map[string]any{}
	if u.Name != nil {
		set["name"] = *u.Name
	}
	if u.SKU != nil {
		set["sku"] = nullIfEmpty(*u.SKU)
	}
	if u.Category != nil {
		set["category"] = *u.Category
	}
	if u.Description != nil {
		set["description"] = *u.Description
	}
	if u.Unit != nil {
		set["unit"] = *u.Unit
	}
	if u.Price != nil {
		set["price"] = *u.Price
	}
	if u.Active != nil {
		set["active"] = *u.Active
	}
	return updateProduct(id).SetMap(set).ToSql()
}

func buildSetProductImagesQuery(id int64, images []string) (string, []any, error) {
	encoded, err := json.Marshal(nonNil(images))
	if err != nil {
		return "", nil, err
	}
	return updateProduct(id).Set("images", sq.Expr("?::jsonb", string(encoded))).ToSql()
}

// buildAddProductTagsQuery appends the tags not yet present, keeping the
// existing order.
func buildAddProductTagsQuery(id int64, tags []string) (string, []any, error) {
	encoded, err := json.Marshal(nonNil(tags))
	if err != nil {
		return "", nil, err
	}
	return updateProduct(id).Set("tags", sq.Expr(
		`tags || COALESCE((SELECT jsonb_agg(t.value ORDER BY t.ord) FROM jsonb_array_elements_text(?::jsonb) WITH ORDINALITY AS t(value, ord) WHERE NOT (products.tags @> jsonb_build_array(t.value))), '[]'::jsonb)`,
		string(encoded),
	)).ToSql()
}

func buildRemoveProductTagsQuery(id int64, tags []string) (string, []any, error) {
	encoded, err := json.Marshal(nonNil(tags))
	if err != nil {
		return "", nil, err
	}
	return updateProduct(id).Set("tags", sq.Expr(
		`COALESCE((SELECT jsonb_agg(t.value ORDER BY t.ord) FROM jsonb_array_elements_text(products.tags) WITH ORDINALITY AS t(value, ord) WHERE t.value NOT IN (SELECT jsonb_array_elements_text(?::jsonb))), '[]'::jsonb)`,
		string(encoded),
	)).ToSql()
}

func buildDeleteProductQuery(id int64) (string, []any, error) {
	return psql.Delete(productsTable).Where(sq.Eq{"id": id}).ToSql()
}

func updateProduct(id int64) sq.UpdateBuilder {
	return psql.Update(productsTable).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id}).
		Suffix(returningProduct())
}

func encodeLists(images, tags []string) (string, string, error) {
	encodedImages, err := json.Marshal(nonNil(images))
	if err != nil {
		return "", "", fmt.Errorf("encode images: %w", err)
	}
	encodedTags, err := json.Marshal(nonNil(tags))
	if err != nil {
		return "", "", fmt.Errorf("encode tags: %w", err)
	}
	return string(encodedImages), string(encodedTags), nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
