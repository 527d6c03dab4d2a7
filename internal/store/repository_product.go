package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/billiard-pos/internal/logger"
	"github.com/MKhiriev/billiard-pos/models"
)

// productRepository is the PostgreSQL-backed implementation of
// [ProductRepository]. Images and tags are stored as JSONB arrays.
type productRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewProductRepository constructs a [ProductRepository] backed by db.
func NewProductRepository(db *DB, logger *logger.Logger) ProductRepository {
	logger.Debug().Msg("creating product repository")
	return &productRepository{
		db:     db,
		logger: logger,
	}
}

type queryBuilder func() (string, []any, error)

func (r *productRepository) CreateProduct(ctx context.Context, product models.Product) (models.Product, error) {
	return r.queryOne(ctx, "CreateProduct", func() (string, []any, error) {
		return buildCreateProductQuery(product)
	}, false)
}

func (r *productRepository) GetProduct(ctx context.Context, id int64) (models.Product, error) {
	return r.queryOne(ctx, "GetProduct", func() (string, []any, error) {
		return buildGetProductQuery(id)
	}, true)
}

func (r *productRepository) UpdateProduct(ctx context.Context, id int64, update models.ProductUpdate) (models.Product, error) {
	return r.queryOne(ctx, "UpdateProduct", func() (string, []any, error) {
		return buildUpdateProductQuery(id, update)
	}, false)
}

func (r *productRepository) SetProductImages(ctx context.Context, id int64, images []string) (models.Product, error) {
	return r.queryOne(ctx, "SetProductImages", func() (string, []any, error) {
		return buildSetProductImagesQuery(id, images)
	}, false)
}

func (r *productRepository) AddProductTags(ctx context.Context, id int64, tags []string) (models.Product, error) {
	return r.queryOne(ctx, "AddProductTags", func() (string, []any, error) {
		return buildAddProductTagsQuery(id, tags)
	}, false)
}

func (r *productRepository) RemoveProductTags(ctx context.Context, id int64, tags []string) (models.Product, error) {
	return r.queryOne(ctx, "RemoveProductTags", func() (string, []any, error) {
		return buildRemoveProductTagsQuery(id, tags)
	}, false)
}

// ListProducts returns one page of products matching filter together with
// the total number of matches.
func (r *productRepository) ListProducts(ctx context.Context, filter models.ProductFilter) (models.ProductPage, error) {
	log := logger.FromContext(ctx)

	countQuery, countArgs, err := buildCountProductsQuery(filter)
	if err != nil {
		return models.ProductPage{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	listQuery, listArgs, err := buildListProductsQuery(filter)
	if err != nil {
		return models.ProductPage{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	page := models.ProductPage{Page: filter.Page, Limit: filter.Limit}
	err = r.db.withRetry(ctx, func() error {
		return r.db.QueryRowContext(ctx, countQuery, countArgs...).Scan(&page.Total)
	})
	if err != nil {
		log.Err(err).Str("func", "*productRepository.ListProducts").Msg("error counting products")
		return models.ProductPage{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	err = r.db.withRetry(ctx, func() error {
		items, err := r.queryMany(ctx, listQuery, listArgs)
		page.Items = items
		return err
	})
	if err != nil {
		log.Err(err).Str("func", "*productRepository.ListProducts").Msg("error listing products")
		return models.ProductPage{}, err
	}

	return page, nil
}

// AllProducts returns the whole catalog ordered by id.
func (r *productRepository) AllProducts(ctx context.Context) ([]models.Product, error) {
	query, args, err := buildAllProductsQuery()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var products []models.Product
	err = r.db.withRetry(ctx, func() error {
		products, err = r.queryMany(ctx, query, args)
		return err
	})
	return products, err
}

func (r *productRepository) DeleteProduct(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteProductQuery(id)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*productRepository.DeleteProduct").Msg("error deleting product")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrProductNotFound
	}
	return nil
}

// queryOne runs a statement returning a single product row. Reads are
// retried on transient errors, writes are not.
func (r *productRepository) queryOne(ctx context.Context, op string, build queryBuilder, read bool) (models.Product, error) {
	log := logger.FromContext(ctx)

	query, args, err := build()
	if err != nil {
		return models.Product{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var product models.Product
	run := func() error {
		return scanProduct(r.db.QueryRowContext(ctx, query, args...), &product)
	}
	if read {
		err = r.db.withRetry(ctx, run)
	} else {
		err = run()
	}

	switch {
	case err == nil:
		return product, nil
	case errors.Is(err, sql.ErrNoRows):
		return models.Product{}, ErrProductNotFound
	case isUniqueViolation(err, productSKUConstrait):
		return models.Product{}, ErrProductSKUExists
	default:
		log.Err(err).Str("func", "*productRepository."+op).Msg("error executing product query")
		return models.Product{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
}

func (r *productRepository) queryMany(ctx context.Context, query string, args []any) ([]models.Product, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	products := make([]models.Product, 0)
	for rows.Next() {
		var product models.Product
		if err = scanProduct(rows, &product); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		products = append(products, product)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}
	return products, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner, p *models.Product) error {
	var (
		sku    sql.NullString
		images []byte
		tags   []byte
	)
	err := row.Scan(&p.ID, &p.Name, &sku, &p.Category, &p.Description, &p.Unit,
		&p.Price, &images, &tags, &p.Active, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return err
	}
	p.SKU = sku.String

	p.Images, p.Tags = []string{}, []string{}
	if len(images) > 0 {
		if err = json.Unmarshal(images, &p.Images); err != nil {
			return fmt.Errorf("%w: images: %w", ErrScanningRow, err)
		}
	}
	if len(tags) > 0 {
		if err = json.Unmarshal(tags, &p.Tags); err != nil {
			return fmt.Errorf("%w: tags: %w", ErrScanningRow, err)
		}
	}
	return nil
}
