package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/billiard-pos/internal/logger"
	"github.com/MKhiriev/billiard-pos/internal/store"
	"github.com/MKhiriev/billiard-pos/models"
)

// productService implements ProductService on top of a ProductRepository.
// Repository sentinels (store.ErrProductNotFound, store.ErrProductSKUExists)
// are passed through wrapped so the transport layer can classify them.
type productService struct {
	repository store.ProductRepository
	logger     *logger.Logger
}

func NewProductService(repository store.ProductRepository, logger *logger.Logger) ProductService {
	return &productService{
		repository: repository,
		logger:     logger,
	}
}

func (s *productService) Create(ctx context.Context, product models.Product) (models.Product, error) {
	product.Name = strings.TrimSpace(product.Name)
	if product.Name == "" || product.Price < 0 {
		return models.Product{}, ErrInvalidDataProvided
	}
	product.Tags = normalizeTags(product.Tags)

	created, err := s.repository.CreateProduct(ctx, product)
	if err != nil {
		return models.Product{}, fmt.Errorf("error creating product: %w", err)
	}

	logger.FromContext(ctx).Info().Int64("product_id", created.ID).Str("name", created.Name).Msg("product created")
	return created, nil
}

func (s *productService) Get(ctx context.Context, id int64) (models.Product, error) {
	product, err := s.repository.GetProduct(ctx, id)
	if err != nil {
		return models.Product{}, fmt.Errorf("error getting product %d: %w", id, err)
	}
	return product, nil
}

func (s *productService) List(ctx context.Context, filter models.ProductFilter) (models.ProductPage, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		return models.ProductPage{}, ErrInvalidDataProvided
	}

	page, err := s.repository.ListProducts(ctx, filter)
	if err != nil {
		return models.ProductPage{}, fmt.Errorf("error listing products: %w", err)
	}
	return page, nil
}

func (s *productService) Update(ctx context.Context, id int64, update models.ProductUpdate) (models.Product, error) {
	if update.IsEmpty() {
		return models.Product{}, ErrInvalidDataProvided
	}
	if update.Name != nil {
		name := strings.TrimSpace(*update.Name)
		if name == "" {
			return models.Product{}, ErrInvalidDataProvided
		}
		update.Name = &name
	}
	if update.Price != nil && *update.Price < 0 {
		return models.Product{}, ErrInvalidDataProvided
	}

	product, err := s.repository.UpdateProduct(ctx, id, update)
	if err != nil {
		return models.Product{}, fmt.Errorf("error updating product %d: %w", id, err)
	}
	return product, nil
}

func (s *productService) SetActive(ctx context.Context, id int64, active bool) (models.Product, error) {
	return s.Update(ctx, id, models.ProductUpdate{Active: &active})
}

func (s *productService) SetPrice(ctx context.Context, id int64, price float64) (models.Product, error) {
	return s.Update(ctx, id, models.ProductUpdate{Price: &price})
}

func (s *productService) SetImages(ctx context.Context, id int64, images []string) (models.Product, error) {
	product, err := s.repository.SetProductImages(ctx, id, images)
	if err != nil {
		return models.Product{}, fmt.Errorf("error setting images of product %d: %w", id, err)
	}
	return product, nil
}

func (s *productService) AddTags(ctx context.Context, id int64, tags []string) (models.Product, error) {
	tags = normalizeTags(tags)
	if len(tags) == 0 {
		return models.Product{}, ErrInvalidDataProvided
	}

	product, err := s.repository.AddProductTags(ctx, id, tags)
	if err != nil {
		return models.Product{}, fmt.Errorf("error adding tags to product %d: %w", id, err)
	}
	return product, nil
}

func (s *productService) RemoveTags(ctx context.Context, id int64, tags []string) (models.Product, error) {
	tags = normalizeTags(tags)
	if len(tags) == 0 {
		return models.Product{}, ErrInvalidDataProvided
	}

	product, err := s.repository.RemoveProductTags(ctx, id, tags)
	if err != nil {
		return models.Product{}, fmt.Errorf("error removing tags from product %d: %w", id, err)
	}
	return product, nil
}

func (s *productService) Remove(ctx context.Context, id int64) error {
	if err := s.repository.DeleteProduct(ctx, id); err != nil {
		return fmt.Errorf("error removing product %d: %w", id, err)
	}

	logger.FromContext(ctx).Info().Int64("product_id", id).Msg("product removed")
	return nil
}

// normalizeTags lower-cases and trims tags, dropping empty and repeated ones
// while keeping the first occurrence order.
func normalizeTags(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	return out
}
