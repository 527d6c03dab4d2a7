package store

import (
	"context"
	"io"

	"github.com/MKhiriev/billiard-pos/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists staff accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByLogin(ctx context.Context, login string) (models.User, error)
}

// ProductRepository persists the product catalog.
type ProductRepository interface {
	CreateProduct(ctx context.Context, product models.Product) (models.Product, error)
	GetProduct(ctx context.Context, id int64) (models.Product, error)
	ListProducts(ctx context.Context, filter models.ProductFilter) (models.ProductPage, error)
	AllProducts(ctx context.Context) ([]models.Product, error)
	UpdateProduct(ctx context.Context, id int64, update models.ProductUpdate) (models.Product, error)
	SetProductImages(ctx context.Context, id int64, images []string) (models.Product, error)
	AddProductTags(ctx context.Context, id int64, tags []string) (models.Product, error)
	RemoveProductTags(ctx context.Context, id int64, tags []string) (models.Product, error)
	DeleteProduct(ctx context.Context, id int64) error
}

// UploadStorage writes uploaded files to the local upload directory.
type UploadStorage interface {
	// Save stores the content of r under a collision-free name derived from
	// originalName and returns the stored artifact.
	Save(ctx context.Context, originalName, contentType string, r io.Reader) (models.UploadArtifact, error)

	// Root is the directory served under /uploads.
	Root() string
}

// UploadMirror copies stored uploads to object storage.
type UploadMirror interface {
	// Name identifies the mirror kind in logs.
	Name() string

	// Put uploads the file at path under key.
	Put(ctx context.Context, key, contentType, path string) error
}
