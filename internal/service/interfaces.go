package service

import (
	"context"
	"io"

	"github.com/MKhiriev/billiard-pos/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService manages staff accounts and the JWT credentials they sign in with.
type AuthService interface {
	RegisterUser(ctx context.Context, user models.User, password string) (models.User, error)
	Login(ctx context.Context, credentials models.Credentials) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// ProductService implements the catalog operations behind the product routes.
type ProductService interface {
	Create(ctx context.Context, product models.Product) (models.Product, error)
	Get(ctx context.Context, id int64) (models.Product, error)
	List(ctx context.Context, filter models.ProductFilter) (models.ProductPage, error)
	Update(ctx context.Context, id int64, update models.ProductUpdate) (models.Product, error)
	SetActive(ctx context.Context, id int64, active bool) (models.Product, error)
	SetPrice(ctx context.Context, id int64, price float64) (models.Product, error)
	SetImages(ctx context.Context, id int64, images []string) (models.Product, error)
	AddTags(ctx context.Context, id int64, tags []string) (models.Product, error)
	RemoveTags(ctx context.Context, id int64, tags []string) (models.Product, error)
	Remove(ctx context.Context, id int64) error
}

// UploadService stores uploaded product images.
type UploadService interface {
	UploadProductImage(ctx context.Context, originalName, contentType string, r io.Reader) (models.UploadArtifact, error)
}

// BackupService writes snapshots of the product catalog.
type BackupService interface {
	// BackupProducts writes the whole catalog to a new JSON file and returns
	// its path.
	BackupProducts(ctx context.Context) (string, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	Health(ctx context.Context) models.HealthResponse
}
