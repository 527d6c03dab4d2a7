package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/billiard-pos/internal/config"
	"github.com/MKhiriev/billiard-pos/internal/logger"
)

// Storages groups every persistence dependency of the service layer.
type Storages struct {
	UserRepository    UserRepository
	ProductRepository ProductRepository
	UploadStorage     UploadStorage

	// UploadMirror is nil when mirroring is disabled.
	UploadMirror UploadMirror
}

// NewStorages wires the repositories on top of db and opens the upload
// directory and mirror described by cfg.
func NewStorages(ctx context.Context, db *DB, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	uploads, err := NewFileUploadStorage(cfg.Uploads.Dir, log)
	if err != nil {
		return nil, fmt.Errorf("error opening upload storage: %w", err)
	}

	mirror, err := NewUploadMirror(ctx, cfg.Mirror, log)
	if err != nil {
		return nil, fmt.Errorf("error creating upload mirror: %w", err)
	}

	return &Storages{
		UserRepository:    NewUserRepository(db, log),
		ProductRepository: NewProductRepository(db, log),
		UploadStorage:     uploads,
		UploadMirror:      mirror,
	}, nil
}
