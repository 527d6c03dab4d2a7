package service

import (
	"context"
	"fmt"
	"io"
	"path"

	"github.com/MKhiriev/billiard-pos/internal/logger"
	"github.com/MKhiriev/billiard-pos/internal/store"
	"github.com/MKhiriev/billiard-pos/models"
)

type uploadService struct {
	storage store.UploadStorage

	// mirror is nil when no object storage copy is configured.
	mirror store.UploadMirror

	logger *logger.Logger
}

func NewUploadService(storage store.UploadStorage, mirror store.UploadMirror, logger *logger.Logger) UploadService {
	return &uploadService{
		storage: storage,
		mirror:  mirror,
		logger:  logger,
	}
}

// UploadProductImage saves the image locally and copies it to the mirror.
// The local file is the artifact: a failing mirror is logged and ignored.
func (s *uploadService) UploadProductImage(ctx context.Context, originalName, contentType string, r io.Reader) (models.UploadArtifact, error) {
	log := logger.FromContext(ctx)

	artifact, err := s.storage.Save(ctx, originalName, contentType, r)
	if err != nil {
		log.Err(err).Str("func", "*uploadService.UploadProductImage").Msg("error saving upload")
		return models.UploadArtifact{}, fmt.Errorf("error saving upload: %w", err)
	}

	if s.mirror != nil {
		key := path.Join(store.ProductUploadsSubdir, artifact.StoredName)
		if err = s.mirror.Put(ctx, key, artifact.ContentType, artifact.Path); err != nil {
			log.Warn().Err(err).Str("mirror", s.mirror.Name()).Str("key", key).Msg("upload mirror failed")
		}
	}

	log.Info().Str("stored_name", artifact.StoredName).Int64("size", artifact.Size).Msg("image uploaded")
	return artifact, nil
}
