package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/billiard-pos/internal/config"
	"github.com/MKhiriev/billiard-pos/internal/logger"
)

// NewUploadMirror builds the object storage mirror selected by cfg.Kind.
// An empty kind returns a nil mirror and no error.
func NewUploadMirror(ctx context.Context, cfg config.Mirror, log *logger.Logger) (UploadMirror, error) {
	var (
		mirror UploadMirror
		err    error
	)
	switch cfg.Kind {
	case config.MirrorNone:
		return nil, nil
	case config.MirrorS3:
		mirror, err = NewS3Mirror(ctx, cfg)
	case config.MirrorAzure:
		mirror, err = NewAzureBlobMirror(cfg)
	default:
		return nil, fmt.Errorf("%w: unknown kind %q", config.ErrInvalidMirrorConfigs, cfg.Kind)
	}
	if err != nil {
		return nil, err
	}

	log.Info().Str("mirror", mirror.Name()).Msg("upload mirror enabled")
	return mirror, nil
}

func mirrorKey(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "/" + key
}
