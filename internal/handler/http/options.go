package http

import (
	"fmt"
	"slices"
	"time"

	"github.com/MKhiriev/billiard-pos/internal/config"
)

// Options is the immutable configuration of the HTTP pipeline. It is built
// once from the loaded configuration and passed by value.
type Options struct {
	AppName     string
	Version     string
	Development bool

	Features config.FeatureSet

	RequestTimeout time.Duration
	BodyLimit      int64
	TrustProxy     int

	UploadsDir    string
	UploadMaxSize int64

	CORSOrigins []string
	RateLimit   float64
	RateBurst   int
}

// NewOptions derives pipeline options from cfg.
func NewOptions(cfg *config.StructuredConfig) (Options, error) {
	features, err := cfg.FeatureSet()
	if err != nil {
		return Options{}, fmt.Errorf("error resolving features: %w", err)
	}

	trustProxy := 0
	if cfg.Server.TrustProxy != nil {
		trustProxy = *cfg.Server.TrustProxy
	}

	return Options{
		AppName:        cfg.App.Name,
		Version:        cfg.App.Version,
		Development:    cfg.App.IsDevelopment(),
		Features:       features,
		RequestTimeout: cfg.Server.RequestTimeout,
		BodyLimit:      cfg.Server.BodyLimit,
		TrustProxy:     trustProxy,
		UploadsDir:     cfg.Storage.Uploads.Dir,
		UploadMaxSize:  cfg.Storage.Uploads.MaxSize,
		CORSOrigins:    slices.Clone(cfg.Server.CORSOrigins),
		RateLimit:      cfg.Server.RateLimit,
		RateBurst:      cfg.Server.RateBurst,
	}, nil
}
