package http

import (
	"fmt"

	"github.com/MKhiriev/billiard-pos/internal/config"
	"github.com/MKhiriev/billiard-pos/internal/logger"
	"github.com/MKhiriev/billiard-pos/internal/service"
	"github.com/MKhiriev/billiard-pos/internal/utils"
)

type Handler struct {
	services *service.Services
	options  Options

	requestIDs *utils.RequestIDGenerator
	views      *views
	metrics    *metrics
	limiter    *clientLimiter

	logger *logger.Logger
}

func NewHandler(services *service.Services, options Options, logger *logger.Logger) (*Handler, error) {
	views, err := newViews()
	if err != nil {
		return nil, fmt.Errorf("error parsing templates: %w", err)
	}

	h := &Handler{
		services:   services,
		options:    options,
		requestIDs: utils.NewRequestIDGenerator(),
		views:      views,
		logger:     logger,
	}
	if options.Features.Enabled(config.FeatureMetrics) {
		h.metrics = newMetrics()
	}
	if options.Features.Enabled(config.FeatureRateLimit) {
		h.limiter = newClientLimiter(options.RateLimit, options.RateBurst)
	}

	logger.Info().Strs("features", options.Features.List()).Msg("http handler created")
	return h, nil
}
