package handler

import (
	"fmt"

	"github.com/MKhiriev/billiard-pos/internal/config"
	"github.com/MKhiriev/billiard-pos/internal/handler/http"
	"github.com/MKhiriev/billiard-pos/internal/logger"
	"github.com/MKhiriev/billiard-pos/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg *config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.Server.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	options, err := http.NewOptions(cfg)
	if err != nil {
		return nil, fmt.Errorf("error building http options: %w", err)
	}

	httpHandler, err := http.NewHandler(services, options, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating http handler: %w", err)
	}

	return &Handlers{HTTP: httpHandler}, nil
}
