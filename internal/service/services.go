package service

import (
	"fmt"

	"github.com/MKhiriev/billiard-pos/internal/config"
	"github.com/MKhiriev/billiard-pos/internal/logger"
	"github.com/MKhiriev/billiard-pos/internal/store"
)

type Services struct {
	AuthService    AuthService
	ProductService ProductService
	UploadService  UploadService
	BackupService  BackupService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, cfg.App, logger),
		ProductService: NewProductService(storages.ProductRepository, logger),
		UploadService:  NewUploadService(storages.UploadStorage, storages.UploadMirror, logger),
		BackupService:  NewBackupService(storages.ProductRepository, cfg.Workers, logger),
		AppInfoService: appInfoService,
	}, nil
}
