package service

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/MKhiriev/billiard-pos/internal/config"
	"github.com/MKhiriev/billiard-pos/internal/logger"
	"github.com/MKhiriev/billiard-pos/internal/store"
	"github.com/MKhiriev/billiard-pos/models"
)

const backupTimeLayout = "20060102-150405"

// productBackup is the on-disk layout of a catalog snapshot.
type productBackup struct {
	CreatedAt time.Time        `json:"created_at"`
	Count     int              `json:"count"`
	Products  []models.Product `json:"products"`
}

type backupService struct {
	repository store.ProductRepository
	dir        string
	now        func() time.Time
	logger     *logger.Logger
}

func NewBackupService(repository store.ProductRepository, cfg config.Workers, logger *logger.Logger) BackupService {
	return &backupService{
		repository: repository,
		dir:        cfg.BackupDir,
		now:        time.Now,
		logger:     logger,
	}
}

// BackupProducts writes products-<timestamp>.json into the backup directory.
// The file is written under a temporary name and renamed when complete.
func (s *backupService) BackupProducts(ctx context.Context) (string, error) {
	if s.dir == "" {
		return "", ErrNoBackupDir
	}

	products, err := s.repository.AllProducts(ctx)
	if err != nil {
		return "", fmt.Errorf("error reading products: %w", err)
	}

	if err = os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("error creating backup directory: %w", err)
	}

	now := s.now().UTC()
	target := filepath.Join(s.dir, "products-"+now.Format(backupTimeLayout)+".json")

	tmp, err := os.CreateTemp(s.dir, ".products-*.json")
	if err != nil {
		return "", fmt.Errorf("error creating backup file: %w", err)
	}
	defer os.Remove(tmp.Name())

	encoder := json.NewEncoder(tmp)
	encoder.SetIndent("", "  ")
	err = encoder.Encode(productBackup{CreatedAt: now, Count: len(products), Products: products})
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return "", fmt.Errorf("error writing backup file: %w", err)
	}

	if err = os.Rename(tmp.Name(), target); err != nil {
		return "", fmt.Errorf("error moving backup file: %w", err)
	}

	logger.FromContext(ctx).Info().Str("file", target).Int("products", len(products)).Msg("product backup written")
	return target, nil
}
