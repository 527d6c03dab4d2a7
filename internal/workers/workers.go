package workers

import (
	"context"

	"github.com/MKhiriev/billiard-pos/internal/config"
	"github.com/MKhiriev/billiard-pos/internal/logger"
	"github.com/MKhiriev/billiard-pos/internal/service"
)

type Workers struct {
	workers []Worker
}

// NewWorkers builds the workers enabled by the feature set. A process
// without optional features gets an empty, runnable aggregate.
func NewWorkers(services *service.Services, cfg *config.StructuredConfig, logger *logger.Logger) (*Workers, error) {
	features, err := cfg.FeatureSet()
	if err != nil {
		return nil, err
	}

	ws := &Workers{}
	if features.Enabled(config.FeatureBackup) {
		backup, err := NewBackupWorker(services.BackupService, cfg.Workers.BackupSchedule, logger)
		if err != nil {
			return nil, err
		}
		ws.workers = append(ws.workers, backup)
	}

	logger.Info().Int("count", len(ws.workers)).Msg("background workers created")
	return ws, nil
}

func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Run(ctx)
	}
}

// Stop stops the workers in reverse start order.
func (w *Workers) Stop() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		w.workers[i].Stop()
	}
}
