package workers

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/billiard-pos/internal/logger"
	"github.com/MKhiriev/billiard-pos/internal/service"
	"github.com/robfig/cron/v3"
)

// BackupWorker snapshots the product catalog on a cron schedule.
type BackupWorker struct {
	backups service.BackupService
	spec    string
	logger  *logger.Logger

	mu     sync.Mutex
	cron   *cron.Cron
	cancel context.CancelFunc
}

// NewBackupWorker validates the standard five-field cron spec up front so
// that a bad schedule fails at startup instead of at the first tick.
func NewBackupWorker(backups service.BackupService, spec string, logger *logger.Logger) (*BackupWorker, error) {
	if _, err := cron.ParseStandard(spec); err != nil {
		return nil, fmt.Errorf("invalid backup schedule %q: %w", spec, err)
	}
	return &BackupWorker{
		backups: backups,
		spec:    spec,
		logger:  logger.GetChildLogger(),
	}, nil
}

func (w *BackupWorker) Run(ctx context.Context) {
	w.Stop()

	w.mu.Lock()
	defer w.mu.Unlock()

	jobCtx, cancel := context.WithCancel(ctx)
	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)))
	// spec was validated by the constructor
	_, _ = c.AddFunc(w.spec, func() { w.runOnce(jobCtx) })
	c.Start()

	w.cron = c
	w.cancel = cancel
	w.logger.Info().Str("schedule", w.spec).Msg("backup worker started")

	go func() {
		<-jobCtx.Done()
		w.stop(c)
	}()
}

// Stop halts the schedule and waits for a running backup to finish. Safe to
// call on a worker that is not running.
func (w *BackupWorker) Stop() {
	w.stop(nil)
}

// stop halts the running schedule. A non-nil only limits it to that
// schedule, so a stale context watcher never stops a newer run.
func (w *BackupWorker) stop(only *cron.Cron) {
	w.mu.Lock()
	c, cancel := w.cron, w.cancel
	if c == nil || (only != nil && only != c) {
		w.mu.Unlock()
		return
	}
	w.cron, w.cancel = nil, nil
	w.mu.Unlock()

	<-c.Stop().Done()
	cancel()
	w.logger.Info().Msg("backup worker stopped")
}

func (w *BackupWorker) runOnce(ctx context.Context) {
	path, err := w.backups.BackupProducts(ctx)
	if err != nil {
		w.logger.Err(err).Msg("scheduled product backup failed")
		return
	}
	w.logger.Info().Str("path", path).Msg("scheduled product backup written")
}
