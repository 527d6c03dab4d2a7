package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/MKhiriev/billiard-pos/internal/logger"
	"github.com/MKhiriev/billiard-pos/migrations"
)

// DB is the shared PostgreSQL handle of all repositories.
type DB struct {
	*sql.DB
	logger *logger.Logger

	// retryDelays are the pauses between attempts of a retried read.
	retryDelays []time.Duration
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}

// withRetry runs fn and repeats it after a pause while it fails with a
// transient PostgreSQL error. Only idempotent reads go through it.
func (db *DB) withRetry(ctx context.Context, fn func() error) error {
	err := fn()
	for _, delay := range db.retryDelays {
		if err == nil || !isRetryable(err) {
			return err
		}
		logger.FromContext(ctx).Warn().Err(err).Dur("delay", delay).Msg("retrying transient database error")

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
		err = fn()
	}
	return err
}
