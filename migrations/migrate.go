// Package migrations holds the embedded goose migrations of the POS database.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var embedMigrations embed.FS

var errNilDB = errors.New("db is nil")

// Migrate applies every pending migration.
func Migrate(db *sql.DB) error {
	if db == nil {
		return fmt.Errorf("migration error: %w", errNilDB)
	}

	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect("pgx"); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}

// Status returns the number of applied migrations and the embedded total.
func Status(db *sql.DB) (current int64, err error) {
	if db == nil {
		return 0, fmt.Errorf("migration error: %w", errNilDB)
	}
	goose.SetBaseFS(embedMigrations)
	if err = goose.SetDialect("pgx"); err != nil {
		return 0, fmt.Errorf("migration error setting dialect for db: %w", err)
	}
	current, err = goose.GetDBVersion(db)
	if err != nil {
		return 0, fmt.Errorf("migration error: %w", err)
	}
	return current, nil
}
