package main

import (
	"database/sql"
	"fmt"

	"github.com/MKhiriev/billiard-pos/migrations"
	"github.com/spf13/cobra"
)

func newMigrateCmd() *cobra.Command {
	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
	}

	migrateCmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, _, db, _, err := openDB(cmd)
			if err != nil {
				return err
			}
			defer db.Close()

			if err = db.Migrate(); err != nil {
				return err
			}
			return printSchemaVersion(cmd, db.DB)
		},
	})

	migrateCmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Print the current schema version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, _, db, _, err := openDB(cmd)
			if err != nil {
				return err
			}
			defer db.Close()

			return printSchemaVersion(cmd, db.DB)
		},
	})

	return migrateCmd
}

func printSchemaVersion(cmd *cobra.Command, db *sql.DB) error {
	version, err := migrations.Status(db)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "schema version: %d\n", version)
	return err
}
