package main

import (
	"fmt"

	"github.com/MKhiriev/billiard-pos/internal/service"
	"github.com/MKhiriev/billiard-pos/internal/store"
	"github.com/spf13/cobra"
)

func newBackupCmd() *cobra.Command {
	backupCmd := &cobra.Command{
		Use:   "backup",
		Short: "Product catalog backups",
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Write a catalog snapshot now",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cfg, db, log, err := openDB(cmd)
			if err != nil {
				return err
			}
			defer db.Close()

			if dir, _ := cmd.Flags().GetString("dir"); dir != "" {
				cfg.Workers.BackupDir = dir
			}

			backups := service.NewBackupService(store.NewProductRepository(db, log), cfg.Workers, log)
			path, err := backups.BackupProducts(ctx)
			if err != nil {
				return fmt.Errorf("backup failed: %w", err)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "backup written to %s\n", path)
			return err
		},
	}
	runCmd.Flags().String("dir", "", "Backup directory (overrides WORKERS_BACKUP_DIR)")

	backupCmd.AddCommand(runCmd)
	return backupCmd
}
