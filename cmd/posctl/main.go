// Package main is the entry point of posctl, the administration CLI of the
// billiard-pos server. It applies migrations, manages user accounts, issues
// tokens, takes catalog backups and probes a running server.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/billiard-pos/internal/config"
	"github.com/MKhiriev/billiard-pos/internal/logger"
	"github.com/MKhiriev/billiard-pos/internal/store"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "posctl",
		Short: "Administration tool for the Billiard POS server",
		Long: `posctl works against the same configuration as the server: defaults,
an optional JSON or YAML file, the .env file and the environment.

Example:
  posctl --config pos.yaml migrate up
  posctl user create --login admin --name "Front desk" --role admin`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to configuration file (JSON or YAML)")

	rootCmd.AddCommand(
		newMigrateCmd(),
		newUserCmd(),
		newTokenCmd(),
		newBackupCmd(),
		newPingCmd(),
	)
	return rootCmd
}

// loadConfig builds the configuration the server would run with.
func loadConfig(cmd *cobra.Command) (*config.StructuredConfig, error) {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("failed to get config flag: %w", err)
	}

	var args []string
	if configPath != "" {
		args = []string{"-c", configPath}
	}

	cfg, err := config.Load(args)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}

// openDB loads the configuration and connects to its database. The caller
// closes the returned handle.
func openDB(cmd *cobra.Command) (context.Context, *config.StructuredConfig, *store.DB, *logger.Logger, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, nil, nil, err
	}

	log := logger.NewLoggerTo("posctl", cmd.ErrOrStderr())
	logger.SetEnvironment(cfg.App.Env)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	db, err := store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return ctx, cfg, db, log, nil
}
