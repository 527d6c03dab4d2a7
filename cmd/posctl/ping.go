package main

import (
	"fmt"
	"time"

	"github.com/MKhiriev/billiard-pos/internal/utils"
	"github.com/spf13/cobra"
)

const defaultServerURL = "http://localhost:3000"

func newPingCmd() *cobra.Command {
	pingCmd := &cobra.Command{
		Use:   "ping",
		Short: "Check that a server answers its health endpoint",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			url, _ := cmd.Flags().GetString("url")
			timeout, _ := cmd.Flags().GetDuration("timeout")

			health, err := utils.NewHTTPClient(url, timeout).Health(cmd.Context())
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s %s: %s (up %s)\n", health.Name, health.Version, health.Status, health.Uptime)
			return err
		},
	}
	pingCmd.Flags().String("url", defaultServerURL, "Base URL of the server")
	pingCmd.Flags().Duration("timeout", 5*time.Second, "Request timeout")
	return pingCmd
}
