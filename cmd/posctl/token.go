package main

import (
	"fmt"
	"time"

	"github.com/MKhiriev/billiard-pos/internal/service"
	"github.com/MKhiriev/billiard-pos/internal/store"
	"github.com/MKhiriev/billiard-pos/models"
	"github.com/spf13/cobra"
)

func newTokenCmd() *cobra.Command {
	tokenCmd := &cobra.Command{
		Use:   "token",
		Short: "Work with access tokens",
	}

	issueCmd := &cobra.Command{
		Use:   "issue",
		Short: "Sign in as a user and print a bearer token",
		Args:  cobra.NoArgs,
		RunE:  runTokenIssue,
	}
	issueCmd.Flags().String("login", "", "Sign-in name")
	issueCmd.Flags().String("password", "", "Password (read from stdin when omitted)")
	_ = issueCmd.MarkFlagRequired("login")

	tokenCmd.AddCommand(issueCmd)
	return tokenCmd
}

func runTokenIssue(cmd *cobra.Command, _ []string) error {
	login, _ := cmd.Flags().GetString("login")
	password, err := readPassword(cmd)
	if err != nil {
		return err
	}

	ctx, cfg, db, log, err := openDB(cmd)
	if err != nil {
		return err
	}
	defer db.Close()

	auth := service.NewAuthService(store.NewUserRepository(db, log), cfg.App, log)
	user, err := auth.Login(ctx, models.Credentials{Login: login, Password: password})
	if err != nil {
		return fmt.Errorf("failed to sign in: %w", err)
	}
	token, err := auth.CreateToken(ctx, user)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if token.Claims.ExpiresAt != nil {
		fmt.Fprintf(out, "# expires %s\n", token.Claims.ExpiresAt.Time.Format(time.RFC3339))
	}
	_, err = fmt.Fprintln(out, token.SignedString)
	return err
}
