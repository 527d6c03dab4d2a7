package main

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/billiard-pos/internal/service"
	"github.com/MKhiriev/billiard-pos/internal/store"
	"github.com/MKhiriev/billiard-pos/models"
	"github.com/spf13/cobra"
)

var errPasswordRequired = errors.New("password is required")

func newUserCmd() *cobra.Command {
	userCmd := &cobra.Command{
		Use:   "user",
		Short: "Manage user accounts",
	}

	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create a user account",
		Long: `Create a user account. The password is taken from --password or, when
the flag is omitted, from the first line of standard input.`,
		Args: cobra.NoArgs,
		RunE: runUserCreate,
	}
	createCmd.Flags().String("login", "", "Sign-in name")
	createCmd.Flags().String("name", "", "Display name")
	createCmd.Flags().String("role", string(models.RoleStaff), "Role: staff or admin")
	createCmd.Flags().String("password", "", "Password")
	_ = createCmd.MarkFlagRequired("login")

	userCmd.AddCommand(createCmd)
	return userCmd
}

func runUserCreate(cmd *cobra.Command, _ []string) error {
	login, _ := cmd.Flags().GetString("login")
	name, _ := cmd.Flags().GetString("name")
	roleName, _ := cmd.Flags().GetString("role")

	role, err := parseRole(roleName)
	if err != nil {
		return err
	}
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
	user, err := auth.RegisterUser(ctx, models.User{Login: login, Name: name, Role: role, Active: true}, password)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	_, err = fmt.Fprintf(cmd.OutOrStdout(), "created user %d (%s, %s)\n", user.UserID, user.Login, user.Role)
	return err
}

func parseRole(name string) (models.Role, error) {
	role := models.Role(strings.ToLower(strings.TrimSpace(name)))
	if !role.Valid() {
		return "", fmt.Errorf("unknown role %q: use %s or %s", name, models.RoleStaff, models.RoleAdmin)
	}
	return role, nil
}

// readPassword returns the --password flag or the first line of stdin.
func readPassword(cmd *cobra.Command) (string, error) {
	password, _ := cmd.Flags().GetString("password")
	if password != "" {
		return password, nil
	}

	scanner := bufio.NewScanner(cmd.InOrStdin())
	if scanner.Scan() {
		password = strings.TrimRight(scanner.Text(), "\r")
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	if password == "" {
		return "", errPasswordRequired
	}
	return password, nil
}
