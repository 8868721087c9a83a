package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	pg "contactrouter/internal/adapters/postgres"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply the reference table migrations to DATABASE_URL",
	RunE:  runMigrate,
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	cfg := setup()
	if cfg.DatabaseURL == "" {
		return errors.New("DATABASE_URL is required for migrations")
	}
	if err := pg.Migrate(cmd.Context(), cfg.DatabaseURL); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	slog.Info("migrations applied")
	return nil
}
