package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/blogdev/blog-api/internal/config"
)

// validMigrationCommands lists the commands accepted by -migrate.
var validMigrationCommands = []string{"up", "down", "reset", "status", "version", "create"}

// handleMigrations handles the execution of database migrations.
// It's called from run() when the -migrate flag is set.
func handleMigrations(
	ctx context.Context,
	cfg *config.Config,
	migrateCmd string,
	migrationName string,
	verbose bool,
) error {
	if !isValidMigrationCommand(migrateCmd) {
		return fmt.Errorf(
			"unknown migration command: %s (expected up, down, reset, status, version, or create)",
			migrateCmd,
		)
	}

	slog.Info("Executing migrations",
		"command", migrateCmd,
		"verbose", verbose,
		"mode", getExecutionMode())

	var args []string
	if migrateCmd == "create" {
		if migrationName == "" {
			return fmt.Errorf("migration name is required for 'create' command (use -name)")
		}
		args = append(args, migrationName)
	}

	return executeMigration(ctx, cfg, migrateCmd, verbose, args...)
}

func isValidMigrationCommand(cmd string) bool {
	for _, c := range validMigrationCommands {
		if c == cmd {
			return true
		}
	}
	return false
}
