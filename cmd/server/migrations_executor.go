package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net"
	"time"

	"github.com/blogdev/blog-api/internal/config"
	"github.com/blogdev/blog-api/internal/platform/postgres"
	"github.com/google/uuid"
	"github.com/pressly/goose/v3"
)

// MigrationTableName is the name of the table used by goose to track migrations.
const MigrationTableName = "schema_migrations"

// configureGoose points goose at the embedded migrations with the
// postgres dialect and the project's version table.
func configureGoose(logger *slog.Logger) error {
	migrations, err := fs.Sub(postgres.Migrations, "migrations")
	if err != nil {
		return fmt.Errorf("failed to open embedded migrations: %w", err)
	}

	goose.SetBaseFS(migrations)
	goose.SetLogger(&slogGooseLogger{logger: logger})
	goose.SetTableName(MigrationTableName)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set dialect: %w", err)
	}
	return nil
}

// applyMigrations runs every pending migration on db. The server uses it
// when database.auto_migrate is set.
func applyMigrations(ctx context.Context, db *sql.DB, logger *slog.Logger) error {
	if err := configureGoose(logger); err != nil {
		return err
	}

	logger.Info("Applying pending migrations")
	if err := goose.UpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("migration command 'up' failed: %w", err)
	}
	return nil
}

// executeMigration executes a goose command. Every command except create
// runs against the embedded migrations; create writes a new SQL file into
// the source tree and needs no database.
func executeMigration(ctx context.Context, cfg *config.Config, command string, verbose bool, args ...string) error {
	// Use a correlation ID for all migration logs to allow tracing the entire operation
	migrationLogger := slog.Default().With(
		"correlation_id", uuid.New().String(),
		"component", "migrations",
		"command", command,
	)

	startTime := time.Now()
	defer func() {
		migrationLogger.Info("Migration operation completed",
			"operation", fmt.Sprintf("goose %s", command),
			"duration_ms", time.Since(startTime).Milliseconds())
	}()

	if command == "create" {
		return createMigration(migrationLogger, args)
	}

	db, err := openMigrationDB(ctx, cfg.Database.URL, migrationLogger)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			migrationLogger.Error("Error closing database connection", "error", err)
		}
	}()

	if err := configureGoose(migrationLogger); err != nil {
		return err
	}

	currentVersion, versionErr := goose.GetDBVersionContext(ctx, db)
	if versionErr != nil {
		migrationLogger.Warn("Failed to retrieve current migration version", "error", versionErr)
	} else {
		migrationLogger.Info("Current database migration version", "version", currentVersion)
	}

	commandStart := time.Now()
	switch command {
	case "up":
		migrationLogger.Info("Applying pending migrations")
		err = goose.UpContext(ctx, db, ".")
	case "down":
		migrationLogger.Info("Rolling back one migration version")
		err = goose.DownContext(ctx, db, ".")
	case "reset":
		migrationLogger.Info("Resetting all migrations (roll back to zero)")
		err = goose.ResetContext(ctx, db, ".")
	case "status":
		migrationLogger.Info("Checking migration status")
		err = goose.StatusContext(ctx, db, ".")
	case "version":
		migrationLogger.Info("Retrieving current migration version")
		err = goose.VersionContext(ctx, db, ".")
	default:
		return fmt.Errorf(
			"unknown migration command: %s (expected up, down, reset, status, version, or create)",
			command,
		)
	}

	if err != nil {
		migrationLogger.Error("Migration command failed",
			"error", err,
			"error_type", fmt.Sprintf("%T", err),
			"duration_ms", time.Since(commandStart).Milliseconds())
		return fmt.Errorf("migration command '%s' failed: %w", command, err)
	}

	migrationLogger.Info("Migration command executed successfully",
		"duration_ms", time.Since(commandStart).Milliseconds())

	if verbose && (command == "up" || command == "down" || command == "reset") {
		newVersion, err := goose.GetDBVersionContext(ctx, db)
		if err != nil {
			migrationLogger.Warn("Failed to retrieve new migration version", "error", err)
		} else {
			migrationLogger.Info("Database schema version",
				"previous_version", currentVersion,
				"new_version", newVersion)
		}
	}

	return nil
}

// openMigrationDB opens and pings a dedicated connection for migrations.
func openMigrationDB(ctx context.Context, dbURL string, logger *slog.Logger) (*sql.DB, error) {
	if dbURL == "" {
		return nil, fmt.Errorf("database URL is empty: check your configuration")
	}

	logger.Info("Using database URL",
		"url", maskDatabaseURL(dbURL),
		"host", extractHostFromURL(dbURL))

	db, err := sql.Open("pgx", dbURL)
	if err != nil {
		return nil, fmt.Errorf(
			"failed to open database connection: %w (check connection string format and credentials)",
			err,
		)
	}

	db.SetMaxOpenConns(5)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(5 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, describePingError(err)
	}

	logger.Info("Database connection verified successfully")
	return db, nil
}

// describePingError adds a hint for the common causes of a failed ping.
func describePingError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf(
			"database ping timed out after 5s: %w (check network connectivity, firewall rules, and server load)",
			err,
		)
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return fmt.Errorf(
			"network error connecting to database: %w (check hostname, port, and network connectivity)",
			err,
		)
	}

	return fmt.Errorf(
		"failed to connect to database: %w (check connection string, credentials, and database availability)",
		err,
	)
}

// createMigration writes a new timestamped SQL migration into the source tree.
func createMigration(logger *slog.Logger, args []string) error {
	if len(args) == 0 || args[0] == "" {
		return fmt.Errorf("migration name is required for 'create' command")
	}

	dir, err := findMigrationsDir()
	if err != nil {
		return err
	}

	// Create works on the real filesystem, not the embedded one.
	goose.SetBaseFS(nil)
	goose.SetLogger(&slogGooseLogger{logger: logger})

	logger.Info("Creating new migration",
		"name", args[0],
		"type", "sql",
		"directory", dir)
	if err := goose.Create(nil, dir, args[0], "sql"); err != nil {
		return fmt.Errorf("migration command 'create' failed: %w", err)
	}
	return nil
}
