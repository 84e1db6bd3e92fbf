// Package main implements the entry point for the blog API server, which
// stores blog posts in PostgreSQL and serves them over a JSON REST API.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/blogdev/blog-api/internal/config"
	"github.com/blogdev/blog-api/internal/platform/logger"
	"github.com/blogdev/blog-api/internal/platform/telemetry"
)

// cliOptions holds the parsed command line flags.
type cliOptions struct {
	migrateCmd    string
	migrationName string
	verbose       bool
}

func parseFlags(args []string) (cliOptions, error) {
	var opts cliOptions

	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	fs.StringVar(&opts.migrateCmd, "migrate", "",
		"Run database migrations: up, down, reset, status, version, create")
	fs.StringVar(&opts.migrationName, "name", "", "Name for the new migration (used with -migrate=create)")
	fs.BoolVar(&opts.verbose, "verbose", false, "Enable verbose logging for migrations")

	if err := fs.Parse(args); err != nil {
		return cliOptions{}, err
	}
	return opts, nil
}

// main is the entry point for the blog-api server.
func main() {
	opts, err := parseFlags(os.Args[1:])
	if err != nil {
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, opts); err != nil {
		slog.Error("Server exited with error", "error", err)
		stop()
		os.Exit(1)
	}
}

// run loads configuration and either executes a migration command or
// starts the HTTP server until ctx is canceled.
func run(ctx context.Context, opts cliOptions) error {
	cfg, err := initializeApp()
	if err != nil {
		return err
	}

	if opts.migrateCmd != "" {
		return handleMigrations(ctx, cfg, opts.migrateCmd, opts.migrationName, opts.verbose)
	}

	log := slog.Default()

	shutdownTracing, err := telemetry.SetupTracing(ctx, cfg.Telemetry, log)
	if err != nil {
		return fmt.Errorf("failed to set up tracing: %w", err)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(flushCtx); err != nil {
			log.Error("Failed to flush traces", "error", err)
		}
	}()

	db, err := setupAppDatabase(ctx, cfg.Database, log)
	if err != nil {
		return err
	}

	if cfg.Database.AutoMigrate {
		if err := applyMigrations(ctx, db, log); err != nil {
			_ = db.Close()
			return fmt.Errorf("auto-migration failed: %w", err)
		}
	}

	app, err := newApplication(cfg, log, db)
	if err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	return app.Run(ctx)
}

// initializeApp loads configuration and sets up structured logging.
// Returns the loaded config and any initialization error.
func initializeApp() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if _, err := logger.Setup(cfg.Server); err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"metrics_enabled", cfg.Telemetry.MetricsEnabled,
		"auto_migrate", cfg.Database.AutoMigrate)
	slog.Debug("Database configuration", "url", maskDatabaseURL(cfg.Database.URL))

	return cfg, nil
}
