package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/blogdev/blog-api/internal/config"
	"github.com/blogdev/blog-api/internal/platform/postgres"
	"github.com/blogdev/blog-api/internal/platform/telemetry"
	"github.com/blogdev/blog-api/internal/service"
	"github.com/blogdev/blog-api/internal/store"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	// Configuration
	config *config.Config

	// Core services
	logger  *slog.Logger
	db      *sql.DB
	metrics *telemetry.Metrics

	// Stores
	postStore store.PostStore

	// Service interfaces
	postService service.PostService
}

// newApplication creates a new application instance backed by Postgres.
// It accepts core dependencies like configuration, logger, and database connection that
// must be established before application initialization.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is required")
	}

	return assembleApplication(
		cfg,
		logger,
		db,
		postgres.NewPostgresPostStore(db, logger),
		store.NewTransactor(db),
	)
}

// assembleApplication wires the service layer and telemetry on top of the
// given store. db may be nil when the store does not need one.
func assembleApplication(
	cfg *config.Config,
	logger *slog.Logger,
	db *sql.DB,
	postStore store.PostStore,
	transactor store.Transactor,
) (*application, error) {
	if logger == nil {
		logger = slog.Default()
	}

	app := &application{
		config:    cfg,
		logger:    logger,
		db:        db,
		postStore: postStore,
	}

	var err error
	app.postService, err = service.NewPostService(postStore, transactor, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create post service: %w", err)
	}

	if cfg.Telemetry.MetricsEnabled {
		app.metrics = telemetry.NewMetrics()
		if db != nil {
			if err := app.metrics.RegisterDB(db, "blog"); err != nil {
				return nil, fmt.Errorf("failed to register database metrics: %w", err)
			}
		}
		logger.Info("Prometheus metrics enabled")
	}

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns an error if the server fails to start or encounters problems.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing database connection", "error", err)
		}
	}

	app.logger.Info("Application shutdown completed")
}
