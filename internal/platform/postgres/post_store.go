package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/blogdev/blog-api/internal/domain"
	"github.com/blogdev/blog-api/internal/platform/logger"
	"github.com/blogdev/blog-api/internal/store"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/blogdev/blog-api/internal/platform/postgres"

// PostgresPostStore implements the store.PostStore interface
// using a PostgreSQL database as the storage backend.
type PostgresPostStore struct {
	db     store.DBTX
	logger *slog.Logger
	tracer trace.Tracer
}

// NewPostgresPostStore creates a new PostgreSQL implementation of the PostStore interface.
// It accepts a database connection or transaction that is managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresPostStore(db store.DBTX, logger *slog.Logger) *PostgresPostStore {
	if db == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresPostStore{
		db:     db,
		logger: logger.With(slog.String("component", "post_store")),
		tracer: otel.Tracer(tracerName),
	}
}

// Ensure PostgresPostStore implements store.PostStore interface
var _ store.PostStore = (*PostgresPostStore)(nil)

// Save implements store.PostStore.Save.
// New posts are inserted and receive a database-generated ID; existing posts are updated in place.
func (s *PostgresPostStore) Save(ctx context.Context, post *domain.Post) (*domain.Post, error) {
	if post.IsNew() {
		return s.insert(ctx, post)
	}
	return s.update(ctx, post)
}

func (s *PostgresPostStore) insert(ctx context.Context, post *domain.Post) (*domain.Post, error) {
	ctx, span := s.tracer.Start(ctx, "PostgresPostStore.Save",
		trace.WithAttributes(attribute.String("db.operation", "insert")))
	defer span.End()

	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		INSERT INTO posts (title, body)
		VALUES ($1, $2)
		RETURNING id
	`

	var id int64
	if err := s.db.QueryRowContext(ctx, query, post.Title, post.Body).Scan(&id); err != nil {
		recordError(span, err)
		log.Error("failed to insert post",
			slog.String("error", err.Error()))
		return nil, store.NewStoreError("post", "save", "failed to insert post", MapError(err))
	}

	saved := *post
	saved.ID = id

	span.SetAttributes(attribute.Int64("post.id", id))
	log.Info("post created successfully", slog.Int64("post_id", id))
	return &saved, nil
}

func (s *PostgresPostStore) update(ctx context.Context, post *domain.Post) (*domain.Post, error) {
	ctx, span := s.tracer.Start(ctx, "PostgresPostStore.Save",
		trace.WithAttributes(
			attribute.String("db.operation", "update"),
			attribute.Int64("post.id", post.ID),
		))
	defer span.End()

	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		UPDATE posts
		SET title = $1, body = $2
		WHERE id = $3
	`

	result, err := s.db.ExecContext(ctx, query, post.Title, post.Body, post.ID)
	if err != nil {
		recordError(span, err)
		log.Error("failed to update post",
			slog.String("error", err.Error()),
			slog.Int64("post_id", post.ID))
		return nil, store.NewStoreError("post", "save", "failed to update post", MapError(err))
	}

	if err := CheckRowsAffected(result, store.ErrPostNotFound); err != nil {
		if errors.Is(err, store.ErrPostNotFound) {
			log.Debug("post not found for update", slog.Int64("post_id", post.ID))
			return nil, err
		}
		recordError(span, err)
		log.Error("failed to check updated rows",
			slog.String("error", err.Error()),
			slog.Int64("post_id", post.ID))
		return nil, err
	}

	saved := *post

	log.Info("post updated successfully", slog.Int64("post_id", post.ID))
	return &saved, nil
}

// FindAll implements store.PostStore.FindAll.
// Posts are returned in ID order; an empty table yields an empty slice.
func (s *PostgresPostStore) FindAll(ctx context.Context) ([]*domain.Post, error) {
	ctx, span := s.tracer.Start(ctx, "PostgresPostStore.FindAll")
	defer span.End()

	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, title, body
		FROM posts
		ORDER BY id
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		recordError(span, err)
		log.Error("failed to query posts", slog.String("error", err.Error()))
		return nil, store.NewStoreError("post", "find_all", "failed to query posts", MapError(err))
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	posts := []*domain.Post{}
	for rows.Next() {
		var post domain.Post
		if err := rows.Scan(&post.ID, &post.Title, &post.Body); err != nil {
			recordError(span, err)
			log.Error("failed to scan post row", slog.String("error", err.Error()))
			return nil, store.NewStoreError("post", "find_all", "failed to scan post", err)
		}
		posts = append(posts, &post)
	}

	if err := rows.Err(); err != nil {
		recordError(span, err)
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, store.NewStoreError("post", "find_all", "failed to iterate posts", MapError(err))
	}

	span.SetAttributes(attribute.Int("post.count", len(posts)))
	log.Debug("found posts", slog.Int("count", len(posts)))
	return posts, nil
}

// FindByID implements store.PostStore.FindByID.
// Returns store.ErrPostNotFound if the post does not exist.
func (s *PostgresPostStore) FindByID(ctx context.Context, id int64) (*domain.Post, error) {
	ctx, span := s.tracer.Start(ctx, "PostgresPostStore.FindByID",
		trace.WithAttributes(attribute.Int64("post.id", id)))
	defer span.End()

	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, title, body
		FROM posts
		WHERE id = $1
	`

	var post domain.Post
	err := s.db.QueryRowContext(ctx, query, id).Scan(&post.ID, &post.Title, &post.Body)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("post not found", slog.Int64("post_id", id))
			return nil, store.ErrPostNotFound
		}
		recordError(span, err)
		log.Error("failed to get post by ID",
			slog.String("error", err.Error()),
			slog.Int64("post_id", id))
		return nil, store.NewStoreError("post", "find_by_id", "failed to get post", MapError(err))
	}

	log.Debug("post retrieved successfully", slog.Int64("post_id", id))
	return &post, nil
}

// ExistsByID implements store.PostStore.ExistsByID.
func (s *PostgresPostStore) ExistsByID(ctx context.Context, id int64) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "PostgresPostStore.ExistsByID",
		trace.WithAttributes(attribute.Int64("post.id", id)))
	defer span.End()

	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT EXISTS (SELECT 1 FROM posts WHERE id = $1)`

	var exists bool
	if err := s.db.QueryRowContext(ctx, query, id).Scan(&exists); err != nil {
		recordError(span, err)
		log.Error("failed to check post existence",
			slog.String("error", err.Error()),
			slog.Int64("post_id", id))
		return false, store.NewStoreError("post", "exists_by_id", "failed to check post", MapError(err))
	}

	return exists, nil
}

// DeleteByID implements store.PostStore.DeleteByID.
// Returns store.ErrPostNotFound if the post does not exist.
func (s *PostgresPostStore) DeleteByID(ctx context.Context, id int64) error {
	ctx, span := s.tracer.Start(ctx, "PostgresPostStore.DeleteByID",
		trace.WithAttributes(attribute.Int64("post.id", id)))
	defer span.End()

	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		recordError(span, err)
		log.Error("failed to delete post",
			slog.String("error", err.Error()),
			slog.Int64("post_id", id))
		return store.NewStoreError("post", "delete_by_id", "failed to delete post", MapError(err))
	}

	if err := CheckRowsAffected(result, store.ErrPostNotFound); err != nil {
		if !errors.Is(err, store.ErrPostNotFound) {
			recordError(span, err)
		}
		log.Debug("post not deleted",
			slog.String("reason", err.Error()),
			slog.Int64("post_id", id))
		return err
	}

	log.Info("post deleted successfully", slog.Int64("post_id", id))
	return nil
}

// WithTxPostStore implements store.PostStore.WithTxPostStore.
func (s *PostgresPostStore) WithTxPostStore(tx *sql.Tx) store.PostStore {
	return &PostgresPostStore{
		db:     tx,
		logger: s.logger,
		tracer: s.tracer,
	}
}

func recordError(span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
