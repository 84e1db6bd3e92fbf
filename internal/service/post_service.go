package service

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/blogdev/blog-api/internal/domain"
	"github.com/blogdev/blog-api/internal/platform/logger"
	"github.com/blogdev/blog-api/internal/store"
)

// PostService provides post-related operations
type PostService interface {
	// CreatePost stores a new post and returns it with its assigned ID
	CreatePost(ctx context.Context, title, body string) (*domain.Post, error)

	// ListPosts returns every stored post
	ListPosts(ctx context.Context) ([]*domain.Post, error)

	// GetPost retrieves a post by its ID
	GetPost(ctx context.Context, id int64) (*domain.Post, error)

	// UpdatePost overwrites the title and body of an existing post
	UpdatePost(ctx context.Context, id int64, title, body string) (*domain.Post, error)

	// DeletePost removes an existing post
	DeletePost(ctx context.Context, id int64) error
}

// postServiceImpl implements the PostService interface
type postServiceImpl struct {
	postStore  store.PostStore
	transactor store.Transactor
	logger     *slog.Logger
}

var _ PostService = (*postServiceImpl)(nil)

// NewPostService creates a new PostService.
// It returns an error if any of the required dependencies are nil.
func NewPostService(
	postStore store.PostStore,
	transactor store.Transactor,
	logger *slog.Logger,
) (PostService, error) {
	if postStore == nil {
		return nil, &PostServiceError{
			Operation: "create_service",
			Message:   "postStore cannot be nil",
		}
	}
	if transactor == nil {
		return nil, &PostServiceError{
			Operation: "create_service",
			Message:   "transactor cannot be nil",
		}
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &postServiceImpl{
		postStore:  postStore,
		transactor: transactor,
		logger:     logger.With(slog.String("component", "post_service")),
	}, nil
}

// CreatePost stores a new post. Any ID the caller had is irrelevant: the
// store assigns one.
func (s *postServiceImpl) CreatePost(ctx context.Context, title, body string) (*domain.Post, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	saved, err := s.postStore.Save(ctx, domain.NewPost(title, body))
	if err != nil {
		log.Error("failed to create post", slog.String("error", err.Error()))
		return nil, NewPostServiceError("create_post", "failed to save post", err)
	}

	log.Info("post created", slog.Int64("post_id", saved.ID))
	return saved, nil
}

// ListPosts returns every stored post.
func (s *postServiceImpl) ListPosts(ctx context.Context) ([]*domain.Post, error) {
	posts, err := s.postStore.FindAll(ctx)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to list posts",
			slog.String("error", err.Error()))
		return nil, NewPostServiceError("list_posts", "failed to retrieve posts", err)
	}
	return posts, nil
}

// GetPost retrieves a post by its ID.
func (s *postServiceImpl) GetPost(ctx context.Context, id int64) (*domain.Post, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	post, err := s.postStore.FindByID(ctx, id)
	if err != nil {
		svcErr := NewPostServiceError("get_post", "failed to retrieve post", err)
		if errors.Is(svcErr, ErrPostNotFound) {
			log.Debug("post not found", slog.Int64("post_id", id))
		} else {
			log.Error("failed to retrieve post",
				slog.String("error", err.Error()),
				slog.Int64("post_id", id))
		}
		return nil, svcErr
	}

	return post, nil
}

// UpdatePost loads the post, overwrites its title and body and saves it,
// all in one transaction. The post keeps its ID.
func (s *postServiceImpl) UpdatePost(
	ctx context.Context,
	id int64,
	title, body string,
) (*domain.Post, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var updated *domain.Post
	err := s.transactor.RunInTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		txStore := s.postStore.WithTxPostStore(tx)

		post, err := txStore.FindByID(ctx, id)
		if err != nil {
			return NewPostServiceError("update_post", "failed to retrieve post", err)
		}

		post.Overwrite(title, body)

		updated, err = txStore.Save(ctx, post)
		if err != nil {
			return NewPostServiceError("update_post", "failed to save post", err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrPostNotFound) {
			log.Debug("post to update not found", slog.Int64("post_id", id))
		} else {
			log.Error("failed to update post",
				slog.String("error", err.Error()),
				slog.Int64("post_id", id))
		}
		return nil, err
	}

	log.Info("post updated", slog.Int64("post_id", id))
	return updated, nil
}

// DeletePost removes a post after confirming it exists, in one transaction.
// When the post is absent no delete is issued.
func (s *postServiceImpl) DeletePost(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	err := s.transactor.RunInTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		txStore := s.postStore.WithTxPostStore(tx)

		exists, err := txStore.ExistsByID(ctx, id)
		if err != nil {
			return NewPostServiceError("delete_post", "failed to check post existence", err)
		}
		if !exists {
			return ErrPostNotFound
		}

		if err := txStore.DeleteByID(ctx, id); err != nil {
			return NewPostServiceError("delete_post", "failed to delete post", err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrPostNotFound) {
			log.Debug("post to delete not found", slog.Int64("post_id", id))
		} else {
			log.Error("failed to delete post",
				slog.String("error", err.Error()),
				slog.Int64("post_id", id))
		}
		return err
	}

	log.Info("post deleted", slog.Int64("post_id", id))
	return nil
}
