package store

import (
	"context"
	"database/sql"

	"github.com/blogdev/blog-api/internal/domain"
)

// PostStore defines the interface for post persistence.
type PostStore interface {
	// Save inserts the post when it has no ID yet and updates it otherwise.
	// The returned post carries the stored state, including the assigned ID.
	// Returns ErrPostNotFound when updating a post that does not exist.
	Save(ctx context.Context, post *domain.Post) (*domain.Post, error)

	// FindAll returns every stored post. The result is never nil.
	FindAll(ctx context.Context) ([]*domain.Post, error)

	// FindByID retrieves a post by its ID.
	// Returns ErrPostNotFound if the post does not exist.
	FindByID(ctx context.Context, id int64) (*domain.Post, error)

	// ExistsByID reports whether a post with the given ID exists.
	ExistsByID(ctx context.Context, id int64) (bool, error)

	// DeleteByID removes a post by its ID.
	// Returns ErrPostNotFound if no row was deleted.
	DeleteByID(ctx context.Context, id int64) error

	// WithTxPostStore returns a PostStore that runs its queries in the given transaction.
	//
	// Example usage:
	//   err := transactor.RunInTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
	//       txStore := postStore.WithTxPostStore(tx)
	//       _, err := txStore.Save(ctx, post)
	//       return err
	//   })
	WithTxPostStore(tx *sql.Tx) PostStore
}
