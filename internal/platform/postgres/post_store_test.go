//go:build integration

package postgres_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/blogdev/blog-api/internal/domain"
	"github.com/blogdev/blog-api/internal/platform/postgres"
	"github.com/blogdev/blog-api/internal/store"
	"github.com/blogdev/blog-api/internal/testdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)
	return ctx
}

func TestPostgresPostStore_SaveAndFind(t *testing.T) {
	t.Parallel()

	db := testdb.GetTestDBWithT(t)

	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		postStore := postgres.NewPostgresPostStore(tx, nil)
		ctx := newTestContext(t)

		saved, err := postStore.Save(ctx, domain.NewPost("T", "C"))
		require.NoError(t, err)
		require.NotZero(t, saved.ID, "Save should assign an ID")
		assert.Equal(t, "T", saved.Title)
		assert.Equal(t, "C", saved.Body)

		found, err := postStore.FindByID(ctx, saved.ID)
		require.NoError(t, err)
		assert.Equal(t, saved, found)

		exists, err := postStore.ExistsByID(ctx, saved.ID)
		require.NoError(t, err)
		assert.True(t, exists)
	})
}

func TestPostgresPostStore_UpdatePreservesID(t *testing.T) {
	t.Parallel()

	db := testdb.GetTestDBWithT(t)

	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		postStore := postgres.NewPostgresPostStore(tx, nil)
		ctx := newTestContext(t)

		saved, err := postStore.Save(ctx, domain.NewPost("T", "C"))
		require.NoError(t, err)

		saved.Overwrite("T2", "C2")
		updated, err := postStore.Save(ctx, saved)
		require.NoError(t, err)
		assert.Equal(t, saved.ID, updated.ID)

		found, err := postStore.FindByID(ctx, saved.ID)
		require.NoError(t, err)
		assert.Equal(t, "T2", found.Title)
		assert.Equal(t, "C2", found.Body)
	})
}

func TestPostgresPostStore_UpdateMissing(t *testing.T) {
	t.Parallel()

	db := testdb.GetTestDBWithT(t)

	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		postStore := postgres.NewPostgresPostStore(tx, nil)

		_, err := postStore.Save(newTestContext(t), &domain.Post{ID: 987654321, Title: "x", Body: "y"})
		assert.ErrorIs(t, err, store.ErrPostNotFound)
	})
}

func TestPostgresPostStore_FindAll(t *testing.T) {
	t.Parallel()

	db := testdb.GetTestDBWithT(t)

	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		postStore := postgres.NewPostgresPostStore(tx, nil)
		ctx := newTestContext(t)

		before, err := postStore.FindAll(ctx)
		require.NoError(t, err)
		require.NotNil(t, before)

		first, err := postStore.Save(ctx, domain.NewPost("first", "1"))
		require.NoError(t, err)
		second, err := postStore.Save(ctx, domain.NewPost("second", "2"))
		require.NoError(t, err)

		after, err := postStore.FindAll(ctx)
		require.NoError(t, err)
		require.Len(t, after, len(before)+2)
		assert.Equal(t, first, after[len(after)-2])
		assert.Equal(t, second, after[len(after)-1])
	})
}

func TestPostgresPostStore_Delete(t *testing.T) {
	t.Parallel()

	db := testdb.GetTestDBWithT(t)

	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		postStore := postgres.NewPostgresPostStore(tx, nil)
		ctx := newTestContext(t)

		saved, err := postStore.Save(ctx, domain.NewPost("T", "C"))
		require.NoError(t, err)

		require.NoError(t, postStore.DeleteByID(ctx, saved.ID))

		exists, err := postStore.ExistsByID(ctx, saved.ID)
		require.NoError(t, err)
		assert.False(t, exists)

		_, err = postStore.FindByID(ctx, saved.ID)
		assert.ErrorIs(t, err, store.ErrPostNotFound)

		err = postStore.DeleteByID(ctx, saved.ID)
		assert.ErrorIs(t, err, store.ErrPostNotFound)
	})
}
