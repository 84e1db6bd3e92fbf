package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/blogdev/blog-api/internal/domain"
	"github.com/blogdev/blog-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockPostStore is a testify mock of store.PostStore
type MockPostStore struct {
	mock.Mock
}

func (m *MockPostStore) Save(ctx context.Context, post *domain.Post) (*domain.Post, error) {
	args := m.Called(ctx, post)
	saved, _ := args.Get(0).(*domain.Post)
	return saved, args.Error(1)
}

func (m *MockPostStore) FindAll(ctx context.Context) ([]*domain.Post, error) {
	args := m.Called(ctx)
	posts, _ := args.Get(0).([]*domain.Post)
	return posts, args.Error(1)
}

func (m *MockPostStore) FindByID(ctx context.Context, id int64) (*domain.Post, error) {
	args := m.Called(ctx, id)
	post, _ := args.Get(0).(*domain.Post)
	return post, args.Error(1)
}

func (m *MockPostStore) ExistsByID(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockPostStore) DeleteByID(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// WithTxPostStore returns the same mock so expectations hold inside transactions
func (m *MockPostStore) WithTxPostStore(tx *sql.Tx) store.PostStore {
	return m
}

// inlineTransactor runs the function without a real transaction and
// records whether it was used.
type inlineTransactor struct {
	calls int
}

func (t *inlineTransactor) RunInTx(ctx context.Context, fn store.TxFn) error {
	t.calls++
	return fn(ctx, nil)
}

func newTestService(t *testing.T) (PostService, *MockPostStore, *inlineTransactor) {
	t.Helper()
	postStore := &MockPostStore{}
	tx := &inlineTransactor{}
	svc, err := NewPostService(postStore, tx, nil)
	require.NoError(t, err)
	return svc, postStore, tx
}

func TestNewPostService(t *testing.T) {
	t.Run("nil store", func(t *testing.T) {
		svc, err := NewPostService(nil, &inlineTransactor{}, nil)
		assert.Nil(t, svc)
		var svcErr *PostServiceError
		require.ErrorAs(t, err, &svcErr)
		assert.Equal(t, "create_service", svcErr.Operation)
	})

	t.Run("nil transactor", func(t *testing.T) {
		svc, err := NewPostService(&MockPostStore{}, nil, nil)
		assert.Nil(t, svc)
		assert.Error(t, err)
	})
}

func TestCreatePost(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		svc, postStore, _ := newTestService(t)
		postStore.On("Save", ctx, &domain.Post{Title: "T", Body: "C"}).
			Return(&domain.Post{ID: 1, Title: "T", Body: "C"}, nil).Once()

		post, err := svc.CreatePost(ctx, "T", "C")
		require.NoError(t, err)
		assert.Equal(t, &domain.Post{ID: 1, Title: "T", Body: "C"}, post)
		postStore.AssertExpectations(t)
	})

	t.Run("store failure", func(t *testing.T) {
		svc, postStore, _ := newTestService(t)
		dbErr := errors.New("connection refused")
		postStore.On("Save", ctx, mock.Anything).Return(nil, dbErr).Once()

		post, err := svc.CreatePost(ctx, "T", "C")
		assert.Nil(t, post)
		assert.ErrorIs(t, err, dbErr)
		var svcErr *PostServiceError
		require.ErrorAs(t, err, &svcErr)
		assert.Equal(t, "create_post", svcErr.Operation)
	})
}

func TestListPosts(t *testing.T) {
	ctx := context.Background()

	t.Run("returns store order", func(t *testing.T) {
		svc, postStore, _ := newTestService(t)
		posts := []*domain.Post{{ID: 1, Title: "A", Body: "a"}, {ID: 2, Title: "B", Body: "b"}}
		postStore.On("FindAll", ctx).Return(posts, nil).Once()

		got, err := svc.ListPosts(ctx)
		require.NoError(t, err)
		assert.Equal(t, posts, got)
	})

	t.Run("store failure", func(t *testing.T) {
		svc, postStore, _ := newTestService(t)
		postStore.On("FindAll", ctx).Return(nil, errors.New("boom")).Once()

		_, err := svc.ListPosts(ctx)
		assert.Error(t, err)
	})
}

func TestGetPost(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		svc, postStore, _ := newTestService(t)
		postStore.On("FindByID", ctx, int64(5)).Return(&domain.Post{ID: 5, Title: "T", Body: "C"}, nil).Once()

		post, err := svc.GetPost(ctx, 5)
		require.NoError(t, err)
		assert.Equal(t, int64(5), post.ID)
	})

	t.Run("not found", func(t *testing.T) {
		svc, postStore, _ := newTestService(t)
		postStore.On("FindByID", ctx, int64(99)).
			Return(nil, store.NewStoreError("post", "find_by_id", "not found", store.ErrPostNotFound)).Once()

		post, err := svc.GetPost(ctx, 99)
		assert.Nil(t, post)
		assert.ErrorIs(t, err, ErrPostNotFound)
	})
}

func TestUpdatePost(t *testing.T) {
	ctx := context.Background()

	t.Run("overwrites fields and keeps id", func(t *testing.T) {
		svc, postStore, tx := newTestService(t)
		postStore.On("FindByID", ctx, int64(5)).Return(&domain.Post{ID: 5, Title: "old", Body: "old"}, nil).Once()
		postStore.On("Save", ctx, &domain.Post{ID: 5, Title: "T2", Body: "C2"}).
			Return(&domain.Post{ID: 5, Title: "T2", Body: "C2"}, nil).Once()

		post, err := svc.UpdatePost(ctx, 5, "T2", "C2")
		require.NoError(t, err)
		assert.Equal(t, &domain.Post{ID: 5, Title: "T2", Body: "C2"}, post)
		assert.Equal(t, 1, tx.calls)
		postStore.AssertExpectations(t)
	})

	t.Run("not found does not save", func(t *testing.T) {
		svc, postStore, _ := newTestService(t)
		postStore.On("FindByID", ctx, int64(99)).Return(nil, store.ErrPostNotFound).Once()

		post, err := svc.UpdatePost(ctx, 99, "T", "C")
		assert.Nil(t, post)
		assert.ErrorIs(t, err, ErrPostNotFound)
		postStore.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("save failure", func(t *testing.T) {
		svc, postStore, _ := newTestService(t)
		postStore.On("FindByID", ctx, int64(5)).Return(&domain.Post{ID: 5, Title: "old", Body: "old"}, nil).Once()
		postStore.On("Save", ctx, mock.Anything).Return(nil, store.ErrTransactionFailed).Once()

		_, err := svc.UpdatePost(ctx, 5, "T", "C")
		assert.ErrorIs(t, err, store.ErrTransactionFailed)
		assert.NotErrorIs(t, err, ErrPostNotFound)
	})
}

func TestDeletePost(t *testing.T) {
	ctx := context.Background()

	t.Run("existing post", func(t *testing.T) {
		svc, postStore, tx := newTestService(t)
		postStore.On("ExistsByID", ctx, int64(5)).Return(true, nil).Once()
		postStore.On("DeleteByID", ctx, int64(5)).Return(nil).Once()

		require.NoError(t, svc.DeletePost(ctx, 5))
		assert.Equal(t, 1, tx.calls)
		postStore.AssertExpectations(t)
	})

	t.Run("missing post skips delete", func(t *testing.T) {
		svc, postStore, _ := newTestService(t)
		postStore.On("ExistsByID", ctx, int64(99)).Return(false, nil).Once()

		err := svc.DeletePost(ctx, 99)
		assert.ErrorIs(t, err, ErrPostNotFound)
		postStore.AssertNotCalled(t, "DeleteByID", mock.Anything, mock.Anything)
	})

	t.Run("exists check failure", func(t *testing.T) {
		svc, postStore, _ := newTestService(t)
		postStore.On("ExistsByID", ctx, int64(5)).Return(false, errors.New("timeout")).Once()

		err := svc.DeletePost(ctx, 5)
		var svcErr *PostServiceError
		require.ErrorAs(t, err, &svcErr)
		assert.Equal(t, "delete_post", svcErr.Operation)
	})
}

func TestNewPostServiceError(t *testing.T) {
	assert.NoError(t, NewPostServiceError("op", "msg", nil))
	assert.Equal(t, ErrPostNotFound, NewPostServiceError("op", "msg", store.ErrPostNotFound))

	err := NewPostServiceError("get_post", "failed", errors.New("boom"))
	assert.EqualError(t, err, "post service get_post failed: failed: boom")
}
