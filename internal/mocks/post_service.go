package mocks

import (
	"context"

	"github.com/blogdev/blog-api/internal/domain"
)

// MockPostService implements service.PostService for testing
type MockPostService struct {
	// Custom behavior functions
	CreatePostFn func(ctx context.Context, title, body string) (*domain.Post, error)
	ListPostsFn  func(ctx context.Context) ([]*domain.Post, error)
	GetPostFn    func(ctx context.Context, id int64) (*domain.Post, error)
	UpdatePostFn func(ctx context.Context, id int64, title, body string) (*domain.Post, error)
	DeletePostFn func(ctx context.Context, id int64) error

	// Default return values
	Post         *domain.Post
	Posts        []*domain.Post
	DefaultError error
}

// CreatePost implements the PostService.CreatePost method
func (m *MockPostService) CreatePost(ctx context.Context, title, body string) (*domain.Post, error) {
	if m.CreatePostFn != nil {
		return m.CreatePostFn(ctx, title, body)
	}
	return m.Post, m.DefaultError
}

// ListPosts implements the PostService.ListPosts method
func (m *MockPostService) ListPosts(ctx context.Context) ([]*domain.Post, error) {
	if m.ListPostsFn != nil {
		return m.ListPostsFn(ctx)
	}
	return m.Posts, m.DefaultError
}

// GetPost implements the PostService.GetPost method
func (m *MockPostService) GetPost(ctx context.Context, id int64) (*domain.Post, error) {
	if m.GetPostFn != nil {
		return m.GetPostFn(ctx, id)
	}
	return m.Post, m.DefaultError
}

// UpdatePost implements the PostService.UpdatePost method
func (m *MockPostService) UpdatePost(ctx context.Context, id int64, title, body string) (*domain.Post, error) {
	if m.UpdatePostFn != nil {
		return m.UpdatePostFn(ctx, id, title, body)
	}
	return m.Post, m.DefaultError
}

// DeletePost implements the PostService.DeletePost method
func (m *MockPostService) DeletePost(ctx context.Context, id int64) error {
	if m.DeletePostFn != nil {
		return m.DeletePostFn(ctx, id)
	}
	return m.DefaultError
}
