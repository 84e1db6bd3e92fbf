package testutils

import (
	"testing"

	"github.com/blogdev/blog-api/internal/domain"
)

// PostOption customizes a post built by CreateTestPost.
type PostOption func(*domain.Post)

// WithPostID sets the post ID.
func WithPostID(id int64) PostOption {
	return func(p *domain.Post) {
		p.ID = id
	}
}

// WithPostTitle sets the post title.
func WithPostTitle(title string) PostOption {
	return func(p *domain.Post) {
		p.Title = title
	}
}

// WithPostBody sets the post body.
func WithPostBody(body string) PostOption {
	return func(p *domain.Post) {
		p.Body = body
	}
}

// CreateTestPost builds a post with default values, then applies opts.
func CreateTestPost(t *testing.T, opts ...PostOption) *domain.Post {
	t.Helper()

	post := domain.NewPost("Test title", "Test body")
	for _, opt := range opts {
		opt(post)
	}
	return post
}
