package service

import (
	"errors"
	"fmt"

	"github.com/blogdev/blog-api/internal/store"
)

// Service errors are sentinels callers check with errors.Is. Unexpected
// failures are wrapped in PostServiceError so the operation context is kept.
var (
	// ErrPostNotFound indicates that no post exists with the requested ID.
	// API layer should map this to HTTP 404 Not Found.
	ErrPostNotFound = errors.New("post not found")
)

// PostServiceError wraps errors from the post service with context.
type PostServiceError struct {
	// Operation is the operation that failed (e.g., "create_post", "update_post")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for PostServiceError.
func (e *PostServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("post service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("post service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *PostServiceError) Unwrap() error {
	return e.Err
}

// NewPostServiceError creates a new PostServiceError.
// Not-found conditions from either layer collapse to ErrPostNotFound.
func NewPostServiceError(operation, message string, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, ErrPostNotFound) || errors.Is(err, store.ErrPostNotFound) {
		return ErrPostNotFound
	}

	return &PostServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
