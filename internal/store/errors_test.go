package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsNotFoundError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{name: "nil error", err: nil, expected: false},
		{name: "generic error", err: errors.New("some error"), expected: false},
		{name: "ErrNotFound", err: ErrNotFound, expected: true},
		{name: "ErrPostNotFound", err: ErrPostNotFound, expected: true},
		{
			name:     "wrapped ErrPostNotFound",
			err:      fmt.Errorf("failed to find post: %w", ErrPostNotFound),
			expected: true,
		},
		{
			name:     "store error wrapping ErrPostNotFound",
			err:      NewStoreError("post", "delete", "no rows", ErrPostNotFound),
			expected: true,
		},
		{name: "ErrDuplicate", err: ErrDuplicate, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsNotFoundError(tt.err))
		})
	}
}

func TestIsDuplicateError(t *testing.T) {
	assert.True(t, IsDuplicateError(ErrDuplicate))
	assert.True(t, IsDuplicateError(fmt.Errorf("%w: post title", ErrDuplicate)))
	assert.False(t, IsDuplicateError(ErrPostNotFound))
	assert.False(t, IsDuplicateError(nil))
}

func TestStoreError(t *testing.T) {
	t.Run("with wrapped error", func(t *testing.T) {
		err := NewStoreError("post", "save", "insert failed", ErrInvalidEntity)

		assert.Equal(t, "save operation on post failed: insert failed: invalid entity", err.Error())
		assert.True(t, errors.Is(err, ErrInvalidEntity))
	})

	t.Run("without wrapped error", func(t *testing.T) {
		err := NewStoreError("post", "find", "bad query", nil)

		assert.Equal(t, "find operation on post failed: bad query", err.Error())
		assert.Nil(t, errors.Unwrap(err))
	})
}
