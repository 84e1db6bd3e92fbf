package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPost(t *testing.T) {
	post := NewPost("Title", "Body")

	assert.Equal(t, int64(0), post.ID)
	assert.Equal(t, "Title", post.Title)
	assert.Equal(t, "Body", post.Body)
	assert.True(t, post.IsNew())
}

func TestPost_Overwrite(t *testing.T) {
	post := &Post{ID: 7, Title: "old", Body: "old body"}

	post.Overwrite("new", "new body")

	assert.Equal(t, int64(7), post.ID, "ID must not change")
	assert.Equal(t, "new", post.Title)
	assert.Equal(t, "new body", post.Body)
	assert.False(t, post.IsNew())
}
