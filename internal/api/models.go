package api

import "github.com/blogdev/blog-api/internal/domain"

// PostView is the JSON shape of a post on the wire. The body travels under
// the "context" key. ID is ignored on input and always set on output.
type PostView struct {
	ID    *int64 `json:"id"`
	Title string `json:"title"   validate:"required,max=150"`
	Body  string `json:"context" validate:"required"`
}

// postViewToPost converts an inbound view into a new, unsaved entity.
// Any client-supplied ID is dropped.
func postViewToPost(view PostView) *domain.Post {
	return domain.NewPost(view.Title, view.Body)
}

// postToView converts a domain.Post to its wire representation.
func postToView(post *domain.Post) PostView {
	id := post.ID
	return PostView{
		ID:    &id,
		Title: post.Title,
		Body:  post.Body,
	}
}

// postsToViews converts a slice of posts, returning an empty (non-nil)
// slice so the JSON output is [] rather than null.
func postsToViews(posts []*domain.Post) []PostView {
	views := make([]PostView, 0, len(posts))
	for _, p := range posts {
		views = append(views, postToView(p))
	}
	return views
}
