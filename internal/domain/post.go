package domain

// MaxTitleLength is the maximum number of characters allowed in a post title.
const MaxTitleLength = 150

// Post represents a blog post as it is persisted.
// The ID is assigned by the store on creation and never changes afterwards.
type Post struct {
	ID    int64
	Title string
	Body  string
}

// NewPost creates an unsaved Post with the given title and body.
// The returned post has no identity until it is saved.
func NewPost(title, body string) *Post {
	return &Post{
		Title: title,
		Body:  body,
	}
}

// IsNew reports whether the post has not been assigned an ID yet.
func (p *Post) IsNew() bool {
	return p.ID == 0
}

// Overwrite replaces the title and body of the post, keeping its ID.
func (p *Post) Overwrite(title, body string) {
	p.Title = title
	p.Body = body
}
