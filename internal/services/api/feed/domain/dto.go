// Package domain holds DTOs for feed http and service contracts
package domain

// AuthorProfile is the public identity slice attached to feed entries
type AuthorProfile struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	ImageURL string `json:"image_url"`
}

// Post is a published status update as the feed presents it
type Post struct {
	ID        string `json:"id"`
	AuthorID  string `json:"author_id"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
}

// Entry joins a post with its resolved author
// entries are never partial: a post without a resolvable author fails
// the whole read
type Entry struct {
	Post   Post          `json:"post"`
	Author AuthorProfile `json:"author"`
}
