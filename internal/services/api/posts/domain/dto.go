// Package domain holds DTOs for posts http and service contracts
package domain

// CreateInput is the payload for publishing a post
type CreateInput struct {
	Content string `json:"content" validate:"required,min=1,max=280,emoji" example:"🎉🎉🎉"`
}

// Post is a published status update
type Post struct {
	ID        string `json:"id"`
	AuthorID  string `json:"author_id"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
}
