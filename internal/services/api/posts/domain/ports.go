package domain

import "context"

// ServicePort defines the service contract for posts
//
// Create runs the full write pipeline: caller check, content rules,
// rate limit, then persistence. Steps run in that order and the first
// failure stops the pipeline
type ServicePort interface {
	Create(ctx context.Context, authorID, content string) (Post, error)
}
