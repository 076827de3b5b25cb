package module

import (
	"context"

	postsdom "chirp/internal/services/api/posts/domain"
	postssvc "chirp/internal/services/api/posts/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// adaptPostsPort adapts the posts service to the domain port interface
type adaptPostsPort struct{ svc postssvc.Service }

// Create implements the domain ServicePort interface
func (a adaptPostsPort) Create(ctx context.Context, authorID, content string) (postsdom.Post, error) {
	return a.svc.Create(ctx, authorID, content)
}
