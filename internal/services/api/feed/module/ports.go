package module

import (
	"context"

	feeddom "chirp/internal/services/api/feed/domain"
	feedsvc "chirp/internal/services/api/feed/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// adaptFeedPort adapts the feed service to the domain port interface
type adaptFeedPort struct{ svc feedsvc.Service }

// List implements the domain ServicePort interface
func (a adaptFeedPort) List(ctx context.Context, limit int) ([]feeddom.Entry, error) {
	return a.svc.List(ctx, limit)
}
