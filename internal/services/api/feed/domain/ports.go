package domain

import "context"

// ServicePort defines the service contract for the feed
type ServicePort interface {
	List(ctx context.Context, limit int) ([]Entry, error)
}

// IdentityPort resolves author profiles from the identity provider
// implementations batch: one call resolves every id in ids
type IdentityPort interface {
	UsersByIDs(ctx context.Context, ids []string) ([]AuthorProfile, error)
}
