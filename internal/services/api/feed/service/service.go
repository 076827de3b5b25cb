// Package service assembles the reverse chronological feed
package service

import (
	"context"
	"time"

	"chirp/internal/modkit/repokit"
	perr "chirp/internal/platform/errors"
	"chirp/internal/services/api/feed/domain"
	"chirp/internal/services/api/feed/repo"
)

// defaultLimit is the page size when the caller does not ask for one
const defaultLimit = 100

// Service defines the service contract for the feed
type Service interface{ domain.ServicePort }

// Svc implements the Service interface
type Svc struct {
	Repo     repo.Repo
	binder   repokit.Binder[repo.Repo]
	db       repokit.TxRunner
	identity domain.IdentityPort
}

// New creates a new feed service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo], identity domain.IdentityPort) *Svc {
	if db == nil {
		panic("feed.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("feed.Service requires a non nil Repo binder")
	}
	if identity == nil {
		panic("feed.Service requires a non nil IdentityPort")
	}
	return &Svc{Repo: binder.Bind(db), binder: binder, db: db, identity: identity}
}

// List returns up to limit posts newest first, each joined with its
// author profile. Author resolution is one batched identity call over
// the distinct author ids. An unresolvable author is a hard failure,
// never a silently skipped entry
func (s *Svc) List(ctx context.Context, limit int) ([]domain.Entry, error) {
	if limit <= 0 || limit > defaultLimit {
		limit = defaultLimit
	}

	rows, err := s.Repo.Recent(ctx, limit)
	if err != nil {
		return nil, perr.FromPostgres(err, "list posts")
	}
	if len(rows) == 0 {
		return []domain.Entry{}, nil
	}

	profiles, err := s.identity.UsersByIDs(ctx, distinctAuthors(rows))
	if err != nil {
		return nil, err
	}
	byID := make(map[string]domain.AuthorProfile, len(profiles))
	for _, p := range profiles {
		byID[p.ID] = p
	}

	out := make([]domain.Entry, 0, len(rows))
	for _, r := range rows {
		author, ok := byID[r.AuthorID]
		if !ok || author.Username == "" {
			return nil, perr.Integrityf("author for post not found")
		}
		out = append(out, domain.Entry{
			Post: domain.Post{
				ID:        r.ID,
				AuthorID:  r.AuthorID,
				Content:   r.Content,
				CreatedAt: r.CreatedAt.UTC().Format(time.RFC3339Nano),
			},
			Author: author,
		})
	}
	return out, nil
}

// distinctAuthors keeps first-seen order
func distinctAuthors(rows []repo.RowPost) []string {
	seen := make(map[string]struct{}, len(rows))
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		if _, ok := seen[r.AuthorID]; ok {
			continue
		}
		seen[r.AuthorID] = struct{}{}
		out = append(out, r.AuthorID)
	}
	return out
}
