// Package repo provides postgres access for the feed
package repo

import (
	"context"
	"time"

	"chirp/internal/modkit/repokit"
	"chirp/internal/platform/store"
)

// Repo defines the repository contract for the feed
type Repo interface {
	Recent(ctx context.Context, limit int) ([]RowPost, error)
}

// RowPost represents a post row from the database
type RowPost struct {
	ID        string
	AuthorID  string
	Content   string
	CreatedAt time.Time
}

type (
	// PG implements the Repo interface using Postgres
	PG struct{}

	// queries holds the database query methods
	queries struct{ q repokit.Queryer }
)

// NewPG creates a new Postgres repository binder
func NewPG() repokit.Binder[Repo] { return PG{} }

// Bind binds a Postgres queryer to the Repo implementation
func (PG) Bind(q repokit.Queryer) Repo { return &queries{q: q} }

func (r *queries) Recent(ctx context.Context, limit int) ([]RowPost, error) {
	if limit <= 0 || limit > 100 {
		limit = 100
	}
	const sql = `
select id::text, author_id, content, created_at
from posts
order by created_at desc
limit $1
`
	return store.Many(ctx, r.q, func(row store.Row) (RowPost, error) {
		var rr RowPost
		err := row.Scan(&rr.ID, &rr.AuthorID, &rr.Content, &rr.CreatedAt)
		return rr, err
	}, sql, limit)
}
