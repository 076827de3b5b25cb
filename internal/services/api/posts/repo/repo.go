// Package repo provides postgres access for posts
package repo

import (
	"context"
	"time"

	"chirp/internal/modkit/repokit"
)

// Repo defines the repository contract for posts
type Repo interface {
	Insert(ctx context.Context, id, authorID, content string) (RowPost, error)
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

func (r *queries) Insert(ctx context.Context, id, authorID, content string) (RowPost, error) {
	const sql = `
insert into posts (id, author_id, content)
values ($1, $2, $3)
returning id::text, author_id, content, created_at
`
	var out RowPost
	err := r.q.QueryRow(ctx, sql, id, authorID, content).Scan(
		&out.ID,
		&out.AuthorID,
		&out.Content,
		&out.CreatedAt,
	)
	if err != nil {
		return RowPost{}, err
	}
	return out, nil
}
