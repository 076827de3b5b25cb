// Package service contains the post write pipeline
package service

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"chirp/internal/core/emoji"
	"chirp/internal/modkit/repokit"
	perr "chirp/internal/platform/errors"
	"chirp/internal/services/api/posts/domain"
	"chirp/internal/services/api/posts/repo"
	ratedom "chirp/internal/services/ratelimit/domain"
)

// maxContentRunes caps post length in unicode code points
const maxContentRunes = 280

// Service defines the service contract for posts
type Service interface{ domain.ServicePort }

// Svc implements the Service interface
type Svc struct {
	Repo    repo.Repo
	binder  repokit.Binder[repo.Repo]
	db      repokit.TxRunner
	limiter ratedom.LimiterPort

	newID func() string
}

// New creates a new posts service
func New(db repokit.TxRunner, binder repokit.Binder[repo.Repo], limiter ratedom.LimiterPort) *Svc {
	if db == nil {
		panic("posts.Service requires a non nil TxRunner")
	}
	if binder == nil {
		panic("posts.Service requires a non nil Repo binder")
	}
	if limiter == nil {
		panic("posts.Service requires a non nil LimiterPort")
	}
	return &Svc{
		Repo:    binder.Bind(db),
		binder:  binder,
		db:      db,
		limiter: limiter,
		newID:   uuid.NewString,
	}
}

// Create publishes a post for authorID
//
// The pipeline is ordered: caller check, content rules, rate limit,
// persist. An unauthenticated caller is rejected before any counter
// or storage access happens
func (s *Svc) Create(ctx context.Context, authorID, content string) (domain.Post, error) {
	if strings.TrimSpace(authorID) == "" {
		return domain.Post{}, perr.Unauthorizedf("missing caller identity")
	}

	if err := validateContent(content); err != nil {
		return domain.Post{}, err
	}

	d, err := s.limiter.Limit(ctx, authorID)
	if err != nil {
		return domain.Post{}, err
	}
	if !d.Allowed {
		return domain.Post{}, perr.TooManyRequestsf("rate limit exceeded, retry in %s", d.RetryAfter.Round(time.Second))
	}

	row, err := s.Repo.Insert(ctx, s.newID(), authorID, content)
	if err != nil {
		return domain.Post{}, perr.FromPostgres(err, "insert post")
	}
	return toPost(row), nil
}

// validateContent enforces the length and emoji-only rules, in that order
func validateContent(content string) error {
	n := utf8.RuneCountInString(content)
	if n < 1 || n > maxContentRunes {
		return perr.WithField(
			perr.Newf(perr.ErrorCodeValidation, "content must be between 1 and %d characters", maxContentRunes),
			"content",
		)
	}
	if !emoji.IsEmojiOnly(content) {
		return perr.WithField(
			perr.Newf(perr.ErrorCodeValidation, "only emojis are allowed"),
			"content",
		)
	}
	return nil
}

func toPost(r repo.RowPost) domain.Post {
	return domain.Post{
		ID:        r.ID,
		AuthorID:  r.AuthorID,
		Content:   r.Content,
		CreatedAt: r.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}
