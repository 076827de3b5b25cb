package domain

import "context"

// LimiterPort decides whether a subject may act right now
//
// Implementations must make the check and the consume one atomic
// operation; a separate read-then-write pair is not acceptable under
// concurrent callers
type LimiterPort interface {
	Limit(ctx context.Context, subjectID string) (Decision, error)
}

// AnalyticsPort records decisions for offline analysis (best effort)
type AnalyticsPort interface {
	Record(ctx context.Context, d Decision) error
}
