package service

import (
	"context"

	"chirp/internal/platform/store"
	"chirp/internal/services/ratelimit/domain"
)

// CHSink records decisions into a clickhouse table
//
// Column order matches the ratelimit_decisions DDL:
// (subject, allowed, remaining, decided_at)
type CHSink struct {
	ch    store.Clickhouse
	table string
}

// NewCHSink builds a sink over the store clickhouse seam
func NewCHSink(ch store.Clickhouse) *CHSink {
	return &CHSink{ch: ch, table: "ratelimit_decisions"}
}

// Record implements domain.AnalyticsPort
func (s *CHSink) Record(ctx context.Context, d domain.Decision) error {
	if s == nil || s.ch == nil {
		return nil
	}
	allowed := uint8(0)
	if d.Allowed {
		allowed = 1
	}
	return s.ch.Insert(ctx, s.table, [][]any{
		{d.Subject, allowed, int32(d.Remaining), d.At.UTC()},
	})
}
