// Package service implements the sliding window rate limiter over redis
package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"chirp/internal/platform/logger"
	"chirp/internal/platform/store"
	"chirp/internal/services/ratelimit/domain"
)

// slidingWindow trims expired entries, counts the rest, and consumes a
// slot only when under the limit. Runs as one script so the
// check-and-consume is atomic per subject key.
//
// KEYS[1] window zset, ARGV: now_ms, window_ms, limit, member
// reply: {allowed, remaining, retry_after_ms}
const slidingWindow = `
local key = KEYS[1]
local now = tonumber(ARGV[1])
local window = tonumber(ARGV[2])
local limit = tonumber(ARGV[3])
redis.call("ZREMRANGEBYSCORE", key, 0, now - window)
local count = redis.call("ZCARD", key)
if count < limit then
  redis.call("ZADD", key, now, ARGV[4])
  redis.call("PEXPIRE", key, window)
  return {1, limit - count - 1, 0}
end
local oldest = redis.call("ZRANGE", key, 0, 0, "WITHSCORES")
local retry = 0
if oldest[2] then
  retry = (tonumber(oldest[2]) + window) - now
end
return {0, 0, retry}
`

// Config tunes the window
type Config struct {
	// Limit is the number of actions allowed per window
	Limit int
	// Window is the trailing interval length
	Window time.Duration
	// Prefix namespaces counter keys in redis
	Prefix string
}

// Svc implements domain.LimiterPort against the redis seam
type Svc struct {
	rd   store.Redis
	cfg  Config
	sink domain.AnalyticsPort
	log  logger.Logger
	now  func() time.Time
}

// New constructs the limiter. sink may be nil to disable analytics
func New(rd store.Redis, cfg Config, sink domain.AnalyticsPort) *Svc {
	if rd == nil {
		panic("ratelimit.Service requires a non nil redis seam")
	}
	if cfg.Limit <= 0 {
		cfg.Limit = 3
	}
	if cfg.Window <= 0 {
		cfg.Window = time.Minute
	}
	if cfg.Prefix == "" {
		cfg.Prefix = "ratelimit"
	}
	return &Svc{
		rd:   rd,
		cfg:  cfg,
		sink: sink,
		log:  *logger.Named("ratelimit"),
		now:  time.Now,
	}
}

// Limit performs one atomic check-and-consume for subjectID
func (s *Svc) Limit(ctx context.Context, subjectID string) (domain.Decision, error) {
	now := s.now()
	key := s.cfg.Prefix + ":" + subjectID

	reply, err := s.rd.Eval(ctx, slidingWindow,
		[]string{key},
		now.UnixMilli(),
		s.cfg.Window.Milliseconds(),
		s.cfg.Limit,
		uuid.NewString(),
	)
	if err != nil {
		return domain.Decision{}, err
	}

	d := decode(reply, subjectID, now)
	s.record(d)
	return d, nil
}

// decode maps the script reply onto a Decision
// unexpected shapes deny closed rather than open
func decode(reply any, subjectID string, at time.Time) domain.Decision {
	d := domain.Decision{Subject: subjectID, At: at}
	vals, ok := reply.([]any)
	if !ok || len(vals) != 3 {
		return d
	}
	allowed, _ := vals[0].(int64)
	remaining, _ := vals[1].(int64)
	retryMs, _ := vals[2].(int64)
	d.Allowed = allowed == 1
	d.Remaining = int(remaining)
	d.RetryAfter = time.Duration(retryMs) * time.Millisecond
	return d
}

// record ships the decision to the analytics sink without blocking the
// caller; failures are logged and dropped
func (s *Svc) record(d domain.Decision) {
	if s.sink == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := s.sink.Record(ctx, d); err != nil {
			s.log.Warn().Err(err).Str("subject", d.Subject).Msg("ratelimit analytics record failed")
		}
	}()
}
