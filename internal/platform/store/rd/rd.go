// Package rd provides a redis client behind a small seam
package rd

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// Config configures redis connectivity
type Config struct {
	Addr     string
	Password string
	DB       int
}

// RD is a redis client wrapper
type RD struct {
	rdb *redis.Client
}

// Open creates a redis client and verifies connectivity
func Open(ctx context.Context, cfg Config) (*RD, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, err
	}
	return &RD{rdb: rdb}, nil
}

// Eval runs a lua script with keys and args and returns the raw reply
func (r *RD) Eval(ctx context.Context, script string, keys []string, args ...any) (any, error) {
	return r.rdb.Eval(ctx, script, keys, args...).Result()
}

// Ping verifies connectivity
func (r *RD) Ping(ctx context.Context) error {
	if r == nil || r.rdb == nil {
		return redis.ErrClosed
	}
	return r.rdb.Ping(ctx).Err()
}

// Close releases the client
func (r *RD) Close() error {
	if r == nil || r.rdb == nil {
		return nil
	}
	return r.rdb.Close()
}
