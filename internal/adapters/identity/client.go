// Package identity provides a REST client for the external identity provider
//
// The provider owns user accounts, sessions, and profile data; this
// service never persists any of it. The client exposes the two calls
// the core needs: batch profile lookup and session token verification
package identity

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	perr "chirp/internal/platform/errors"
	"chirp/internal/platform/logger"
)

const (
	defaultTimeout   = 10 * time.Second
	defaultUA        = "chirp-api"
	defaultMaxRetry  = 3
	defaultRetryBase = 250 * time.Millisecond
)

// Options configures the Client
type Options struct {
	BaseURL   string
	UserAgent string
	Timeout   time.Duration

	// SecretKey authenticates this backend against the provider
	SecretKey string

	// Retry config for transient responses
	MaxRetries int
	RetryBase  time.Duration
}

// Client is a minimal identity provider REST client with retries
type Client struct {
	http  *http.Client
	opts  Options
	log   logger.Logger
	now   func() time.Time
	sleep func(time.Duration)
}

// NewClient creates a new Client with sane defaults
func NewClient(o Options) *Client {
	if o.UserAgent == "" {
		o.UserAgent = defaultUA
	}
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	if o.MaxRetries <= 0 {
		o.MaxRetries = defaultMaxRetry
	}
	if o.RetryBase <= 0 {
		o.RetryBase = defaultRetryBase
	}
	o.BaseURL = strings.TrimRight(o.BaseURL, "/")
	return &Client{
		http:  &http.Client{Timeout: o.Timeout},
		opts:  o,
		log:   *logger.Named("identity"),
		now:   time.Now,
		sleep: time.Sleep,
	}
}

// do issues a request with auth headers and retries on transient failures
//
// payload is kept as bytes so every retry attempt sends a fresh reader;
// a shared io.Reader would arrive drained on the second attempt
func (c *Client) do(ctx context.Context, method, path string, payload []byte) (*http.Response, error) {
	url := c.opts.BaseURL + path
	attempts := 0
	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		var body io.Reader
		if payload != nil {
			body = bytes.NewReader(payload)
		}
		req, err := http.NewRequestWithContext(ctx, method, url, body)
		if err != nil {
			return nil, perr.Wrapf(err, perr.ErrorCodeUnknown, "identity new request failed")
		}
		req.Header.Set("User-Agent", c.opts.UserAgent)
		req.Header.Set("Accept", "application/json")
		if payload != nil {
			req.Header.Set("Content-Type", "application/json")
		}
		if c.opts.SecretKey != "" {
			req.Header.Set("Authorization", "Bearer "+c.opts.SecretKey)
		}

		start := c.now()
		resp, err := c.http.Do(req)
		lat := c.now().Sub(start)

		if err != nil {
			if !c.shouldRetry(attempts) {
				return nil, perr.Wrapf(err, perr.ErrorCodeUnavailable, "identity do failed")
			}
			back := c.backoff(attempts)
			c.log.Warn().Dur("retry_in", back).Int("attempt", attempts).Msg("identity transport error retrying")
			c.sleep(back)
			attempts++
			continue
		}

		c.log.Debug().
			Str("method", method).
			Str("path", path).
			Int("status", resp.StatusCode).
			Int("attempt", attempts).
			Dur("latency", lat).
			Msg("identity http response")

		switch resp.StatusCode {
		case http.StatusOK, http.StatusCreated:
			return resp, nil
		case http.StatusUnauthorized, http.StatusForbidden:
			_ = drainAndClose(resp.Body)
			return nil, perr.Unauthorizedf("identity provider rejected credentials")
		case http.StatusNotFound:
			_ = drainAndClose(resp.Body)
			return nil, perr.NotFoundf("identity resource not found")
		case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
			if !c.shouldRetry(attempts) {
				_ = drainAndClose(resp.Body)
				return nil, perr.Newf(perr.ErrorCodeUnavailable, "identity transient server error")
			}
			back := c.backoff(attempts)
			c.log.Warn().Dur("retry_in", back).Int("attempt", attempts).Msg("identity transient error retrying")
			_ = drainAndClose(resp.Body)
			c.sleep(back)
			attempts++
			continue
		default:
			tail, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
			_ = resp.Body.Close()
			return nil, perr.Newf(perr.ErrorCodeUnknown, "identity unexpected status %d body %s", resp.StatusCode, string(tail))
		}
	}
}

func (c *Client) backoff(attempt int) time.Duration {
	d := c.opts.RetryBase
	ms := int64(d / time.Millisecond)
	ms = ms << uint(attempt)
	ceil := int64(10 * time.Second / time.Millisecond)
	if ms > ceil {
		ms = ceil
	}
	return time.Duration(ms) * time.Millisecond
}

func (c *Client) shouldRetry(attempt int) bool {
	return attempt < c.opts.MaxRetries
}

func drainAndClose(rc io.ReadCloser) error {
	_, _ = io.Copy(io.Discard, io.LimitReader(rc, 512))
	return rc.Close()
}
