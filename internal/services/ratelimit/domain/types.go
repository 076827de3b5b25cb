// Package domain holds the rate limit decision types and ports
package domain

import "time"

// Decision is the outcome of one atomic check-and-consume
//
// It is transient: derived from the external counter, never persisted
// by this service
type Decision struct {
	Subject   string
	Allowed   bool
	Remaining int
	// RetryAfter is how long until the oldest consumed slot leaves the
	// window; zero when allowed or unknown
	RetryAfter time.Duration
	At         time.Time
}
