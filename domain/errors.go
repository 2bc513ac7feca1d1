package domain

import "errors"

var (
	// ErrServiceUnconfigured signals that the credential for an external
	// service was absent at startup. The capability is disabled for the
	// process lifetime; callers surface it as 503 or a fallback reply.
	ErrServiceUnconfigured = errors.New("service not configured")

	// ErrRateLimited signals upstream backpressure. It is never retried
	// internally; callers surface a distinct retry-later message.
	ErrRateLimited = errors.New("rate limited by upstream")
)
