package ratelimit

import (
	"context"
	"fmt"
	"time"

	"logistics-rates/internal/core/cache"
)

// Decision is the outcome of one rate-limit check.
type Decision struct {
	// Allowed reports whether the request may proceed.
	Allowed bool
	// Remaining is the number of requests left in the current window.
	Remaining int
	// RetryAfter hints how long a rejected client should wait.
	RetryAfter time.Duration
}

// FixedWindowLimiter counts requests per key in fixed windows backed by the
// cache. Counters expire with the window, so idle keys cost nothing.
type FixedWindowLimiter struct {
	cache  cache.Cache
	limit  int
	window time.Duration
}

// NewFixedWindowLimiter creates a limiter allowing limit requests per window.
func NewFixedWindowLimiter(c cache.Cache, limit int, window time.Duration) *FixedWindowLimiter {
	return &FixedWindowLimiter{
		cache:  c,
		limit:  limit,
		window: window,
	}
}

// Limit returns the configured requests-per-window.
func (l *FixedWindowLimiter) Limit() int {
	return l.limit
}

// Allow records one request for key and decides whether it may proceed.
func (l *FixedWindowLimiter) Allow(ctx context.Context, key string) (Decision, error) {
	count, err := l.cache.Increment(ctx, "ratelimit:"+key, l.window)
	if err != nil {
		return Decision{}, fmt.Errorf("rate limit check failed: %w", err)
	}

	remaining := l.limit - int(count)
	if remaining < 0 {
		remaining = 0
	}

	return Decision{
		Allowed:    count <= int64(l.limit),
		Remaining:  remaining,
		RetryAfter: l.window,
	}, nil
}
