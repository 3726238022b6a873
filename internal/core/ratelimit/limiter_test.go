package ratelimit

import (
	"context"
	"testing"
	"time"

	"logistics-rates/internal/core/cache"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLimiter(t *testing.T, limit int, window time.Duration) (*FixedWindowLimiter, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)

	adapter, err := cache.NewRedisAdapter("redis://" + mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { adapter.Close() })

	return NewFixedWindowLimiter(adapter, limit, window), mr
}

// TestFixedWindowLimiter_AllowsUnderLimit verifies requests within the limit
// pass with decreasing remaining counts.
func TestFixedWindowLimiter_AllowsUnderLimit(t *testing.T) {
	limiter, _ := newTestLimiter(t, 3, time.Minute)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		dec, err := limiter.Allow(ctx, "10.0.0.1")
		require.NoError(t, err)
		assert.True(t, dec.Allowed)
		assert.Equal(t, 2-i, dec.Remaining)
	}
}

// TestFixedWindowLimiter_BlocksOverLimit verifies the request after the
// limit is rejected.
func TestFixedWindowLimiter_BlocksOverLimit(t *testing.T) {
	limiter, _ := newTestLimiter(t, 2, time.Minute)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		dec, err := limiter.Allow(ctx, "10.0.0.1")
		require.NoError(t, err)
		require.True(t, dec.Allowed)
	}

	dec, err := limiter.Allow(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.False(t, dec.Allowed)
	assert.Zero(t, dec.Remaining)
	assert.Equal(t, time.Minute, dec.RetryAfter)
}

// TestFixedWindowLimiter_KeysAreIndependent verifies one client cannot
// exhaust another's budget.
func TestFixedWindowLimiter_KeysAreIndependent(t *testing.T) {
	limiter, _ := newTestLimiter(t, 1, time.Minute)
	ctx := context.Background()

	dec, err := limiter.Allow(ctx, "10.0.0.1")
	require.NoError(t, err)
	require.True(t, dec.Allowed)

	dec, err = limiter.Allow(ctx, "10.0.0.2")
	require.NoError(t, err)
	assert.True(t, dec.Allowed)
}

// TestFixedWindowLimiter_WindowResets verifies the counter restarts after
// the window expires.
func TestFixedWindowLimiter_WindowResets(t *testing.T) {
	limiter, mr := newTestLimiter(t, 1, time.Minute)
	ctx := context.Background()

	dec, err := limiter.Allow(ctx, "10.0.0.1")
	require.NoError(t, err)
	require.True(t, dec.Allowed)

	dec, err = limiter.Allow(ctx, "10.0.0.1")
	require.NoError(t, err)
	require.False(t, dec.Allowed)

	mr.FastForward(time.Minute)

	dec, err = limiter.Allow(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.True(t, dec.Allowed)
}

// TestFixedWindowLimiter_CacheUnavailable verifies the error surfaces so
// callers can decide the fail-open policy.
func TestFixedWindowLimiter_CacheUnavailable(t *testing.T) {
	limiter, mr := newTestLimiter(t, 1, time.Minute)
	mr.Close()

	_, err := limiter.Allow(context.Background(), "10.0.0.1")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "rate limit check failed")
}
