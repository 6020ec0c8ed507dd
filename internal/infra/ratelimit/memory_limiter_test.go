package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryLimiter_RejectsAfterBurst(t *testing.T) {
	limiter := NewMemoryLimiter(3, time.Minute)
	ctx := context.Background()

	for i := range 3 {
		allowed, err := limiter.Allow(ctx, "10.0.0.1")
		require.NoError(t, err)
		assert.True(t, allowed, "request %d should pass", i)
	}

	allowed, err := limiter.Allow(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.False(t, allowed)

	// Other keys have their own bucket
	allowed, err = limiter.Allow(ctx, "10.0.0.2")
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestMemoryLimiter_Refills(t *testing.T) {
	limiter := NewMemoryLimiter(2, time.Minute).(*memoryLimiter)
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return now }
	ctx := context.Background()

	for range 2 {
		allowed, _ := limiter.Allow(ctx, "k")
		assert.True(t, allowed)
	}
	allowed, _ := limiter.Allow(ctx, "k")
	assert.False(t, allowed)

	now = now.Add(31 * time.Second)
	allowed, _ = limiter.Allow(ctx, "k")
	assert.True(t, allowed)
}

func TestMemoryLimiter_PrunesStaleKeys(t *testing.T) {
	limiter := NewMemoryLimiter(1, time.Minute).(*memoryLimiter)
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return now }
	ctx := context.Background()

	_, _ = limiter.Allow(ctx, "old")
	now = now.Add(staleLimiterAge + time.Minute)
	_, _ = limiter.Allow(ctx, "new")

	assert.NotContains(t, limiter.clients, "old")
	assert.Contains(t, limiter.clients, "new")
}

func TestAllowAll(t *testing.T) {
	allowed, err := NewAllowAll().Allow(context.Background(), "anything")
	require.NoError(t, err)
	assert.True(t, allowed)
}
