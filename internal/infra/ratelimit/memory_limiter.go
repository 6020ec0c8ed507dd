package ratelimit

import (
	"context"
	"sync"
	"time"

	"sapphire/internal/domain/service"

	"golang.org/x/time/rate"
)

const staleLimiterAge = 10 * time.Minute

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type memoryLimiter struct {
	mu        sync.Mutex
	clients   map[string]*clientLimiter
	limit     rate.Limit
	burst     int
	now       func() time.Time
	lastPrune time.Time
}

// NewMemoryLimiter keeps one token bucket per key in process memory.
// The bucket holds requests tokens and refills one every window/requests.
func NewMemoryLimiter(requests int, window time.Duration) service.RateLimiter {
	if window <= 0 {
		window = time.Minute
	}
	limit := rate.Inf
	if requests > 0 {
		limit = rate.Every(window / time.Duration(requests))
	}

	return &memoryLimiter{
		clients: make(map[string]*clientLimiter),
		limit:   limit,
		burst:   max(requests, 1),
		now:     time.Now,
	}
}

// Allow consumes one token from the key's bucket.
func (l *memoryLimiter) Allow(_ context.Context, key string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.prune(now)

	cl, ok := l.clients[key]
	if !ok {
		cl = &clientLimiter{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.clients[key] = cl
	}
	cl.lastSeen = now

	return cl.limiter.AllowN(now, 1), nil
}

// prune drops buckets that have not been used for a while. Caller holds mu.
func (l *memoryLimiter) prune(now time.Time) {
	if now.Sub(l.lastPrune) < staleLimiterAge {
		return
	}
	for key, cl := range l.clients {
		if now.Sub(cl.lastSeen) > staleLimiterAge {
			delete(l.clients, key)
		}
	}
	l.lastPrune = now
}

type allowAll struct{}

// NewAllowAll returns a limiter that never rejects.
func NewAllowAll() service.RateLimiter {
	return allowAll{}
}

func (allowAll) Allow(context.Context, string) (bool, error) {
	return true, nil
}
