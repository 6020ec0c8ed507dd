// Package ratelimit provides fixed window and token bucket implementations of service.RateLimiter.
package ratelimit

import (
	"context"
	"log/slog"
	"time"

	"sapphire/internal/domain/service"

	"github.com/redis/go-redis/v9"
)

const (
	redisKeyPrefix = "sapphire:ratelimit:"
	redisTimeout   = 250 * time.Millisecond
)

type redisLimiter struct {
	client   *redis.Client
	logger   *slog.Logger
	requests int
	window   time.Duration
}

// NewRedisLimiter counts requests per key in a fixed window shared by every replica.
// Redis failures let the request through.
func NewRedisLimiter(client *redis.Client, requests int, window time.Duration, logger *slog.Logger) service.RateLimiter {
	if window <= 0 {
		window = time.Minute
	}

	return &redisLimiter{
		client:   client,
		logger:   logger,
		requests: requests,
		window:   window,
	}
}

// Allow increments the key's counter and compares it with the limit.
func (rl *redisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	if rl.requests <= 0 {
		return true, nil
	}

	ctx, cancel := context.WithTimeout(ctx, redisTimeout)
	defer cancel()

	redisKey := redisKeyPrefix + key
	counter, err := rl.client.Incr(ctx, redisKey).Result()
	if err != nil {
		rl.logRedisError(ctx, "incr", err)

		return true, nil
	}
	if counter == 1 {
		if err := rl.client.Expire(ctx, redisKey, rl.window).Err(); err != nil {
			rl.logRedisError(ctx, "expire", err)
		}
	}

	return counter <= int64(rl.requests), nil
}

func (rl *redisLimiter) logRedisError(ctx context.Context, op string, err error) {
	if rl.logger == nil {
		return
	}
	rl.logger.LogAttrs(ctx, slog.LevelError, "redis rate limiter error",
		slog.String("op", op),
		slog.Any("error", err),
	)
}
