// Package ratelimit implements the admission check in front of the expensive
// generation endpoints. Enforcement is best-effort: when the redis backend is
// absent or failing, requests are allowed through rather than failing closed.
package ratelimit

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// Limiter answers whether an identifier may proceed right now.
type Limiter interface {
	Allow(ctx context.Context, identifier string) (bool, error)
}

type noop struct{}

// NewNoop returns a limiter that admits everything. Wired when no redis
// backend is configured.
func NewNoop() Limiter {
	return noop{}
}

func (noop) Allow(context.Context, string) (bool, error) {
	return true, nil
}

type redisLimiter struct {
	client *redis.Client
	limit  int64
	window time.Duration
}

// NewRedis returns a sliding-window limiter admitting limit requests per
// rolling window per identifier, backed by a redis sorted set keyed by
// identifier with request timestamps as both member and score.
func NewRedis(client *redis.Client, limit int, window time.Duration) Limiter {
	return &redisLimiter{
		client: client,
		limit:  int64(limit),
		window: window,
	}
}

// slidingWindow prunes, counts and conditionally records in one atomic unit,
// so concurrent requests from one identifier cannot race past the budget.
// ARGV: now (micros), window (micros), limit, member, ttl (millis).
var slidingWindow = redis.NewScript(`
local key = KEYS[1]
local now = tonumber(ARGV[1])
local window = tonumber(ARGV[2])
local limit = tonumber(ARGV[3])

redis.call("ZREMRANGEBYSCORE", key, 0, now - window)
if redis.call("ZCARD", key) >= limit then
	return 0
end
redis.call("ZADD", key, now, ARGV[4])
redis.call("PEXPIRE", key, ARGV[5])
return 1
`)

func (l *redisLimiter) Allow(ctx context.Context, identifier string) (bool, error) {
	now := time.Now()
	key := "ratelimit:" + identifier
	member := strconv.FormatInt(now.UnixNano(), 10)

	allowed, err := slidingWindow.Run(ctx, l.client, []string{key},
		now.UnixMicro(), l.window.Microseconds(), l.limit,
		member, l.window.Milliseconds()).Int()
	if err != nil {
		// Fail open: availability of the feature beats enforcement.
		return true, fmt.Errorf("rate limit check: %w", err)
	}

	return allowed == 1, nil
}
