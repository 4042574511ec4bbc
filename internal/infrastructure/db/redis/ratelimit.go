package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RateLimiter counts requests per caller in fixed windows backed by Redis.
// Key format: ratelimit:<caller>:<window_number>
type RateLimiter struct {
	client *redis.Client
	max    int
	window time.Duration
}

// NewRateLimiter creates a RateLimiter allowing max requests per window.
func NewRateLimiter(client *redis.Client, max int, window time.Duration) *RateLimiter {
	if max <= 0 {
		max = 100
	}
	if window <= 0 {
		window = 15 * time.Minute
	}
	return &RateLimiter{client: client, max: max, window: window}
}

// Allow reports whether the caller identified by key is still within its
// budget for the current window.
func (l *RateLimiter) Allow(ctx context.Context, key string) (bool, error) {
	k := l.key(key, time.Now())
	n, err := l.client.Incr(ctx, k).Result()
	if err != nil {
		return false, fmt.Errorf("rate limit incr: %w", err)
	}
	if n == 1 {
		// First hit in this window owns the expiry.
		if err := l.client.Expire(ctx, k, l.window).Err(); err != nil {
			return false, fmt.Errorf("rate limit expire: %w", err)
		}
	}
	return n <= int64(l.max), nil
}

func (l *RateLimiter) key(caller string, now time.Time) string {
	return fmt.Sprintf("ratelimit:%s:%d", caller, now.Unix()/int64(l.window.Seconds()))
}
