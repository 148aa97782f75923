package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "vagas:ratelimit:"

// RedisLimiter is a fixed-window counter shared by every API instance.
type RedisLimiter struct {
	client *redis.Client
	max    int64
	window time.Duration
}

// NewRedisLimiter connects to the redis instance at url, e.g.
// redis://:password@localhost:6379/0.
func NewRedisLimiter(url string, max int, window time.Duration) (*RedisLimiter, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	return &RedisLimiter{
		client: redis.NewClient(opts),
		max:    int64(max),
		window: window,
	}, nil
}

func (l *RedisLimiter) Ping(ctx context.Context) error {
	if err := l.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("ping redis: %w", err)
	}
	return nil
}

// Allow records one hit for key and reports whether it is still within the
// limit for the current window.
func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	redisKey := keyPrefix + key

	pipe := l.client.TxPipeline()
	hits := pipe.Incr(ctx, redisKey)
	pipe.ExpireNX(ctx, redisKey, l.window)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, fmt.Errorf("count hit for %q: %w", key, err)
	}

	return hits.Val() <= l.max, nil
}

func (l *RedisLimiter) Close() error {
	return l.client.Close()
}

// Unlimited allows every request. It is used when redis is not configured.
type Unlimited struct{}

func (Unlimited) Allow(context.Context, string) (bool, error) { return true, nil }
