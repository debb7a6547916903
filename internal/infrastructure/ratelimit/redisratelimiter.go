package ratelimit

import (
	"context"
	"fmt"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "helpdesk:ratelimit"

// windows lists every window a key can be counted in. Reset clears all of them.
var windows = []time.Duration{time.Minute, time.Hour}

// RedisRateLimiter keeps one sorted set per key and window, scored by request
// time in nanoseconds. Every attempt is recorded, denied ones included.
type RedisRateLimiter struct {
	client *redis.Client
	seq    atomic.Uint64
}

func NewRedisRateLimiter(client *redis.Client) *RedisRateLimiter {
	return &RedisRateLimiter{client: client}
}

func (l *RedisRateLimiter) limitFor(window time.Duration, limits Limits) int {
	if window == time.Minute {
		return limits.RequestsPerMinute
	}
	return limits.RequestsPerHour
}

func (l *RedisRateLimiter) Allow(ctx context.Context, key string, limits Limits) (bool, error) {
	now := time.Now()
	member := strconv.FormatInt(now.UnixNano(), 10) + "-" + strconv.FormatUint(l.seq.Add(1), 10)

	counts := make(map[time.Duration]*redis.IntCmd, len(windows))
	_, err := l.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, window := range windows {
			if l.limitFor(window, limits) <= 0 {
				continue
			}
			redisKey := l.key(key, window)
			pipe.ZRemRangeByScore(ctx, redisKey, "0", strconv.FormatInt(now.Add(-window).UnixNano(), 10))
			counts[window] = pipe.ZCard(ctx, redisKey)
			pipe.ZAdd(ctx, redisKey, redis.Z{Score: float64(now.UnixNano()), Member: member})
			pipe.Expire(ctx, redisKey, window+time.Minute)
		}
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("failed to record request: %w", err)
	}

	for window, count := range counts {
		if count.Val() >= int64(l.limitFor(window, limits)) {
			return false, nil
		}
	}
	return true, nil
}

// Count returns how many requests key made within window.
func (l *RedisRateLimiter) Count(ctx context.Context, key string, window time.Duration) (int64, error) {
	redisKey := l.key(key, window)
	windowStart := time.Now().Add(-window).UnixNano()

	var zcard *redis.IntCmd
	_, err := l.client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.ZRemRangeByScore(ctx, redisKey, "0", strconv.FormatInt(windowStart, 10))
		zcard = pipe.ZCard(ctx, redisKey)
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to count requests: %w", err)
	}
	return zcard.Val(), nil
}

// Reset forgets every recorded request of key.
func (l *RedisRateLimiter) Reset(ctx context.Context, key string) error {
	keys := make([]string, 0, len(windows))
	for _, window := range windows {
		keys = append(keys, l.key(key, window))
	}
	if err := l.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to reset %s: %w", key, err)
	}
	return nil
}

func (l *RedisRateLimiter) key(identifier string, window time.Duration) string {
	return fmt.Sprintf("%s:%s:%s", keyPrefix, identifier, window)
}
