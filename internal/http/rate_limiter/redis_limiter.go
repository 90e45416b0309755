package rate_limiter

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "ratelimit:catalog"

// RedisLimiter counts requests per client in fixed windows shared by every
// replica that points at the same Redis. Windows are whole seconds.
type RedisLimiter struct {
	rdb    *redis.Client
	limit  int64
	window time.Duration
}

func NewRedisLimiter(rdb *redis.Client, requests int, window time.Duration) *RedisLimiter {
	window = window.Round(time.Second)
	if window < time.Second {
		window = time.Second
	}
	return &RedisLimiter{rdb: rdb, limit: int64(requests), window: window}
}

func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	bucket := time.Now().Unix() / int64(l.window.Seconds())
	k := fmt.Sprintf("%s:%s:%d", keyPrefix, key, bucket)

	pipe := l.rdb.TxPipeline()
	incr := pipe.Incr(ctx, k)
	pipe.Expire(ctx, k, l.window)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, err
	}
	return incr.Val() <= l.limit, nil
}
