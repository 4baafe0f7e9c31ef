package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"oakline-partners/pkg/logger"
	"oakline-partners/pkg/metrics"

	"github.com/go-redis/redis/v8"
)

// observe records duration and error metrics for a redis call and wraps a
// failure into a CacheError. Every exported operation funnels through it.
func observe(op, key string, start time.Time, err error) error {
	metrics.RedisOperationDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
	if err == nil {
		return nil
	}
	metrics.RedisErrorsTotal.WithLabelValues(op).Inc()
	logger.GlobalLogger.Errorf("Redis %s failed: key=%s, error=%v", op, key, err)
	return NewCacheError(op, err)
}

// Set marshals the value to JSON and stores it under key with an expiration.
func Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		metrics.RedisErrorsTotal.WithLabelValues("set_marshal").Inc()
		return NewCacheError("set_marshal", err)
	}
	start := time.Now()
	return observe("set", key, start, RedisClient.Set(ctx, key, data, expiration).Err())
}

// Get loads the value stored under key into dest. Absent keys return
// ErrCacheMiss.
func Get(ctx context.Context, key string, dest interface{}) error {
	start := time.Now()
	val, err := RedisClient.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		metrics.RedisOperationDuration.WithLabelValues("get").Observe(time.Since(start).Seconds())
		return ErrCacheMiss
	}
	if oerr := observe("get", key, start, err); oerr != nil {
		return oerr
	}
	if err := json.Unmarshal([]byte(val), dest); err != nil {
		metrics.RedisErrorsTotal.WithLabelValues("get_unmarshal").Inc()
		logger.GlobalLogger.Errorf("Corrupt cache entry: key=%s, error=%v", key, err)
		return NewCacheError("get_unmarshal", err)
	}
	return nil
}

// Delete removes a key. Deleting an absent key is not an error.
func Delete(ctx context.Context, key string) error {
	start := time.Now()
	return observe("del", key, start, RedisClient.Del(ctx, key).Err())
}
