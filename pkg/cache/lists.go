package cache

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"oakline-partners/pkg/metrics"

	"github.com/go-redis/redis/v8"
)

// SetLeadListResult caches a page of lead IDs and, in the same script,
// registers the page key against every lead on it. An update to any of
// those leads then invalidates the page.
func SetLeadListResult(ctx context.Context, key string, leadIDs []string, expiration time.Duration) error {
	payload, err := json.Marshal(leadIDs)
	if err != nil {
		metrics.RedisErrorsTotal.WithLabelValues("set_list_marshal").Inc()
		return NewCacheError("set_list_marshal", err)
	}

	args := make([]interface{}, 0, len(leadIDs)+3)
	args = append(args, key, string(payload), strconv.Itoa(int(expiration.Seconds())))
	for _, id := range leadIDs {
		args = append(args, id)
	}

	start := time.Now()
	err = setLeadListScript.Run(ctx, RedisClient, []string{}, args...).Err()
	return observe("set_list", key, start, err)
}

// GetLeadListResult returns a cached page of lead IDs, or ErrCacheMiss.
func GetLeadListResult(ctx context.Context, key string) ([]string, error) {
	start := time.Now()
	val, err := RedisClient.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		metrics.RedisOperationDuration.WithLabelValues("get_list").Observe(time.Since(start).Seconds())
		return nil, ErrCacheMiss
	}
	if oerr := observe("get_list", key, start, err); oerr != nil {
		return nil, oerr
	}

	var leadIDs []string
	if err := json.Unmarshal([]byte(val), &leadIDs); err != nil {
		metrics.RedisErrorsTotal.WithLabelValues("get_list_unmarshal").Inc()
		return nil, NewCacheError("get_list_unmarshal", err)
	}
	return leadIDs, nil
}
