package cache

import (
	"context"
	"time"
)

// AddCacheKeyToLeadSet records that cacheKey holds data derived from the
// lead, so invalidating the lead sweeps the key away too.
func AddCacheKeyToLeadSet(ctx context.Context, leadID, cacheKey string) error {
	setKey := LeadKeysSetKey(leadID)
	start := time.Now()
	return observe("sadd", setKey, start, RedisClient.SAdd(ctx, setKey, cacheKey).Err())
}

// InvalidateLeadCacheKeys atomically deletes every cache key registered for
// the lead plus the registry set itself. Runs as a Lua script so a
// concurrent writer cannot re-register a key between the read and the
// deletes.
func InvalidateLeadCacheKeys(ctx context.Context, leadID string) error {
	start := time.Now()
	err := invalidateLeadCacheScript.Run(ctx, RedisClient, []string{}, leadID).Err()
	return observe("invalidate_lead", LeadKeysSetKey(leadID), start, err)
}
