package repositories

import (
	"context"
	"errors"
	"time"

	"oakline-partners/internal/models"
	"oakline-partners/pkg/cache"
)

// decisionCache adapts the redis helpers in pkg/cache to the DecisionCache
// interface the services consume. Misses come back as nil values, not
// errors: callers fall through to the provider or the database.
type decisionCache struct{}

func NewDecisionCache() DecisionCache {
	return &decisionCache{}
}

func (c *decisionCache) GetDecision(ctx context.Context, key string) (*CachedDecision, error) {
	var cached CachedDecision
	if err := cache.Get(ctx, key, &cached); err != nil {
		if errors.Is(err, cache.ErrCacheMiss) {
			return nil, nil
		}
		return nil, err
	}
	return &cached, nil
}

func (c *decisionCache) SetDecision(ctx context.Context, key string, cached *CachedDecision, expiration time.Duration) error {
	return cache.Set(ctx, key, cached, expiration)
}

func (c *decisionCache) GetLead(ctx context.Context, key string) (*models.Lead, error) {
	var lead models.Lead
	if err := cache.Get(ctx, key, &lead); err != nil {
		if errors.Is(err, cache.ErrCacheMiss) {
			return nil, nil
		}
		return nil, err
	}
	return &lead, nil
}

func (c *decisionCache) SetLead(ctx context.Context, key string, lead *models.Lead, expiration time.Duration) error {
	return cache.Set(ctx, key, lead, expiration)
}

func (c *decisionCache) GetLeadList(ctx context.Context, key string) ([]string, error) {
	leadIDs, err := cache.GetLeadListResult(ctx, key)
	if errors.Is(err, cache.ErrCacheMiss) {
		return nil, nil
	}
	return leadIDs, err
}

func (c *decisionCache) SetLeadList(ctx context.Context, key string, leadIDs []string, expiration time.Duration) error {
	return cache.SetLeadListResult(ctx, key, leadIDs, expiration)
}

func (c *decisionCache) AddCacheKeyToLeadSet(ctx context.Context, leadID, cacheKey string) error {
	return cache.AddCacheKeyToLeadSet(ctx, leadID, cacheKey)
}

func (c *decisionCache) InvalidateLeadCacheKeys(ctx context.Context, leadID string) error {
	return cache.InvalidateLeadCacheKeys(ctx, leadID)
}

func (c *decisionCache) Delete(ctx context.Context, key string) error {
	return cache.Delete(ctx, key)
}
