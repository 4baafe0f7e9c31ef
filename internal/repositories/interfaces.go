package repositories

import (
	"context"
	"time"

	"oakline-partners/internal/eligibility"
	"oakline-partners/internal/models"
	"oakline-partners/pkg/homefacts"
)

// CachedDecision is the redis payload for an address that has already been
// quoted: the provider record plus the decision computed from it without
// overrides. Override quotes reuse the record and re-evaluate.
type CachedDecision struct {
	Record   homefacts.PropertyRecord `json:"record"`
	Decision eligibility.Decision     `json:"decision"`
	CachedAt time.Time                `json:"cachedAt"`
}

type LeadRepository interface {
	Create(ctx context.Context, lead *models.Lead) error
	Update(ctx context.Context, lead *models.Lead) error
	FindByLeadID(ctx context.Context, leadID string) (*models.Lead, error)
	FindByLeadIDs(ctx context.Context, leadIDs []string) ([]models.Lead, error)
	FindByPartner(ctx context.Context, partnerID string, offset, limit int) ([]models.Lead, int64, error)
	CountByPartner(ctx context.Context, partnerID string) (int64, error)
}

type PartnerRepository interface {
	Create(ctx context.Context, partner *models.Partner) error
	FindByEmail(ctx context.Context, email string) (*models.Partner, error)
	FindByID(ctx context.Context, id string) (*models.Partner, error)
	UpdateStatus(ctx context.Context, id string, status models.PartnerStatus) error
}

// DecisionCache wraps the redis side of the quote flow: decisions keyed by
// normalized address, leads and lead-list pages keyed by lead ID, plus the
// per-lead key set used for invalidation.
type DecisionCache interface {
	GetDecision(ctx context.Context, key string) (*CachedDecision, error)
	SetDecision(ctx context.Context, key string, cached *CachedDecision, expiration time.Duration) error
	GetLead(ctx context.Context, key string) (*models.Lead, error)
	SetLead(ctx context.Context, key string, lead *models.Lead, expiration time.Duration) error
	GetLeadList(ctx context.Context, key string) ([]string, error)
	SetLeadList(ctx context.Context, key string, leadIDs []string, expiration time.Duration) error
	AddCacheKeyToLeadSet(ctx context.Context, leadID, cacheKey string) error
	InvalidateLeadCacheKeys(ctx context.Context, leadID string) error
	Delete(ctx context.Context, key string) error
}
