package services

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"oakline-partners/internal/eligibility"
	"oakline-partners/internal/errors"
	"oakline-partners/internal/models"
	"oakline-partners/internal/repositories"
	"oakline-partners/internal/transformers"
	"oakline-partners/internal/validators"
	"oakline-partners/pkg/cache"
	"oakline-partners/pkg/homefacts"
	"oakline-partners/pkg/logger"
	"oakline-partners/pkg/metrics"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Leads and list pages stay cached for an hour; address decisions expire on
// the configured TTL so a stale valuation cannot back an offer indefinitely.
const leadCacheTTL = time.Hour

type QuoteService struct {
	leadRepo    repositories.LeadRepository
	cache       repositories.DecisionCache
	provider    PropertyDataProvider
	addrTrans   transformers.AddressTransformer
	attrTrans   transformers.AttributesTransformer
	validator   validators.LeadValidator
	engine      *eligibility.Engine
	decisionTTL time.Duration
}

func NewQuoteService(
	leadRepo repositories.LeadRepository,
	decisionCache repositories.DecisionCache,
	provider PropertyDataProvider,
	addrTrans transformers.AddressTransformer,
	attrTrans transformers.AttributesTransformer,
	validator validators.LeadValidator,
	engine *eligibility.Engine,
	decisionTTL time.Duration,
) *QuoteService {
	return &QuoteService{
		leadRepo:    leadRepo,
		cache:       decisionCache,
		provider:    provider,
		addrTrans:   addrTrans,
		attrTrans:   attrTrans,
		validator:   validator,
		engine:      engine,
		decisionTTL: decisionTTL,
	}
}

// Quote runs the full intake flow for one address: parse, fetch the provider
// record (decision cache first), normalize into engine attributes, evaluate
// both products, and persist the result as a lead owned by the partner.
// Quotes with manual overrides reuse any cached provider record but always
// re-evaluate, and their decisions are never written back to the address
// cache.
func (s *QuoteService) Quote(ctx context.Context, partnerID string, req *models.QuoteRequest) (*models.Lead, error) {
	ginCtx, ok := ctx.(*gin.Context)
	if !ok {
		ginCtx = &gin.Context{}
	}

	if err := s.validator.ValidateQuote(req); err != nil {
		logger.GlobalLogger.Errorf("Invalid quote request: partner=%s, error=%v", partnerID, err)
		return nil, errors.NewAppError(err.Error(), errors.MsgInvalidAddress, errors.ErrCodeInvalidAddress, http.StatusBadRequest, err)
	}

	address := s.resolveAddress(req)
	if address.StreetAddress == "" || address.City == "" {
		logger.GlobalLogger.Errorf("Missing address fields: partner=%s, address=%q", partnerID, req.Address)
		return nil, fmt.Errorf("street address and city are required")
	}

	overrides := transformers.AttributeOverrides{
		HomeValue:       req.HomeValue,
		MortgageBalance: req.MortgageBalance,
	}
	hasOverrides := overrides.HomeValue != nil || overrides.MortgageBalance != nil

	cacheKey := cache.DecisionKey(address.StreetAddress, address.City, address.State, address.ZipCode)
	ginCtx.Set("query", address.StreetAddress+", "+address.City)

	cached, err := s.cache.GetDecision(ctx, cacheKey)
	if err != nil {
		logger.GlobalLogger.Errorf("Decision cache read failed: key=%s, error=%v", cacheKey, err)
		cached = nil
	}

	var record *homefacts.PropertyRecord
	var decision eligibility.Decision
	var attrs eligibility.PropertyAttributes

	switch {
	case cached != nil && !hasOverrides:
		// Full hit: the stored decision was computed without overrides, so it
		// can be reused as-is.
		ginCtx.Set("cache_hit", true)
		ginCtx.Set("data_source", "REDIS")
		record = &cached.Record
		attrs = s.attrTrans.FromPropertyRecord(record, overrides)
		decision = cached.Decision
	case cached != nil:
		// Record hit: reuse the provider record, re-evaluate with overrides.
		ginCtx.Set("cache_hit", true)
		ginCtx.Set("data_source", "REDIS")
		record = &cached.Record
		attrs = s.attrTrans.FromPropertyRecord(record, overrides)
		decision = s.evaluate(attrs)
	default:
		ginCtx.Set("cache_hit", false)
		ginCtx.Set("data_source", "PROVIDER")
		record, err = s.fetchRecord(ctx, address)
		if err != nil {
			return nil, err
		}
		attrs = s.attrTrans.FromPropertyRecord(record, overrides)
		decision = s.evaluate(attrs)
	}

	lead := &models.Lead{
		LeadID:     uuid.NewString(),
		PartnerID:  partnerID,
		Address:    address,
		Attributes: attrs,
		Decision:   decision,
		Status:     models.LeadStatusUnqualified,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}
	if decision.EitherEligible {
		lead.Status = models.LeadStatusQualified
	}

	if err := s.leadRepo.Create(ctx, lead); err != nil {
		logger.GlobalLogger.Errorf("Failed to persist lead: partner=%s, lead=%s, error=%v", partnerID, lead.LeadID, err)
		return nil, err
	}
	ginCtx.Set("lead_id", lead.LeadID)

	if cached == nil && !hasOverrides {
		toCache := &repositories.CachedDecision{
			Record:   *record,
			Decision: decision,
			CachedAt: time.Now(),
		}
		if err := s.cache.SetDecision(ctx, cacheKey, toCache, s.decisionTTL); err != nil {
			logger.GlobalLogger.Errorf("Decision cache write failed: key=%s, error=%v", cacheKey, err)
		}
	}
	_ = s.cache.SetLead(ctx, cache.LeadKey(lead.LeadID), lead, leadCacheTTL)
	_ = s.cache.AddCacheKeyToLeadSet(ctx, lead.LeadID, cacheKey)

	logger.GlobalLogger.Printf("Quote evaluated: partner=%s, lead=%s, eligible=%t, bestOffer=%.2f",
		partnerID, lead.LeadID, decision.EitherEligible, decision.BestOfferAmount)
	return lead, nil
}

// resolveAddress prefers the structured fields and falls back to parsing the
// free-text line.
func (s *QuoteService) resolveAddress(req *models.QuoteRequest) models.Address {
	if req.StreetAddress != "" && req.City != "" {
		return models.Address{
			StreetAddress: s.addrTrans.Normalize(req.StreetAddress),
			City:          s.addrTrans.Normalize(req.City),
			State:         s.addrTrans.Normalize(req.State),
			ZipCode:       s.addrTrans.Normalize(req.ZipCode),
		}
	}
	return s.addrTrans.Parse(req.Address)
}

func (s *QuoteService) fetchRecord(ctx context.Context, address models.Address) (*homefacts.PropertyRecord, error) {
	start := time.Now()
	record, err := s.provider.SearchByAddress(ctx, address.StreetAddress, address.City, address.State, address.ZipCode)
	metrics.ProviderRequestDuration.WithLabelValues("search").Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.ProviderRequestsTotal.WithLabelValues("search", "error").Inc()
		logger.GlobalLogger.Errorf("Provider lookup failed: street=%s, city=%s, error=%v", address.StreetAddress, address.City, err)
		return nil, err
	}
	metrics.ProviderRequestsTotal.WithLabelValues("search", "success").Inc()
	return record, nil
}

// evaluate runs the engine and records per-product outcomes.
func (s *QuoteService) evaluate(attrs eligibility.PropertyAttributes) eligibility.Decision {
	decision := s.engine.Evaluate(attrs)
	metrics.EvaluationsTotal.WithLabelValues(string(eligibility.ProductSaleLeaseback), outcomeLabel(decision.SaleLeaseback.IsEligible)).Inc()
	metrics.EvaluationsTotal.WithLabelValues(string(eligibility.ProductHomeEquity), outcomeLabel(decision.HomeEquity.IsEligible)).Inc()
	return decision
}

func outcomeLabel(eligible bool) string {
	if eligible {
		return "eligible"
	}
	return "ineligible"
}
