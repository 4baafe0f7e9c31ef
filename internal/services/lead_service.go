package services

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"oakline-partners/internal/errors"
	"oakline-partners/internal/models"
	"oakline-partners/internal/repositories"
	"oakline-partners/internal/utils"
	"oakline-partners/internal/validators"
	"oakline-partners/pkg/cache"
	"oakline-partners/pkg/funding"
	"oakline-partners/pkg/logger"
	"oakline-partners/pkg/metrics"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

const leadListCacheTTL = 5 * time.Minute

type LeadService struct {
	leadRepo  repositories.LeadRepository
	cache     repositories.DecisionCache
	funding   FundingSubmitter
	validator validators.LeadValidator
}

func NewLeadService(
	leadRepo repositories.LeadRepository,
	decisionCache repositories.DecisionCache,
	fundingClient FundingSubmitter,
	validator validators.LeadValidator,
) *LeadService {
	return &LeadService{
		leadRepo:  leadRepo,
		cache:     decisionCache,
		funding:   fundingClient,
		validator: validator,
	}
}

// GetLead returns one of the partner's leads. Leads belonging to another
// partner are reported as not found rather than forbidden, so lead IDs leak
// nothing across accounts.
func (s *LeadService) GetLead(ctx context.Context, partnerID, leadID string) (*models.Lead, error) {
	ginCtx, ok := ctx.(*gin.Context)
	if !ok {
		ginCtx = &gin.Context{}
	}

	leadKey := cache.LeadKey(leadID)
	if lead, err := s.cache.GetLead(ctx, leadKey); err == nil && lead != nil {
		if lead.PartnerID != partnerID {
			return nil, mongo.ErrNoDocuments
		}
		ginCtx.Set("cache_hit", true)
		ginCtx.Set("data_source", "REDIS")
		return lead, nil
	}
	ginCtx.Set("cache_hit", false)
	ginCtx.Set("data_source", "DATABASE")

	lead, err := s.leadRepo.FindByLeadID(ctx, leadID)
	if err != nil {
		if err != mongo.ErrNoDocuments {
			logger.GlobalLogger.Errorf("DB query failed: lead=%s, error=%v", leadID, err)
		}
		return nil, err
	}
	if lead.PartnerID != partnerID {
		return nil, mongo.ErrNoDocuments
	}

	_ = s.cache.SetLead(ctx, leadKey, lead, leadCacheTTL)
	return lead, nil
}

// ListLeads returns a page of the partner's leads, newest first, with
// next/prev links. Pages are cached as ID lists so a lead update invalidates
// every page that contains it.
func (s *LeadService) ListLeads(ctx context.Context, partnerID string, offset, limit int, baseURL string, params url.Values) (*models.PaginatedLeadsResponse, error) {
	ginCtx, ok := ctx.(*gin.Context)
	if !ok {
		ginCtx = &gin.Context{}
	}

	if limit <= 0 || limit > 100 {
		limit = 10
	}
	if offset < 0 {
		offset = 0
	}

	listKey := cache.LeadListPaginatedKey(partnerID, offset, limit)
	if leadIDs, err := s.cache.GetLeadList(ctx, listKey); err == nil && leadIDs != nil {
		leads, err := s.leadRepo.FindByLeadIDs(ctx, leadIDs)
		if err == nil && len(leads) == len(leadIDs) {
			total, err := s.leadRepo.CountByPartner(ctx, partnerID)
			if err == nil {
				ginCtx.Set("cache_hit", true)
				ginCtx.Set("data_source", "REDIS")
				return s.buildPage(leads, total, offset, limit, baseURL, params), nil
			}
		}
	}
	ginCtx.Set("cache_hit", false)
	ginCtx.Set("data_source", "DATABASE")

	leads, total, err := s.leadRepo.FindByPartner(ctx, partnerID, offset, limit)
	if err != nil {
		logger.GlobalLogger.Errorf("DB query failed: partner=%s, offset=%d, limit=%d, error=%v", partnerID, offset, limit, err)
		return nil, err
	}

	leadIDs := make([]string, len(leads))
	for i, lead := range leads {
		leadIDs[i] = lead.LeadID
	}
	if len(leadIDs) > 0 {
		_ = s.cache.SetLeadList(ctx, listKey, leadIDs, leadListCacheTTL)
	}

	return s.buildPage(leads, total, offset, limit, baseURL, params), nil
}

func (s *LeadService) buildPage(leads []models.Lead, total int64, offset, limit int, baseURL string, params url.Values) *models.PaginatedLeadsResponse {
	next, prev := utils.PageLinks(baseURL, params, offset, limit, total)
	if leads == nil {
		leads = []models.Lead{}
	}
	return &models.PaginatedLeadsResponse{
		Data: leads,
		Meta: models.PaginationMeta{
			Total:  total,
			Offset: offset,
			Limit:  limit,
			Next:   next,
			Prev:   prev,
		},
	}
}

// Submit pushes a qualified lead to the funding network with the homeowner
// contact details attached. Only leads in the qualified state can be
// submitted; the decision and best offer recorded at quote time are forwarded
// verbatim.
func (s *LeadService) Submit(ctx context.Context, partner *models.Partner, leadID string, req *models.SubmitLeadRequest) (*models.Lead, error) {
	if err := s.validator.ValidateSubmit(req); err != nil {
		logger.GlobalLogger.Errorf("Invalid submission: lead=%s, error=%v", leadID, err)
		return nil, errors.NewAppError(err.Error(), errors.MsgInvalidParameters, errors.ErrCodeInvalidParameters, http.StatusBadRequest, err)
	}

	lead, err := s.GetLead(ctx, partner.ID.Hex(), leadID)
	if err != nil {
		return nil, err
	}

	switch lead.Status {
	case models.LeadStatusSubmitted:
		return nil, errors.NewAppError("lead already submitted", errors.MsgLeadAlreadySubmitted, errors.ErrCodeLeadAlreadySubmitted, http.StatusConflict, nil)
	case models.LeadStatusUnqualified:
		return nil, errors.NewAppError("lead is not qualified", errors.MsgLeadNotQualified, errors.ErrCodeLeadNotQualified, http.StatusConflict, nil)
	}

	submission := buildSubmission(lead, partner, req)
	reference, err := s.funding.Submit(ctx, submission)
	if err != nil {
		metrics.FundingSubmissionsTotal.WithLabelValues("error").Inc()
		return nil, err
	}
	metrics.FundingSubmissionsTotal.WithLabelValues("success").Inc()

	lead.Homeowner = &models.Homeowner{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
	}
	lead.FundingReference = reference
	lead.Status = models.LeadStatusSubmitted
	lead.UpdatedAt = time.Now()

	if err := s.leadRepo.Update(ctx, lead); err != nil {
		logger.GlobalLogger.Errorf("Failed to update submitted lead: lead=%s, reference=%s, error=%v", lead.LeadID, reference, err)
		return nil, err
	}

	_ = s.cache.InvalidateLeadCacheKeys(ctx, lead.LeadID)
	_ = s.cache.SetLead(ctx, cache.LeadKey(lead.LeadID), lead, leadCacheTTL)

	logger.GlobalLogger.Printf("Lead submitted: partner=%s, lead=%s, reference=%s", lead.PartnerID, lead.LeadID, reference)
	return lead, nil
}

// buildSubmission maps a lead and its partner onto the funding wire payload.
func buildSubmission(lead *models.Lead, partner *models.Partner, req *models.SubmitLeadRequest) *funding.Submission {
	return &funding.Submission{
		LeadReference:  lead.LeadID,
		PartnerCompany: partner.Company,
		PartnerEmail:   partner.Email,
		Homeowner: funding.Homeowner{
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Email:     req.Email,
			Phone:     req.Phone,
		},
		Address: funding.Address{
			StreetAddress: lead.Address.StreetAddress,
			City:          lead.Address.City,
			State:         lead.Address.State,
			ZipCode:       lead.Address.ZipCode,
		},
		Offers: []funding.ProductOffer{
			{
				Product:     string(lead.Decision.SaleLeaseback.Product),
				IsEligible:  lead.Decision.SaleLeaseback.IsEligible,
				OfferAmount: lead.Decision.SaleLeaseback.OfferAmount,
			},
			{
				Product:     string(lead.Decision.HomeEquity.Product),
				IsEligible:  lead.Decision.HomeEquity.IsEligible,
				OfferAmount: lead.Decision.HomeEquity.OfferAmount,
			},
		},
		BestOfferAmount: lead.Decision.BestOfferAmount,
	}
}
