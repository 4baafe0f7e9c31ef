package services

import (
	"context"
	"net/http"

	"oakline-partners/internal/eligibility"
	"oakline-partners/internal/errors"
	"oakline-partners/internal/models"
	"oakline-partners/internal/validators"
)

// PayoffService runs the home-equity payoff preview. The projection is a
// calculator, not a commitment; nothing it returns is persisted.
type PayoffService struct {
	engine    *eligibility.Engine
	validator validators.PayoffValidator
}

func NewPayoffService(engine *eligibility.Engine, validator validators.PayoffValidator) *PayoffService {
	return &PayoffService{
		engine:    engine,
		validator: validator,
	}
}

func (s *PayoffService) ProjectPayoff(ctx context.Context, req *models.PayoffRequest) (*eligibility.PayoffProjection, error) {
	if err := s.validator.ValidatePayoff(req); err != nil {
		return nil, errors.NewAppError(err.Error(), errors.MsgInvalidParameters, errors.ErrCodeInvalidParameters, http.StatusBadRequest, err)
	}

	projection := s.engine.ProjectPayoff(eligibility.PayoffInput{
		HomeValue:          req.HomeValue,
		MortgageBalance:    req.MortgageBalance,
		Investment:         req.Investment,
		AnnualAppreciation: req.AppreciationRate,
		TermYears:          req.TermYears,
	})
	return &projection, nil
}
