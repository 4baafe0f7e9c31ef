package validators

import (
	"fmt"

	"oakline-partners/internal/models"
)

// Payoff calculator clamp bounds.
const (
	MinAppreciationRate = -0.15
	MaxAppreciationRate = 0.25
	MaxPayoffTermYears  = 30
)

type payoffValidator struct{}

func NewPayoffValidator() PayoffValidator {
	return &payoffValidator{}
}

func (v *payoffValidator) ValidatePayoff(req *models.PayoffRequest) error {
	if req.HomeValue <= 0 {
		return fmt.Errorf("home value must be positive")
	}
	if req.Investment <= 0 {
		return fmt.Errorf("investment must be positive")
	}

	if req.HomeValue < MinHomeValueOverride {
		req.HomeValue = MinHomeValueOverride
	}
	if req.HomeValue > MaxHomeValueOverride {
		req.HomeValue = MaxHomeValueOverride
	}
	if req.MortgageBalance < 0 {
		req.MortgageBalance = 0
	}
	if req.MortgageBalance > req.HomeValue {
		req.MortgageBalance = req.HomeValue
	}
	if req.AppreciationRate < MinAppreciationRate {
		req.AppreciationRate = MinAppreciationRate
	}
	if req.AppreciationRate > MaxAppreciationRate {
		req.AppreciationRate = MaxAppreciationRate
	}
	if req.TermYears < 0 {
		req.TermYears = 0
	}
	if req.TermYears > MaxPayoffTermYears {
		req.TermYears = MaxPayoffTermYears
	}

	return nil
}
