package validators

import (
	"fmt"
	"strings"

	"oakline-partners/internal/models"
)

// Override clamp bounds. Values outside these are slid back to the nearest
// bound rather than rejected; the engine tolerates anything numeric.
const (
	MinHomeValueOverride = 50000.0
	MaxHomeValueOverride = 5000000.0
	MaxMortgageOverride  = 5000000.0
)

type leadValidator struct{}

func NewLeadValidator() LeadValidator {
	return &leadValidator{}
}

func (v *leadValidator) ValidateQuote(req *models.QuoteRequest) error {
	hasFullAddress := strings.TrimSpace(req.Address) != ""
	hasParts := strings.TrimSpace(req.StreetAddress) != "" && strings.TrimSpace(req.City) != ""
	if !hasFullAddress && !hasParts {
		return fmt.Errorf("street address and city are required")
	}

	if req.HomeValue != nil {
		if *req.HomeValue < MinHomeValueOverride {
			*req.HomeValue = MinHomeValueOverride
		}
		if *req.HomeValue > MaxHomeValueOverride {
			*req.HomeValue = MaxHomeValueOverride
		}
	}
	if req.MortgageBalance != nil {
		if *req.MortgageBalance < 0 {
			*req.MortgageBalance = 0
		}
		if *req.MortgageBalance > MaxMortgageOverride {
			*req.MortgageBalance = MaxMortgageOverride
		}
		if req.HomeValue != nil && *req.MortgageBalance > *req.HomeValue {
			*req.MortgageBalance = *req.HomeValue
		}
	}

	return nil
}

func (v *leadValidator) ValidateSubmit(req *models.SubmitLeadRequest) error {
	if req.FirstName == "" || req.LastName == "" {
		return fmt.Errorf("homeowner first and last name are required")
	}
	if req.Email == "" {
		return fmt.Errorf("homeowner email is required")
	}
	if !isValidEmail(req.Email) {
		return fmt.Errorf("invalid homeowner email format")
	}
	if req.Phone != "" && len(req.Phone) > 15 {
		return fmt.Errorf("homeowner phone exceeds maximum length of 15 characters")
	}
	return nil
}
