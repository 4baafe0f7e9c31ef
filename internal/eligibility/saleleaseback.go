package eligibility

import "math"

// Sale-leaseback program limits. The offer is 70% of home value less the
// outstanding mortgage.
const (
	SaleLeasebackMinHomeValue = 200000.0
	SaleLeasebackMaxHomeValue = 1500000.0
	SaleLeasebackMaxLTV       = 65.0
	SaleLeasebackOfferRate    = 0.70
)

// States where the sale-leaseback program operates.
var saleLeasebackStates = map[string]bool{
	"AZ": true, "NV": true, "CA": true, "CO": true, "TX": true,
	"GA": true, "FL": true, "TN": true, "OH": true, "IN": true,
	"NC": true,
}

// EvaluateSaleLeaseback decides eligibility and offer amount for the
// sale-leaseback product. Every rule is checked; each failing rule appends
// its own reason, so a caller sees the full picture rather than the first
// failure. Ownership structure is intentionally not a rule here.
func (e *Engine) EvaluateSaleLeaseback(attrs PropertyAttributes) Verdict {
	ltv := loanToValue(attrs.HomeValue, attrs.MortgageBalance)

	var reasons []string
	if !saleLeasebackStates[normalizeState(attrs.State)] {
		reasons = append(reasons, ReasonSLStateNotEligible)
	}
	if attrs.PropertyType != PropertySingleFamily {
		reasons = append(reasons, ReasonSLNotSingleFamily)
	}
	if attrs.HomeValue < SaleLeasebackMinHomeValue {
		reasons = append(reasons, ReasonSLValueBelowMin)
	}
	if attrs.HomeValue > SaleLeasebackMaxHomeValue {
		reasons = append(reasons, ReasonSLValueAboveMax)
	}
	if ltv > SaleLeasebackMaxLTV {
		reasons = append(reasons, ReasonSLLTVTooHigh)
	}

	v := Verdict{
		Product:                 ProductSaleLeaseback,
		IsEligible:              len(reasons) == 0,
		LTV:                     round2(ltv),
		DisqualificationReasons: reasons,
	}
	if v.IsEligible {
		v.OfferAmount = round2(math.Max(0, attrs.HomeValue*SaleLeasebackOfferRate-attrs.MortgageBalance))
	}
	return v
}
