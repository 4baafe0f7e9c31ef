package eligibility

import "math"

// Home-equity-investment program limits.
const (
	HomeEquityMinHomeValue  = 175000.0
	HomeEquityMaxHomeValue  = 3000000.0
	HomeEquityMaxCLTV       = 80.0
	HomeEquityMinInvestment = 15000.0

	// Maximum-investment caps: the investor's eventual claim, at the 2.0x
	// exchange multiplier, must never exceed 49.9% of current home value,
	// and no single investment exceeds the absolute program cap.
	HomeEquityShareLimit  = 0.499
	HomeEquityMultiplier  = 2.0
	HomeEquityAbsoluteCap = 500000.0
)

// Jurisdictions where the home-equity program operates (includes DC).
var homeEquityStates = map[string]bool{
	"AZ": true, "CA": true, "FL": true, "HI": true, "ID": true,
	"IN": true, "KY": true, "MI": true, "MO": true, "MT": true,
	"NV": true, "NH": true, "NJ": true, "NM": true, "NC": true,
	"OH": true, "OR": true, "PA": true, "SC": true, "TN": true,
	"UT": true, "VA": true, "DC": true, "WI": true, "WY": true,
}

var homeEquityIneligibleTypes = map[PropertyType]bool{
	PropertyManufactured: true,
	PropertyApartment:    true,
	PropertyLand:         true,
}

var homeEquityIneligibleOwners = map[OwnershipType]bool{
	OwnershipLLC:         true,
	OwnershipCorporation: true,
	OwnershipPartnership: true,
}

// MaxInvestment returns the largest investment the home-equity program can
// extend against a property: the least of the 80% CLTV headroom, the
// future-equity-share cap, and the absolute program cap, floored at zero.
func MaxInvestment(homeValue, mortgageBalance float64) float64 {
	cltvCap := homeValue*(HomeEquityMaxCLTV/100) - mortgageBalance
	shareCap := homeValue * (HomeEquityShareLimit / HomeEquityMultiplier)
	capped := math.Min(cltvCap, math.Min(shareCap, HomeEquityAbsoluteCap))
	return round2(math.Max(0, capped))
}

// EvaluateHomeEquity decides eligibility and the maximum investment for the
// home-equity product. All rules are checked and reasons accumulated; the
// offer surfaced on an eligible verdict is the maximum investment.
func (e *Engine) EvaluateHomeEquity(attrs PropertyAttributes) Verdict {
	cltv := loanToValue(attrs.HomeValue, attrs.MortgageBalance)
	maxInvestment := MaxInvestment(attrs.HomeValue, attrs.MortgageBalance)

	var reasons []string
	if !homeEquityStates[normalizeState(attrs.State)] {
		reasons = append(reasons, ReasonHEIStateNotEligible)
	}
	if homeEquityIneligibleTypes[attrs.PropertyType] {
		reasons = append(reasons, ReasonHEIPropertyType)
	}
	if homeEquityIneligibleOwners[attrs.OwnershipType] {
		reasons = append(reasons, ReasonHEIOwnership)
	}
	if attrs.HomeValue < HomeEquityMinHomeValue {
		reasons = append(reasons, ReasonHEIValueBelowMin)
	}
	if attrs.HomeValue > HomeEquityMaxHomeValue {
		reasons = append(reasons, ReasonHEIValueAboveMax)
	}
	if cltv > HomeEquityMaxCLTV {
		reasons = append(reasons, ReasonHEICLTVTooHigh)
	}
	if maxInvestment < HomeEquityMinInvestment {
		reasons = append(reasons, ReasonHEIInvestmentTooLow)
	}

	v := Verdict{
		Product:                 ProductHomeEquity,
		IsEligible:              len(reasons) == 0,
		LTV:                     round2(cltv),
		DisqualificationReasons: reasons,
	}
	if v.IsEligible {
		v.OfferAmount = maxInvestment
	}
	return v
}
