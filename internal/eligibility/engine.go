package eligibility

import (
	"math"
	"strings"
)

// Engine evaluates normalized property attributes against both product rule
// sets. It holds no state and is safe for concurrent use across requests.
type Engine struct{}

func NewEngine() *Engine {
	return &Engine{}
}

// Evaluate runs the sale-leaseback and home-equity evaluators independently
// on the same attributes and combines them into a single decision. The best
// offer is the larger of the two product offers; ineligible products
// contribute zero.
func (e *Engine) Evaluate(attrs PropertyAttributes) Decision {
	sl := e.EvaluateSaleLeaseback(attrs)
	hei := e.EvaluateHomeEquity(attrs)

	decision := Decision{
		SaleLeaseback:   sl,
		HomeEquity:      hei,
		EitherEligible:  sl.IsEligible || hei.IsEligible,
		BestOfferAmount: math.Max(sl.OfferAmount, hei.OfferAmount),
	}
	if !decision.EitherEligible {
		decision.CombinedReasons = combinedReasons(attrs)
	}
	return decision
}

// combinedReasons builds the product-agnostic explanation shown when neither
// product qualifies. State and property type are reported only when they fail
// both programs; the remaining checks follow the wider home-equity limits.
func combinedReasons(attrs PropertyAttributes) []string {
	state := normalizeState(attrs.State)
	cltv := loanToValue(attrs.HomeValue, attrs.MortgageBalance)

	var reasons []string
	if !saleLeasebackStates[state] && !homeEquityStates[state] {
		reasons = append(reasons, ReasonStateNotServed)
	}
	if attrs.PropertyType != PropertySingleFamily && homeEquityIneligibleTypes[attrs.PropertyType] {
		reasons = append(reasons, ReasonPropertyTypeNotServed)
	}
	if homeEquityIneligibleOwners[attrs.OwnershipType] {
		reasons = append(reasons, ReasonOwnershipNotServed)
	}
	if attrs.HomeValue < HomeEquityMinHomeValue {
		reasons = append(reasons, ReasonValueBelowMinimum)
	}
	if attrs.HomeValue > HomeEquityMaxHomeValue {
		reasons = append(reasons, ReasonValueAboveMaximum)
	}
	if cltv > HomeEquityMaxCLTV {
		reasons = append(reasons, ReasonLTVTooHigh)
	}
	if MaxInvestment(attrs.HomeValue, attrs.MortgageBalance) < HomeEquityMinInvestment {
		reasons = append(reasons, ReasonEquityBelowMinimum)
	}
	return dedupe(reasons)
}

// loanToValue computes mortgageBalance/homeValue as a percentage, guarding
// against a zero or negative home value.
func loanToValue(homeValue, mortgageBalance float64) float64 {
	if homeValue <= 0 {
		return 0
	}
	return mortgageBalance / homeValue * 100
}

func normalizeState(state string) string {
	return strings.ToUpper(strings.TrimSpace(state))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func dedupe(reasons []string) []string {
	seen := make(map[string]bool, len(reasons))
	out := reasons[:0]
	for _, r := range reasons {
		if !seen[r] {
			seen[r] = true
			out = append(out, r)
		}
	}
	return out
}
