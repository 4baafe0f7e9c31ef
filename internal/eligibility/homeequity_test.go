package eligibility_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"oakline-partners/internal/eligibility"
)

func TestEvaluateHomeEquity_EligibleCaliforniaHome(t *testing.T) {
	engine := eligibility.NewEngine()
	v := engine.EvaluateHomeEquity(eligibility.PropertyAttributes{
		HomeValue:       500000,
		MortgageBalance: 200000,
		State:           "CA",
		PropertyType:    eligibility.PropertySingleFamily,
		OwnershipType:   eligibility.OwnershipPersonal,
	})

	assert.True(t, v.IsEligible)
	assert.Empty(t, v.DisqualificationReasons)
	// Caps: 500000*0.80-200000 = 200000, 500000*0.2495 = 124750, 500000.
	assert.InDelta(t, 124750, v.OfferAmount, 0.01)
	assert.InDelta(t, 40, v.LTV, 0.01)
}

func TestMaxInvestment_CapOrdering(t *testing.T) {
	t.Run("cltv headroom binds", func(t *testing.T) {
		assert.InDelta(t, 50000, eligibility.MaxInvestment(500000, 350000), 0.01)
	})
	t.Run("equity share cap binds", func(t *testing.T) {
		assert.InDelta(t, 124750, eligibility.MaxInvestment(500000, 200000), 0.01)
	})
	t.Run("absolute cap binds", func(t *testing.T) {
		assert.InDelta(t, 500000, eligibility.MaxInvestment(2500000, 0), 0.01)
	})
	t.Run("floored at zero", func(t *testing.T) {
		assert.Zero(t, eligibility.MaxInvestment(200000, 400000))
	})
	t.Run("never exceeds share of current value", func(t *testing.T) {
		for _, hv := range []float64{175000, 400000, 1000000, 3000000} {
			max := eligibility.MaxInvestment(hv, 0)
			assert.LessOrEqual(t, max, hv*0.2495+0.01, "home value %v", hv)
			assert.LessOrEqual(t, max, 500000.0)
		}
	})
}

func TestEvaluateHomeEquity_StateRules(t *testing.T) {
	engine := eligibility.NewEngine()
	attrs := eligibility.PropertyAttributes{
		HomeValue:       500000,
		MortgageBalance: 200000,
		PropertyType:    eligibility.PropertySingleFamily,
		OwnershipType:   eligibility.OwnershipPersonal,
	}

	t.Run("texas is sale-leaseback only", func(t *testing.T) {
		attrs.State = "TX"
		v := engine.EvaluateHomeEquity(attrs)
		assert.False(t, v.IsEligible)
		assert.Equal(t, []string{eligibility.ReasonHEIStateNotEligible}, v.DisqualificationReasons)
	})

	t.Run("district of columbia is served", func(t *testing.T) {
		attrs.State = "DC"
		v := engine.EvaluateHomeEquity(attrs)
		assert.True(t, v.IsEligible)
	})
}

func TestEvaluateHomeEquity_PropertyTypeRules(t *testing.T) {
	engine := eligibility.NewEngine()
	attrs := eligibility.PropertyAttributes{
		HomeValue:       500000,
		MortgageBalance: 200000,
		State:           "CA",
		OwnershipType:   eligibility.OwnershipPersonal,
	}

	for _, pt := range []eligibility.PropertyType{
		eligibility.PropertyManufactured,
		eligibility.PropertyApartment,
		eligibility.PropertyLand,
	} {
		attrs.PropertyType = pt
		v := engine.EvaluateHomeEquity(attrs)
		assert.False(t, v.IsEligible, "type %s", pt)
		assert.Contains(t, v.DisqualificationReasons, eligibility.ReasonHEIPropertyType)
	}

	// Unlike sale-leaseback, condos and multi-family homes qualify.
	for _, pt := range []eligibility.PropertyType{
		eligibility.PropertyCondo,
		eligibility.PropertyTownhouse,
		eligibility.PropertyMultiFamily,
	} {
		attrs.PropertyType = pt
		v := engine.EvaluateHomeEquity(attrs)
		assert.True(t, v.IsEligible, "type %s", pt)
	}
}

func TestEvaluateHomeEquity_OwnershipRules(t *testing.T) {
	engine := eligibility.NewEngine()
	attrs := eligibility.PropertyAttributes{
		HomeValue:       500000,
		MortgageBalance: 200000,
		State:           "CA",
		PropertyType:    eligibility.PropertySingleFamily,
	}

	for _, ot := range []eligibility.OwnershipType{
		eligibility.OwnershipLLC,
		eligibility.OwnershipCorporation,
		eligibility.OwnershipPartnership,
	} {
		attrs.OwnershipType = ot
		v := engine.EvaluateHomeEquity(attrs)
		assert.False(t, v.IsEligible, "ownership %s", ot)
		assert.Contains(t, v.DisqualificationReasons, eligibility.ReasonHEIOwnership)
	}

	for _, ot := range []eligibility.OwnershipType{
		eligibility.OwnershipPersonal,
		eligibility.OwnershipTrust,
	} {
		attrs.OwnershipType = ot
		v := engine.EvaluateHomeEquity(attrs)
		assert.True(t, v.IsEligible, "ownership %s", ot)
	}
}

func TestEvaluateHomeEquity_HomeValueBounds(t *testing.T) {
	engine := eligibility.NewEngine()
	attrs := eligibility.PropertyAttributes{
		State:         "CA",
		PropertyType:  eligibility.PropertySingleFamily,
		OwnershipType: eligibility.OwnershipPersonal,
	}

	t.Run("at the minimum", func(t *testing.T) {
		attrs.HomeValue = 175000
		v := engine.EvaluateHomeEquity(attrs)
		assert.True(t, v.IsEligible)
	})

	t.Run("below the minimum", func(t *testing.T) {
		attrs.HomeValue = 174999
		v := engine.EvaluateHomeEquity(attrs)
		assert.False(t, v.IsEligible)
		assert.Contains(t, v.DisqualificationReasons, eligibility.ReasonHEIValueBelowMin)
	})

	t.Run("at the maximum", func(t *testing.T) {
		attrs.HomeValue = 3000000
		v := engine.EvaluateHomeEquity(attrs)
		assert.True(t, v.IsEligible)
	})

	t.Run("above the maximum", func(t *testing.T) {
		attrs.HomeValue = 3000001
		v := engine.EvaluateHomeEquity(attrs)
		assert.False(t, v.IsEligible)
		assert.Contains(t, v.DisqualificationReasons, eligibility.ReasonHEIValueAboveMax)
	})
}

func TestEvaluateHomeEquity_CLTVAndInvestmentFloor(t *testing.T) {
	engine := eligibility.NewEngine()
	attrs := eligibility.PropertyAttributes{
		HomeValue:     500000,
		State:         "CA",
		PropertyType:  eligibility.PropertySingleFamily,
		OwnershipType: eligibility.OwnershipPersonal,
	}

	t.Run("investment exactly at the floor", func(t *testing.T) {
		attrs.MortgageBalance = 385000 // 500000*0.80 - 385000 = 15000
		v := engine.EvaluateHomeEquity(attrs)
		assert.True(t, v.IsEligible)
		assert.InDelta(t, 15000, v.OfferAmount, 0.01)
	})

	t.Run("equity below the floor", func(t *testing.T) {
		attrs.MortgageBalance = 386000
		v := engine.EvaluateHomeEquity(attrs)
		assert.False(t, v.IsEligible)
		assert.Equal(t, []string{eligibility.ReasonHEIInvestmentTooLow}, v.DisqualificationReasons)
		assert.Zero(t, v.OfferAmount)
	})

	t.Run("at the cltv limit no equity remains", func(t *testing.T) {
		attrs.MortgageBalance = 400000
		v := engine.EvaluateHomeEquity(attrs)
		assert.False(t, v.IsEligible)
		// The 80% rule itself passes at the boundary; the investment floor trips.
		assert.NotContains(t, v.DisqualificationReasons, eligibility.ReasonHEICLTVTooHigh)
		assert.Contains(t, v.DisqualificationReasons, eligibility.ReasonHEIInvestmentTooLow)
	})

	t.Run("above the cltv limit", func(t *testing.T) {
		attrs.MortgageBalance = 410000
		v := engine.EvaluateHomeEquity(attrs)
		assert.False(t, v.IsEligible)
		assert.Contains(t, v.DisqualificationReasons, eligibility.ReasonHEICLTVTooHigh)
	})
}

func TestEvaluateHomeEquity_InvestmentGrowsAsMortgageShrinks(t *testing.T) {
	engine := eligibility.NewEngine()
	attrs := eligibility.PropertyAttributes{
		HomeValue:     500000,
		State:         "CA",
		PropertyType:  eligibility.PropertySingleFamily,
		OwnershipType: eligibility.OwnershipPersonal,
	}

	attrs.MortgageBalance = 350000
	higher := engine.EvaluateHomeEquity(attrs)
	attrs.MortgageBalance = 300000
	lower := engine.EvaluateHomeEquity(attrs)

	assert.True(t, higher.IsEligible)
	assert.True(t, lower.IsEligible)
	assert.GreaterOrEqual(t, lower.OfferAmount, higher.OfferAmount)
}
