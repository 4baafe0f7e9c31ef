package validators_test

import (
	"testing"

	"oakline-partners/internal/models"
	"oakline-partners/internal/validators"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 { return &v }

func TestValidateQuoteRequiresAnAddress(t *testing.T) {
	v := validators.NewLeadValidator()

	err := v.ValidateQuote(&models.QuoteRequest{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "street address and city are required")
}

func TestValidateQuoteAcceptsFullAddressLine(t *testing.T) {
	v := validators.NewLeadValidator()

	err := v.ValidateQuote(&models.QuoteRequest{Address: "12 Juniper Ct, Austin, TX 78701"})
	assert.NoError(t, err)
}

func TestValidateQuoteAcceptsAddressParts(t *testing.T) {
	v := validators.NewLeadValidator()

	err := v.ValidateQuote(&models.QuoteRequest{StreetAddress: "12 Juniper Ct", City: "Austin"})
	assert.NoError(t, err)
}

func TestValidateQuoteRejectsCityOnly(t *testing.T) {
	v := validators.NewLeadValidator()

	err := v.ValidateQuote(&models.QuoteRequest{City: "Austin"})
	assert.Error(t, err)
}

func TestValidateQuoteClampsOverrides(t *testing.T) {
	v := validators.NewLeadValidator()

	t.Run("home value below floor", func(t *testing.T) {
		req := &models.QuoteRequest{Address: "12 Juniper Ct, Austin, TX 78701", HomeValue: floatPtr(1000)}
		require.NoError(t, v.ValidateQuote(req))
		assert.InDelta(t, validators.MinHomeValueOverride, *req.HomeValue, 0.001)
	})

	t.Run("home value above cap", func(t *testing.T) {
		req := &models.QuoteRequest{Address: "12 Juniper Ct, Austin, TX 78701", HomeValue: floatPtr(90000000)}
		require.NoError(t, v.ValidateQuote(req))
		assert.InDelta(t, validators.MaxHomeValueOverride, *req.HomeValue, 0.001)
	})

	t.Run("negative mortgage", func(t *testing.T) {
		req := &models.QuoteRequest{Address: "12 Juniper Ct, Austin, TX 78701", MortgageBalance: floatPtr(-5)}
		require.NoError(t, v.ValidateQuote(req))
		assert.InDelta(t, 0, *req.MortgageBalance, 0.001)
	})

	t.Run("mortgage above overridden value", func(t *testing.T) {
		req := &models.QuoteRequest{
			Address:         "12 Juniper Ct, Austin, TX 78701",
			HomeValue:       floatPtr(300000),
			MortgageBalance: floatPtr(450000),
		}
		require.NoError(t, v.ValidateQuote(req))
		assert.InDelta(t, 300000, *req.MortgageBalance, 0.001)
	})

	t.Run("in-range overrides untouched", func(t *testing.T) {
		req := &models.QuoteRequest{
			Address:         "12 Juniper Ct, Austin, TX 78701",
			HomeValue:       floatPtr(450000),
			MortgageBalance: floatPtr(120000),
		}
		require.NoError(t, v.ValidateQuote(req))
		assert.InDelta(t, 450000, *req.HomeValue, 0.001)
		assert.InDelta(t, 120000, *req.MortgageBalance, 0.001)
	})
}

func TestValidateSubmitRequiresHomeownerIdentity(t *testing.T) {
	v := validators.NewLeadValidator()

	err := v.ValidateSubmit(&models.SubmitLeadRequest{FirstName: "Dana"})
	assert.Error(t, err)

	err = v.ValidateSubmit(&models.SubmitLeadRequest{FirstName: "Dana", LastName: "Whitfield"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "email")
}

func TestValidateSubmitRejectsBadEmail(t *testing.T) {
	v := validators.NewLeadValidator()

	err := v.ValidateSubmit(&models.SubmitLeadRequest{
		FirstName: "Dana",
		LastName:  "Whitfield",
		Email:     "not-an-email",
	})
	assert.Error(t, err)
}

func TestValidateSubmitAcceptsCompleteHomeowner(t *testing.T) {
	v := validators.NewLeadValidator()

	err := v.ValidateSubmit(&models.SubmitLeadRequest{
		FirstName: "Dana",
		LastName:  "Whitfield",
		Email:     "dana@example.com",
		Phone:     "555-0142",
	})
	assert.NoError(t, err)
}
