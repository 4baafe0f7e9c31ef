package services_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"oakline-partners/internal/eligibility"
	apperrors "oakline-partners/internal/errors"
	"oakline-partners/internal/models"
	"oakline-partners/internal/services"
	"oakline-partners/internal/validators"
)

func newPayoffService() *services.PayoffService {
	return services.NewPayoffService(eligibility.NewEngine(), validators.NewPayoffValidator())
}

func TestProjectPayoff_ReturnsProjection(t *testing.T) {
	svc := newPayoffService()

	projection, err := svc.ProjectPayoff(context.Background(), &models.PayoffRequest{
		HomeValue:        500000,
		MortgageBalance:  200000,
		Investment:       100000,
		AppreciationRate: 0.04,
		TermYears:        10,
	})
	require.NoError(t, err)

	// 100k on a 500k home at the 2.0x multiplier is a 40% share.
	assert.InDelta(t, 100000, projection.Investment, 0.01)
	assert.InDelta(t, 40, projection.EquitySharePercent, 0.01)
	assert.Greater(t, projection.Payoff, 100000.0)
	assert.False(t, projection.AprCapApplied)
}

func TestProjectPayoff_ClampsOutOfRangeInputs(t *testing.T) {
	svc := newPayoffService()

	projection, err := svc.ProjectPayoff(context.Background(), &models.PayoffRequest{
		HomeValue:        500000,
		MortgageBalance:  200000,
		Investment:       100000,
		AppreciationRate: 3.5, // clamped to the 25% ceiling
		TermYears:        90,  // clamped to 30 years
	})
	require.NoError(t, err)

	// At the clamped maximums the APR cap binds long before the raw share.
	assert.True(t, projection.AprCapApplied)
	assert.InDelta(t, projection.AprCappedShare, projection.Payoff, 0.01)
}

func TestProjectPayoff_InvestmentClampedToProgramMax(t *testing.T) {
	svc := newPayoffService()

	projection, err := svc.ProjectPayoff(context.Background(), &models.PayoffRequest{
		HomeValue:        500000,
		MortgageBalance:  200000,
		Investment:       400000, // above the 124750 program max for this home
		AppreciationRate: 0.03,
		TermYears:        5,
	})
	require.NoError(t, err)

	assert.InDelta(t, 124750, projection.Investment, 0.01)
}

func TestProjectPayoff_NonPositiveInputsRejected(t *testing.T) {
	svc := newPayoffService()

	_, err := svc.ProjectPayoff(context.Background(), &models.PayoffRequest{
		HomeValue:  0,
		Investment: 100000,
	})
	require.Error(t, err)

	appErr := apperrors.MapError(err)
	assert.Equal(t, apperrors.ErrCodeInvalidParameters, appErr.Code)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPStatus)

	_, err = svc.ProjectPayoff(context.Background(), &models.PayoffRequest{
		HomeValue:  400000,
		Investment: -5,
	})
	require.Error(t, err)
}
