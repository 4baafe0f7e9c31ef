package funding_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"oakline-partners/pkg/funding"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSubmission() *funding.Submission {
	return &funding.Submission{
		LeadReference:  "3f1b8a58-0000-4000-8000-1234567890ab",
		PartnerCompany: "Acme Realty",
		PartnerEmail:   "ops@acmerealty.test",
		Homeowner: funding.Homeowner{
			FirstName: "Dana",
			LastName:  "Whitfield",
			Email:     "dana@example.test",
			Phone:     "555-0142",
		},
		Address: funding.Address{
			StreetAddress: "12 Juniper Ct",
			City:          "Austin",
			State:         "TX",
			ZipCode:       "78701",
		},
		Offers: []funding.ProductOffer{
			{Product: "sale_leaseback", IsEligible: true, OfferAmount: 180000},
			{Product: "home_equity_investment", IsEligible: false},
		},
		BestOfferAmount: 180000,
	}
}

func TestSubmitReturnsTrackingReference(t *testing.T) {
	var gotPayload funding.Submission
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/leads", r.URL.Path)
		assert.Equal(t, "test-api-key", r.Header.Get("X-API-Key"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotPayload))
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]string{
			"trackingReference": "FN-2024-001942",
			"status":            "accepted",
		})
	}))
	defer server.Close()

	client := funding.NewClient(server.URL, "test-api-key")
	ref, err := client.Submit(context.Background(), sampleSubmission())

	require.NoError(t, err)
	assert.Equal(t, "FN-2024-001942", ref)
	assert.Equal(t, "Acme Realty", gotPayload.PartnerCompany)
	assert.Len(t, gotPayload.Offers, 2)
	assert.InDelta(t, 180000, gotPayload.BestOfferAmount, 0.001)
}

func TestSubmitRejectedLeadIsNotRetried(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(map[string]string{"status": "rejected"})
	}))
	defer server.Close()

	client := funding.NewClient(server.URL, "test-api-key")
	_, err := client.Submit(context.Background(), sampleSubmission())

	require.Error(t, err)
	assert.ErrorIs(t, err, funding.ErrSubmissionRejected)
	assert.Equal(t, 1, calls)
}

func TestSubmitMissingTrackingReference(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]string{"status": "accepted"})
	}))
	defer server.Close()

	client := funding.NewClient(server.URL, "test-api-key")
	_, err := client.Submit(context.Background(), sampleSubmission())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "trackingReference")
}
