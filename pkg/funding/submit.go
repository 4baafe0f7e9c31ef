package funding

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"oakline-partners/pkg/logger"
)

// Homeowner identifies the person behind a submitted lead.
type Homeowner struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

// Address is the property address included in the submission payload.
type Address struct {
	StreetAddress string `json:"streetAddress"`
	City          string `json:"city"`
	State         string `json:"state"`
	ZipCode       string `json:"zipCode"`
}

// ProductOffer summarizes one product verdict for the funding payload.
type ProductOffer struct {
	Product     string  `json:"product"`
	IsEligible  bool    `json:"isEligible"`
	OfferAmount float64 `json:"offerAmount"`
}

// Submission is the payload posted to the funding network for a qualified
// lead.
type Submission struct {
	LeadReference   string         `json:"leadReference"`
	PartnerCompany  string         `json:"partnerCompany"`
	PartnerEmail    string         `json:"partnerEmail"`
	Homeowner       Homeowner      `json:"homeowner"`
	Address         Address        `json:"address"`
	Offers          []ProductOffer `json:"offers"`
	BestOfferAmount float64        `json:"bestOfferAmount"`
}

type submissionResponse struct {
	TrackingReference string `json:"trackingReference"`
	Status            string `json:"status"`
}

// Submit posts a qualified lead to the funding network and returns the
// tracking reference assigned to it. A 422 means the network refused the
// lead; that is surfaced as ErrSubmissionRejected without retrying.
func (c *Client) Submit(ctx context.Context, sub *Submission) (string, error) {
	payload, err := json.Marshal(sub)
	if err != nil {
		return "", &Error{Operation: "submit", Err: err}
	}

	submitURL := c.baseURL + "/v1/leads"

	maxRetries := 3
	for attempt := 1; attempt <= maxRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, submitURL, bytes.NewReader(payload))
		if err != nil {
			return "", &Error{Operation: "submit", Err: err}
		}
		req.Header.Set("X-API-Key", c.apiKey)
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Accept", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			logger.GlobalLogger.Errorf("Failed to send funding submission (attempt %d/%d): lead=%s, error=%v", attempt, maxRetries, sub.LeadReference, err)
			if attempt == maxRetries {
				return "", &Error{Operation: "submit", Err: fmt.Errorf("after %d attempts: %w", maxRetries, err)}
			}
			time.Sleep(time.Duration(attempt) * time.Second)
			continue
		}

		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			logger.GlobalLogger.Errorf("Failed to read funding response (attempt %d/%d): lead=%s, status=%s, error=%v", attempt, maxRetries, sub.LeadReference, resp.Status, err)
			if attempt == maxRetries {
				return "", &Error{Operation: "submit", Status: resp.StatusCode, Err: err}
			}
			time.Sleep(time.Duration(attempt) * time.Second)
			continue
		}

		if resp.StatusCode == http.StatusUnprocessableEntity {
			logger.GlobalLogger.Errorf("Funding network rejected lead: lead=%s, response=%s", sub.LeadReference, string(body))
			return "", &Error{Operation: "submit", Status: resp.StatusCode, Err: ErrSubmissionRejected}
		}
		if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
			logger.GlobalLogger.Errorf("Funding submission failed (attempt %d/%d): lead=%s, status=%s, response=%s", attempt, maxRetries, sub.LeadReference, resp.Status, string(body))
			if attempt == maxRetries {
				return "", &Error{Operation: "submit", Status: resp.StatusCode, Err: fmt.Errorf("unexpected status %s", resp.Status)}
			}
			time.Sleep(time.Duration(attempt) * time.Second)
			continue
		}

		var submitResp submissionResponse
		if err := json.Unmarshal(body, &submitResp); err != nil {
			logger.GlobalLogger.Errorf("Failed to decode funding response: lead=%s, response=%s, error=%v", sub.LeadReference, string(body), err)
			return "", &Error{Operation: "submit", Err: err}
		}
		if submitResp.TrackingReference == "" {
			return "", &Error{Operation: "submit", Status: resp.StatusCode, Err: fmt.Errorf("response missing trackingReference")}
		}

		logger.GlobalLogger.Printf("Lead submitted to funding network: lead=%s, reference=%s", sub.LeadReference, submitResp.TrackingReference)
		return submitResp.TrackingReference, nil
	}

	return "", &Error{Operation: "submit", Err: fmt.Errorf("max retries exceeded")}
}
