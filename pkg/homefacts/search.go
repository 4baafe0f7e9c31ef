package homefacts

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"oakline-partners/pkg/logger"
)

// PropertyRecord is the provider's view of a property: who holds title,
// where it is, and what it is worth. Estimates can be degenerate (zero or
// implausibly low); callers apply the documented fallbacks.
type PropertyRecord struct {
	PropertyID               string  `json:"propertyId"`
	OwnerNames               string  `json:"ownerNames"`
	State                    string  `json:"state"`
	PropertyType             string  `json:"propertyType"`
	EstimatedValue           float64 `json:"estimatedValue"`
	EstimatedMortgageBalance float64 `json:"estimatedMortgageBalance"`
}

// validate rejects records the intake flow cannot work with. Value and
// balance are allowed to be degenerate; identity and location are not.
func (r *PropertyRecord) validate() error {
	if r.PropertyID == "" {
		return fmt.Errorf("record missing propertyId")
	}
	if r.State == "" {
		return fmt.Errorf("record missing state")
	}
	return nil
}

type searchResponse struct {
	Items []PropertyRecord `json:"items"`
}

// SearchByAddress looks up the property record for a parsed address. The
// response is decoded into a typed record and validated before it reaches
// the caller. Returns ErrNoPropertyFound (wrapped) when the provider has no
// match.
func (c *Client) SearchByAddress(ctx context.Context, street, city, state, zip string) (*PropertyRecord, error) {
	token, err := c.getToken(ctx)
	if err != nil {
		logger.GlobalLogger.Errorf("Failed to get HomeFacts token: error=%v", err)
		return nil, err
	}

	params := url.Values{}
	params.Set("streetAddress", street)
	if city != "" {
		params.Set("city", city)
	}
	if state != "" {
		params.Set("state", state)
	}
	if zip != "" {
		params.Set("zipCode", zip)
	}
	searchURL := c.baseURL + "/v1/properties/search?" + params.Encode()

	maxRetries := 3
	for attempt := 1; attempt <= maxRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
		if err != nil {
			return nil, &Error{Operation: "search", Err: err}
		}
		req.Header.Set("Authorization", "Bearer "+token)
		req.Header.Set("Accept", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			logger.GlobalLogger.Errorf("Failed to send property search request (attempt %d/%d): url=%s, error=%v", attempt, maxRetries, searchURL, err)
			if attempt == maxRetries {
				return nil, &Error{Operation: "search", Err: fmt.Errorf("after %d attempts: %w", maxRetries, err)}
			}
			time.Sleep(time.Duration(attempt) * time.Second)
			continue
		}

		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			logger.GlobalLogger.Errorf("Failed to read property search response (attempt %d/%d): url=%s, status=%s, error=%v", attempt, maxRetries, searchURL, resp.Status, err)
			if attempt == maxRetries {
				return nil, &Error{Operation: "search", Status: resp.StatusCode, Err: err}
			}
			time.Sleep(time.Duration(attempt) * time.Second)
			continue
		}

		if resp.StatusCode == http.StatusNotFound {
			return nil, &Error{Operation: "search", Status: resp.StatusCode, Err: ErrNoPropertyFound}
		}
		if resp.StatusCode != http.StatusOK {
			logger.GlobalLogger.Errorf("Property search failed (attempt %d/%d): url=%s, status=%s, response=%s", attempt, maxRetries, searchURL, resp.Status, string(body))
			if attempt == maxRetries {
				return nil, &Error{Operation: "search", Status: resp.StatusCode, Err: fmt.Errorf("unexpected status %s", resp.Status)}
			}
			time.Sleep(time.Duration(attempt) * time.Second)
			continue
		}

		var searchResp searchResponse
		if err := json.Unmarshal(body, &searchResp); err != nil {
			logger.GlobalLogger.Errorf("Failed to decode property search response: url=%s, response=%s, error=%v", searchURL, string(body), err)
			return nil, &Error{Operation: "search", Err: err}
		}
		if len(searchResp.Items) == 0 {
			return nil, &Error{Operation: "search", Status: resp.StatusCode, Err: ErrNoPropertyFound}
		}

		record := searchResp.Items[0]
		if err := record.validate(); err != nil {
			logger.GlobalLogger.Errorf("Property record failed validation: url=%s, error=%v", searchURL, err)
			return nil, &Error{Operation: "search", Err: err}
		}
		return &record, nil
	}

	return nil, &Error{Operation: "search", Err: fmt.Errorf("max retries exceeded")}
}
