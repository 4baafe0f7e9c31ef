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

// tokenResponse is the OAuth token response from HomeFacts.
type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
}

// getToken returns a cached access token, refreshing it through the
// client-credentials flow when missing or expired.
func (c *Client) getToken(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token != "" && time.Now().Before(c.tokenExpiry) {
		return c.token, nil
	}

	data := url.Values{}
	data.Set("grant_type", "client_credentials")
	tokenURL := c.baseURL + "/oauth/token?" + data.Encode()
	maxRetries := 3

	for attempt := 1; attempt <= maxRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, tokenURL, nil)
		if err != nil {
			logger.GlobalLogger.Errorf("Failed to create token request: url=%s, error=%v", tokenURL, err)
			return "", &Error{Operation: "token", Err: err}
		}
		req.SetBasicAuth(c.clientID, c.clientSecret)
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			logger.GlobalLogger.Errorf("Failed to send token request (attempt %d/%d): url=%s, error=%v", attempt, maxRetries, tokenURL, err)
			if attempt == maxRetries {
				return "", &Error{Operation: "token", Err: fmt.Errorf("after %d attempts: %w", maxRetries, err)}
			}
			time.Sleep(time.Duration(attempt) * time.Second)
			continue
		}

		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			logger.GlobalLogger.Errorf("Failed to read token response body: url=%s, status=%s, error=%v", tokenURL, resp.Status, err)
			if attempt == maxRetries {
				return "", &Error{Operation: "token", Status: resp.StatusCode, Err: err}
			}
			time.Sleep(time.Duration(attempt) * time.Second)
			continue
		}

		if resp.StatusCode != http.StatusOK {
			logger.GlobalLogger.Errorf("Token request failed (attempt %d/%d): url=%s, status=%s, response=%s", attempt, maxRetries, tokenURL, resp.Status, string(body))
			if attempt == maxRetries {
				return "", &Error{Operation: "token", Status: resp.StatusCode, Err: fmt.Errorf("unexpected status %s", resp.Status)}
			}
			time.Sleep(time.Duration(attempt) * time.Second)
			continue
		}

		var tok tokenResponse
		if err := json.Unmarshal(body, &tok); err != nil {
			logger.GlobalLogger.Errorf("Failed to decode token response: url=%s, response=%s, error=%v", tokenURL, string(body), err)
			return "", &Error{Operation: "token", Err: err}
		}

		c.token = tok.AccessToken
		c.tokenExpiry = time.Now().Add(time.Duration(tok.ExpiresIn) * time.Second)
		logger.GlobalLogger.Printf("Retrieved HomeFacts token: expires_in=%d seconds", tok.ExpiresIn)
		return c.token, nil
	}

	return "", &Error{Operation: "token", Err: fmt.Errorf("max retries exceeded")}
}
