package funding

import (
	"net/http"
	"strings"
	"time"
)

// Client submits qualified leads to the funding network API.
type Client struct {
	baseURL string
	apiKey  string

	httpClient *http.Client
}

// NewClient creates a new funding network client.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}
