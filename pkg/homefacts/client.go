package homefacts

import (
	"net/http"
	"strings"
	"sync"
	"time"
)

// Client manages HomeFacts API authentication and requests. A single client
// is shared across requests; token refresh is serialized internally.
type Client struct {
	baseURL      string
	clientID     string
	clientSecret string

	mu          sync.Mutex
	token       string
	tokenExpiry time.Time

	httpClient *http.Client
}

// NewClient creates a new HomeFacts client.
func NewClient(baseURL, clientID, clientSecret string) *Client {
	return &Client{
		baseURL:      strings.TrimRight(baseURL, "/"),
		clientID:     clientID,
		clientSecret: clientSecret,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}
