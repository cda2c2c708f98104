package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient(30*time.Second, "clash/v1.7.5")
//	resp, err := client.R().Get("https://example.com/sub")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates a client with its own connection pool that sends
// userAgent with every request and gives up after timeout. A zero timeout
// leaves requests bounded only by their context. Retries are disabled.
func NewHTTPClient(timeout time.Duration, userAgent string) *HTTPClient {
	client := resty.New().
		SetRetryCount(0).
		SetTimeout(timeout)

	if userAgent != "" {
		client.SetHeader("User-Agent", userAgent)
	}

	return &HTTPClient{Client: client}
}
