package utils

import (
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// defaultHTTPClientTimeout is applied when no positive timeout is given.
const defaultHTTPClientTimeout = 15 * time.Second

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient("https://api.cloudinary.com", 10*time.Second)
//	resp, err := client.R().Get("/v1_1/demo/resources")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates and returns a new HTTPClient instance bound to
// baseURL (trailing slashes are trimmed). A non-positive timeout is
// replaced with a 15 second default.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	if timeout <= 0 {
		timeout = defaultHTTPClientTimeout
	}

	client := resty.New().SetTimeout(timeout)
	if baseURL != "" {
		client.SetBaseURL(strings.TrimRight(baseURL, "/"))
	}

	return &HTTPClient{Client: client}
}
