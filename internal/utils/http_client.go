package utils

import (
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a resty client rooted at baseURL. A bare "host:port"
// is treated as plain HTTP. A non-positive timeout leaves resty's default.
//
// Example usage:
//
//	client := utils.NewHTTPClient("localhost:8080", 15*time.Second)
//	resp, err := client.R().Get("/api/scans")
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	cli := resty.New().
		SetBaseURL(NormalizeBaseURL(baseURL)).
		SetHeader("Accept", "application/json")
	if timeout > 0 {
		cli.SetTimeout(timeout)
	}

	return &HTTPClient{Client: cli}
}

// NormalizeBaseURL adds an http scheme when none is given and strips
// trailing slashes.
func NormalizeBaseURL(address string) string {
	address = strings.TrimRight(strings.TrimSpace(address), "/")
	if address == "" {
		return address
	}
	if !strings.Contains(address, "://") {
		address = "http://" + address
	}
	return address
}
