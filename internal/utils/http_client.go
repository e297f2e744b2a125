package utils

import (
	"github.com/go-resty/resty/v2"
)

// HTTPClient embeds *resty.Client so callers get the full resty request
// API while outbound-call policy (timeouts, retries, headers) can be
// attached in one place as the need arises.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an HTTPClient backed by a freshly constructed
// resty client. Clients are independent of each other; each owns its
// own connection pool and settings.
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{Client: resty.New()}
}
