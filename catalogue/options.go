package catalogue

import (
	"net/http"
	"time"
)

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets the HTTP client timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithHTTPClient replaces the underlying HTTP client. Useful for custom
// transports and for tests.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// WithRetry replaces the default retry policy.
func WithRetry(policy RetryPolicy) Option {
	return func(c *Client) {
		c.retry = policy
	}
}

// WithUserAgent sets a custom user agent string.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithoutUnexpectedStatusErrors makes calls that hit an unrecognized
// status code return an envelope with a nil parsed payload instead of an
// UnexpectedStatusError.
func WithoutUnexpectedStatusErrors() Option {
	return func(c *Client) {
		c.raiseOnUnexpectedStatus = false
	}
}
