package catalogue

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/avast/retry-go"
	"github.com/rs/zerolog"
)

const defaultTimeout = 30 * time.Second

// Client represents an NLB catalogue API client
type Client struct {
	baseURL                 string
	tokens                  TokenSource
	httpClient              *http.Client
	logger                  zerolog.Logger
	userAgent               string
	retry                   RetryPolicy
	raiseOnUnexpectedStatus bool
}

// NewClient creates a new catalogue client
func NewClient(baseURL string, tokens TokenSource, logger zerolog.Logger, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, ErrMissingBaseURL
	}
	if tokens == nil {
		return nil, ErrMissingToken
	}

	// Ensure baseURL doesn't have a trailing slash
	baseURL = strings.TrimRight(baseURL, "/")

	client := &Client{
		baseURL: baseURL,
		tokens:  tokens,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		logger:                  logger,
		retry:                   DefaultRetryPolicy(),
		raiseOnUnexpectedStatus: true,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client, nil
}

// get performs an authenticated GET with the configured retry policy.
// Each attempt builds a fresh request, including a fresh token fetch.
// Transport-level failures terminate immediately and propagate
// unmodified; an exhausted retry budget surfaces the final attempt's
// response as a normal terminal response.
func (c *Client) get(ctx context.Context, endpoint string, params url.Values) (*Response, error) {
	requestURL := c.baseURL + endpoint
	if len(params) > 0 {
		requestURL += "?" + params.Encode()
	}

	var (
		final *Response
		fatal error
	)

	err := retry.Do(
		func() error {
			req, err := c.newRequest(ctx, requestURL)
			if err != nil {
				fatal = err
				return nil
			}

			resp, err := c.httpClient.Do(req)
			if err != nil {
				fatal = err
				return nil
			}
			defer resp.Body.Close()

			body, err := io.ReadAll(resp.Body)
			if err != nil {
				fatal = fmt.Errorf("failed to read response body: %w", err)
				return nil
			}

			final = &Response{
				StatusCode: resp.StatusCode,
				Headers:    resp.Header,
				Body:       body,
			}

			if c.retry.retryable(resp.StatusCode) {
				return &transientStatusError{status: resp.StatusCode}
			}
			return nil
		},
		c.retry.options(ctx, c.logger)...,
	)

	if fatal != nil {
		return nil, fatal
	}
	if err != nil {
		if cerr := ctx.Err(); cerr != nil {
			return nil, cerr
		}
		// Attempts exhausted on a transient status; the final response
		// is dispatched like any other.
	}
	if final == nil {
		return nil, err
	}

	return final, nil
}

// newRequest builds a single authenticated request attempt
func (c *Client) newRequest(ctx context.Context, requestURL string) (*http.Request, error) {
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch token: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	return req, nil
}
