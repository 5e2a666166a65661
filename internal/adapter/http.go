package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/ardhichain/ardhi-registry/internal/logger"
)

// maxErrorBodySize caps how much of a failed response body is kept for diagnostics
const maxErrorBodySize = 4 * 1024

// HTTPClient defines an interface for HTTP client operations to enable mocking
//
//go:generate mockgen -source=http.go -destination=../mocks/http.go -package=mocks -mock_names=HTTPClient=MockHTTPClient
type HTTPClient interface {
	// Get performs a GET request and unmarshals the JSON response into result
	Get(ctx context.Context, url string, headers map[string]string, result interface{}) error

	// GetBytes performs a GET request and returns the raw response body
	GetBytes(ctx context.Context, url string, headers map[string]string) ([]byte, error)

	// GetResponse performs a GET request without retry or status handling.
	// The caller is responsible for closing the response body
	GetResponse(ctx context.Context, url string, headers map[string]string) (*http.Response, error)

	// PostBytes performs a POST request and returns the raw response body
	PostBytes(ctx context.Context, url string, headers map[string]string, body []byte) ([]byte, error)
}

// StatusError is returned when the server answers with a non-2xx status
type StatusError struct {
	URL        string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status code %d from %s: %s", e.StatusCode, e.URL, e.Body)
}

// HTTPOption configures the real HTTP client
type HTTPOption func(*RealHTTPClient)

// WithRetryWindow bounds the total time spent retrying rate limited requests
func WithRetryWindow(d time.Duration) HTTPOption {
	return func(c *RealHTTPClient) {
		c.retryWindow = d
	}
}

// WithInitialRetryInterval sets the first backoff interval for rate limited requests
func WithInitialRetryInterval(d time.Duration) HTTPOption {
	return func(c *RealHTTPClient) {
		c.initialInterval = d
	}
}

// RealHTTPClient implements HTTPClient using the standard http package
type RealHTTPClient struct {
	client          *http.Client
	retryWindow     time.Duration
	initialInterval time.Duration
}

// NewHTTPClient creates a new real HTTP client
func NewHTTPClient(timeout time.Duration, opts ...HTTPOption) HTTPClient {
	c := &RealHTTPClient{
		client: &http.Client{
			Timeout: timeout,
		},
		retryWindow:     time.Minute,
		initialInterval: 2 * time.Second,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// doRequestWithRetry executes an HTTP request with exponential backoff retry for rate limiting.
// newRequest is called per attempt so request bodies can be replayed.
func (c *RealHTTPClient) doRequestWithRetry(ctx context.Context, newRequest func() (*http.Request, error)) ([]byte, error) {
	var respBody []byte

	operation := func() error {
		req, err := newRequest()
		if err != nil {
			return backoff.Permanent(fmt.Errorf("failed to create request: %w", err))
		}

		resp, err := c.client.Do(req)
		if err != nil {
			// Network errors are retryable
			return fmt.Errorf("failed to perform request: %w", err)
		}
		defer func() {
			if err := resp.Body.Close(); err != nil {
				logger.Warn("failed to close response body", zap.Error(err), zap.String("url", req.URL.String()))
			}
		}()

		if resp.StatusCode == http.StatusTooManyRequests {
			logger.Warn("rate limited, retrying with backoff", zap.String("url", req.URL.String()))
			return &StatusError{URL: req.URL.String(), StatusCode: resp.StatusCode, Body: "rate limited"}
		}

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
			return backoff.Permanent(&StatusError{URL: req.URL.String(), StatusCode: resp.StatusCode, Body: string(body)})
		}

		respBody, err = io.ReadAll(resp.Body)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("failed to read response body: %w", err))
		}

		return nil
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = c.initialInterval
	b.MaxInterval = 30 * time.Second
	b.MaxElapsedTime = c.retryWindow
	b.Multiplier = 2.0
	b.RandomizationFactor = 0.5

	if err := backoff.Retry(operation, backoff.WithContext(b, ctx)); err != nil {
		return nil, fmt.Errorf("request failed after retries: %w", err)
	}

	return respBody, nil
}

func newRequestFunc(ctx context.Context, method, url string, headers map[string]string, body []byte) func() (*http.Request, error) {
	return func() (*http.Request, error) {
		var reader io.Reader
		if body != nil {
			reader = bytes.NewReader(body)
		}
		req, err := http.NewRequestWithContext(ctx, method, url, reader)
		if err != nil {
			return nil, err
		}
		for k, v := range headers {
			req.Header.Set(k, v)
		}
		return req, nil
	}
}

// Get performs a GET request and unmarshals the response into result
func (c *RealHTTPClient) Get(ctx context.Context, url string, headers map[string]string, result interface{}) error {
	respBody, err := c.GetBytes(ctx, url, headers)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(respBody, result); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

// GetBytes performs a GET request and returns the response body
func (c *RealHTTPClient) GetBytes(ctx context.Context, url string, headers map[string]string) ([]byte, error) {
	return c.doRequestWithRetry(ctx, newRequestFunc(ctx, http.MethodGet, url, headers, nil))
}

// GetResponse performs a GET request and hands back the raw response
func (c *RealHTTPClient) GetResponse(ctx context.Context, url string, headers map[string]string) (*http.Response, error) {
	req, err := newRequestFunc(ctx, http.MethodGet, url, headers, nil)()
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to perform request: %w", err)
	}

	return resp, nil
}

// PostBytes performs a POST request and returns the response body
func (c *RealHTTPClient) PostBytes(ctx context.Context, url string, headers map[string]string, body []byte) ([]byte, error) {
	if body == nil {
		body = []byte{}
	}
	return c.doRequestWithRetry(ctx, newRequestFunc(ctx, http.MethodPost, url, headers, body))
}
