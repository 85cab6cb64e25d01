// Package http builds the retrying HTTP client shared by the network
// gateways. Requests are traced with otelhttp and can carry fixed headers,
// such as API keys.
package http

import (
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

type config struct {
	timeout      time.Duration
	retryWaitMin time.Duration
	retryWaitMax time.Duration
	retryMax     int
	headers      http.Header
	tracing      bool
}

type Option func(*config)

// headerTransport sets fixed headers on every outgoing request.
type headerTransport struct {
	headers http.Header
	next    http.RoundTripper
}

func (t *headerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	for key, values := range t.headers {
		req.Header[key] = values
	}

	return t.next.RoundTrip(req)
}

// NewClient returns a retryablehttp.Client configured with opts. Defaults:
// 5s timeout, 1s to 5s between retries, 2 retries and tracing enabled. Once
// retries are exhausted the last response is returned as is.
func NewClient(opts ...Option) *retryablehttp.Client {
	cfg := config{
		timeout:      5 * time.Second,
		retryWaitMin: 1 * time.Second,
		retryWaitMax: 5 * time.Second,
		retryMax:     2,
		headers:      make(http.Header),
		tracing:      true,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	client := retryablehttp.NewClient()
	client.Logger = nil
	client.HTTPClient.Timeout = cfg.timeout
	client.RetryWaitMin = cfg.retryWaitMin
	client.RetryWaitMax = cfg.retryWaitMax
	client.RetryMax = cfg.retryMax

	// Gateways map the last status code to their own errors.
	client.ErrorHandler = retryablehttp.PassthroughErrorHandler

	transport := client.HTTPClient.Transport
	if len(cfg.headers) > 0 {
		transport = &headerTransport{headers: cfg.headers, next: transport}
	}

	if cfg.tracing {
		transport = otelhttp.NewTransport(transport)
	}

	client.HTTPClient.Transport = transport
	return client
}

// WithTimeout sets the maximum duration of a single attempt.
func WithTimeout(d time.Duration) Option {
	return func(c *config) {
		c.timeout = d
	}
}

// WithRetryWaitMin sets the minimum delay between retries.
func WithRetryWaitMin(d time.Duration) Option {
	return func(c *config) {
		c.retryWaitMin = d
	}
}

// WithRetryWaitMax sets the maximum delay between retries.
func WithRetryWaitMax(d time.Duration) Option {
	return func(c *config) {
		c.retryWaitMax = d
	}
}

// WithRetryMax sets how many times a failed request is retried.
func WithRetryMax(n int) Option {
	return func(c *config) {
		c.retryMax = n
	}
}

// WithHeader adds a header to every request. Empty values are ignored so
// that optional API keys can be passed unconditionally.
func WithHeader(key, value string) Option {
	return func(c *config) {
		if value != "" {
			c.headers.Set(key, value)
		}
	}
}

// WithTracing toggles the otelhttp transport.
func WithTracing(enabled bool) Option {
	return func(c *config) {
		c.tracing = enabled
	}
}
