// Package coingecko reads historical coin prices from the CoinGecko API.
package coingecko

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/time/rate"

	"github.com/gabapcia/txhistory/internal/ratehistory"
)

const (
	DefaultBaseURL = "https://api.coingecko.com/api/v3"

	// HeaderAPIKey carries the demo plan key.
	HeaderAPIKey = "x-cg-demo-api-key"

	// defaultRequestsPerSecond keeps the client under the demo plan quota of
	// 30 calls per minute.
	defaultRequestsPerSecond = 0.5
)

// ErrRateLimited is returned when CoinGecko answers 429.
var ErrRateLimited = errors.New("coingecko rate limit exceeded")

type historyResponse struct {
	ID         string `json:"id"`
	MarketData *struct {
		CurrentPrice map[string]decimal.Decimal `json:"current_price"`
	} `json:"market_data"`
}

type client struct {
	httpClient *http.Client
	baseURL    string
	limiter    *rate.Limiter
}

var _ ratehistory.Provider = (*client)(nil)

type config struct {
	baseURL           string
	requestsPerSecond float64
}

type Option func(*config)

// NewClient returns a price provider that sends every request through
// httpClient. API keys are expected to be set by httpClient.
func NewClient(httpClient *http.Client, opts ...Option) *client {
	cfg := config{
		baseURL:           DefaultBaseURL,
		requestsPerSecond: defaultRequestsPerSecond,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	limit := rate.Inf
	if cfg.requestsPerSecond > 0 {
		limit = rate.Limit(cfg.requestsPerSecond)
	}

	return &client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(cfg.baseURL, "/"),
		limiter:    rate.NewLimiter(limit, 1),
	}
}

func WithBaseURL(u string) Option {
	return func(c *config) {
		if u != "" {
			c.baseURL = u
		}
	}
}

// WithRequestsPerSecond throttles outgoing calls. Zero or less disables
// throttling.
func WithRequestsPerSecond(rps float64) Option {
	return func(c *config) {
		c.requestsPerSecond = rps
	}
}

// HistoricalPrice returns the price of coinUID in currency on the UTC day of
// at. CoinGecko only keeps daily snapshots for history.
func (c *client) HistoricalPrice(ctx context.Context, coinUID, currency string, at time.Time) (decimal.Decimal, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return decimal.Zero, err
	}

	params := url.Values{}
	params.Set("date", at.UTC().Format("02-01-2006"))
	params.Set("localization", "false")

	reqURL := fmt.Sprintf("%s/coins/%s/history?%s", c.baseURL, url.PathEscape(coinUID), params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return decimal.Zero, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return decimal.Zero, fmt.Errorf("get %s history: %w", coinUID, err)
	}
	defer res.Body.Close()

	switch {
	case res.StatusCode == http.StatusTooManyRequests:
		return decimal.Zero, ErrRateLimited
	case res.StatusCode == http.StatusNotFound:
		return decimal.Zero, ratehistory.ErrRateNotFound
	case res.StatusCode != http.StatusOK:
		body, _ := io.ReadAll(io.LimitReader(res.Body, 512))
		return decimal.Zero, fmt.Errorf("unexpected status code %d: %s", res.StatusCode, string(body))
	}

	var history historyResponse
	if err := json.NewDecoder(res.Body).Decode(&history); err != nil {
		return decimal.Zero, fmt.Errorf("decode %s history: %w", coinUID, err)
	}

	// No market data means the coin did not trade that day.
	if history.MarketData == nil {
		return decimal.Zero, ratehistory.ErrRateNotFound
	}

	price, ok := history.MarketData.CurrentPrice[strings.ToLower(currency)]
	if !ok {
		return decimal.Zero, ratehistory.ErrRateNotFound
	}

	return price, nil
}
