// Package swapstatus follows cross-chain swaps on exchange services that
// expose their order status by transaction hash, such as ChangeNOW.
package swapstatus

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/gabapcia/txhistory/internal/pkg/resilience/retry"
	"github.com/gabapcia/txhistory/internal/txinfo"
	"github.com/gabapcia/txhistory/internal/txrecord"
	"github.com/gabapcia/txhistory/internal/txview"
)

// HashPlaceholder is replaced by the transaction hash in URL templates.
const HashPlaceholder = "{hash}"

var errUnexpectedStatus = errors.New("unexpected status code")

// statuses maps exchange order states to transaction statuses. The processing
// progress follows the order pipeline.
var statuses = map[string]txrecord.Status{
	"new":        txrecord.Pending,
	"waiting":    txrecord.Pending,
	"confirming": txrecord.Processing(0.25),
	"exchanging": txrecord.Processing(0.5),
	"verifying":  txrecord.Processing(0.5),
	"sending":    txrecord.Processing(0.75),
	"finished":   txrecord.Completed,
	"failed":     txrecord.Failed,
	"refunded":   txrecord.Failed,
	"expired":    txrecord.Failed,
}

type orderResponse struct {
	Status string `json:"status"`
}

type tracker struct {
	httpClient *http.Client
	apiURL     string
	pageURL    string
	pageTitle  string
	retry      retry.Retry
}

var _ txinfo.StatusTracker = (*tracker)(nil)

type config struct {
	pageURL string
	retry   retry.Retry
}

type Option func(*config)

// NewTracker returns a tracker querying apiURL, a template containing
// HashPlaceholder.
func NewTracker(httpClient *http.Client, apiURL string, opts ...Option) (*tracker, error) {
	if !strings.Contains(apiURL, HashPlaceholder) {
		return nil, fmt.Errorf("api url %q has no %s placeholder", apiURL, HashPlaceholder)
	}

	cfg := config{retry: retry.New()}
	for _, opt := range opts {
		opt(&cfg)
	}

	t := &tracker{
		httpClient: httpClient,
		apiURL:     apiURL,
		pageURL:    cfg.pageURL,
		retry:      cfg.retry,
	}

	if cfg.pageURL != "" {
		u, err := url.Parse(strings.ReplaceAll(cfg.pageURL, HashPlaceholder, "hash"))
		if err != nil || u.Host == "" {
			return nil, fmt.Errorf("invalid page url %q", cfg.pageURL)
		}
		t.pageTitle = u.Host
	}

	return t, nil
}

// WithPageURL sets the template of the page where users follow the order.
func WithPageURL(u string) Option {
	return func(c *config) {
		c.pageURL = u
	}
}

func WithRetry(r retry.Retry) Option {
	return func(c *config) {
		c.retry = r
	}
}

func (t *tracker) URL(record txrecord.Record) (txview.ExplorerData, bool) {
	hash := record.Common().TransactionHash
	if t.pageURL == "" || hash == "" {
		return txview.ExplorerData{}, false
	}

	return txview.ExplorerData{
		Title: t.pageTitle,
		URL:   strings.ReplaceAll(t.pageURL, HashPlaceholder, url.PathEscape(hash)),
	}, true
}

// Status returns nil for transactions the exchange does not know and for
// states it does not document.
func (t *tracker) Status(ctx context.Context, record txrecord.Record) (*txrecord.Status, error) {
	hash := record.Common().TransactionHash
	if hash == "" {
		return nil, nil
	}

	var order *orderResponse
	err := t.retry.Execute(ctx, func() error {
		var err error
		order, err = t.fetch(ctx, hash)
		if errors.Is(err, errUnexpectedStatus) {
			return retry.Unrecoverable(err)
		}
		return err
	})
	if err != nil {
		return nil, err
	}

	if order == nil {
		return nil, nil
	}

	status, ok := statuses[strings.ToLower(order.Status)]
	if !ok {
		return nil, nil
	}
	return &status, nil
}

func (t *tracker) fetch(ctx context.Context, hash string) (*orderResponse, error) {
	reqURL := strings.ReplaceAll(t.apiURL, HashPlaceholder, url.PathEscape(hash))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	res, err := t.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	switch {
	case res.StatusCode == http.StatusNotFound:
		return nil, nil
	case res.StatusCode >= http.StatusInternalServerError:
		return nil, fmt.Errorf("exchange answered %d", res.StatusCode)
	case res.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("%w %d", errUnexpectedStatus, res.StatusCode)
	}

	var order orderResponse
	if err := json.NewDecoder(res.Body).Decode(&order); err != nil {
		return nil, fmt.Errorf("decode order: %w", err)
	}
	return &order, nil
}
