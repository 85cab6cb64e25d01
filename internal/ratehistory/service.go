// Package ratehistory is the read-through cache of historical fiat rates.
// Rates are read from storage first; misses are fetched from the price
// provider in the background and announced to every subscriber once stored.
package ratehistory

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/gabapcia/txhistory/internal/pkg/logger"
	"github.com/gabapcia/txhistory/internal/pkg/resilience/retry"
	"github.com/gabapcia/txhistory/internal/pkg/types"
	"github.com/gabapcia/txhistory/internal/pkg/x/broadcast"
	"github.com/gabapcia/txhistory/internal/txrecord"
)

const (
	defaultCurrency = "usd"
	meterName       = "github.com/gabapcia/txhistory/internal/ratehistory"
)

const (
	fetchResultOK       = "ok"
	fetchResultNotFound = "not_found"
	fetchResultError    = "error"
)

type Service interface {
	// Cached returns the stored rate of key in the current base currency.
	Cached(ctx context.Context, key txrecord.RateKey) (txrecord.CurrencyValue, bool)

	// Fetch starts a background fetch of key unless one is already running.
	Fetch(ctx context.Context, key txrecord.RateKey)

	// HistoricalRate returns the rate of key, fetching it when it is not
	// stored yet.
	HistoricalRate(ctx context.Context, key txrecord.RateKey) (txrecord.CurrencyValue, error)

	// Expired signals that every stored rate must be re-read, which happens
	// when the base currency changes.
	Expired(ctx context.Context) <-chan struct{}

	// Resolved delivers the rates fetched in the background.
	Resolved(ctx context.Context) <-chan txrecord.ResolvedRate

	Currency() string
	SetCurrency(ctx context.Context, currency string)

	Close()
}

type inFlightKey struct {
	currency string
	key      txrecord.RateKey
}

type service struct {
	mu       sync.Mutex
	isClosed bool
	currency string
	inFlight types.Set[inFlightKey]

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	storage  Storage
	provider Provider
	retry    retry.Retry

	resolved *broadcast.Hub[txrecord.ResolvedRate]
	expired  *broadcast.Hub[struct{}]
	fetches  metric.Int64Counter
}

var _ Service = (*service)(nil)

func (s *service) Currency() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.currency
}

func (s *service) SetCurrency(ctx context.Context, currency string) {
	currency = strings.ToLower(currency)

	s.mu.Lock()
	if s.isClosed || s.currency == currency {
		s.mu.Unlock()
		return
	}
	s.currency = currency
	s.mu.Unlock()

	logger.Info(ctx, "base currency changed", "rate.currency", currency)
	s.expired.Publish(s.ctx, struct{}{})
}

func (s *service) Cached(ctx context.Context, key txrecord.RateKey) (txrecord.CurrencyValue, bool) {
	currency := s.Currency()

	rate, err := s.storage.LoadRate(ctx, currency, key)
	if err != nil {
		if !errors.Is(err, ErrRateNotFound) {
			logger.Warn(ctx, "failed to load stored rate", "rate.coin_uid", key.CoinUID, "rate.timestamp", key.Timestamp, "error", err)
		}
		return txrecord.CurrencyValue{}, false
	}

	return txrecord.CurrencyValue{Currency: currency, Value: rate}, true
}

func (s *service) Fetch(ctx context.Context, key txrecord.RateKey) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isClosed {
		return
	}

	k := inFlightKey{currency: s.currency, key: key}
	if s.inFlight.Contains(k) {
		return
	}
	s.inFlight.Add(k)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer s.release(k)

		if _, err := s.fetch(s.ctx, k.currency, key); err != nil && !errors.Is(err, ErrRateNotFound) {
			logger.Warn(ctx, "failed to fetch historical rate", "rate.coin_uid", key.CoinUID, "rate.timestamp", key.Timestamp, "error", err)
		}
	}()
}

func (s *service) release(k inFlightKey) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.inFlight.Delete(k)
}

func (s *service) HistoricalRate(ctx context.Context, key txrecord.RateKey) (txrecord.CurrencyValue, error) {
	if rate, ok := s.Cached(ctx, key); ok {
		return rate, nil
	}

	return s.fetch(ctx, s.Currency(), key)
}

// fetch asks the provider for key, stores the result and announces it.
func (s *service) fetch(ctx context.Context, currency string, key txrecord.RateKey) (txrecord.CurrencyValue, error) {
	var price decimal.Decimal
	err := s.retry.Execute(ctx, func() error {
		var err error
		price, err = s.provider.HistoricalPrice(ctx, key.CoinUID, currency, time.Unix(key.Timestamp, 0).UTC())
		if errors.Is(err, ErrRateNotFound) {
			return retry.Unrecoverable(err)
		}
		return err
	})

	switch {
	case errors.Is(err, ErrRateNotFound):
		s.countFetch(ctx, fetchResultNotFound)
		return txrecord.CurrencyValue{}, err
	case err != nil:
		s.countFetch(ctx, fetchResultError)
		return txrecord.CurrencyValue{}, fmt.Errorf("fetch %s rate of %s: %w", currency, key.CoinUID, err)
	case price.IsZero():
		s.countFetch(ctx, fetchResultNotFound)
		return txrecord.CurrencyValue{}, ErrRateNotFound
	}

	s.countFetch(ctx, fetchResultOK)

	if err := s.storage.SaveRate(ctx, currency, key, price); err != nil {
		logger.Warn(ctx, "failed to store historical rate", "rate.coin_uid", key.CoinUID, "rate.timestamp", key.Timestamp, "error", err)
	}

	rate := txrecord.CurrencyValue{Currency: currency, Value: price}
	if currency == s.Currency() {
		s.resolved.Publish(s.ctx, txrecord.ResolvedRate{Key: key, Rate: rate})
	}
	return rate, nil
}

func (s *service) countFetch(ctx context.Context, result string) {
	s.fetches.Add(ctx, 1, metric.WithAttributes(attribute.String("result", result)))
}

func (s *service) Expired(ctx context.Context) <-chan struct{} {
	return s.expired.Subscribe(ctx)
}

func (s *service) Resolved(ctx context.Context) <-chan txrecord.ResolvedRate {
	return s.resolved.Subscribe(ctx)
}

// Close cancels the running fetches and waits for them to return.
func (s *service) Close() {
	s.mu.Lock()
	if s.isClosed {
		s.mu.Unlock()
		return
	}
	s.isClosed = true
	s.mu.Unlock()

	s.cancel()
	s.wg.Wait()
}

type config struct {
	currency string
	retry    retry.Retry
}

type Option func(*config)

func New(storage Storage, provider Provider, opts ...Option) *service {
	cfg := config{
		currency: defaultCurrency,
		retry:    retry.New(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	fetches, err := otel.Meter(meterName).Int64Counter(
		"ratehistory.fetches",
		metric.WithDescription("Historical rate fetches sent to the price provider"),
		metric.WithUnit("{fetch}"),
	)
	if err != nil {
		otel.Handle(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &service{
		currency: strings.ToLower(cfg.currency),
		inFlight: types.NewSet[inFlightKey](),
		ctx:      ctx,
		cancel:   cancel,
		storage:  storage,
		provider: provider,
		retry:    cfg.retry,
		resolved: broadcast.New[txrecord.ResolvedRate](0),
		expired:  broadcast.New[struct{}](1),
		fetches:  fetches,
	}
}

// WithCurrency sets the initial base currency. Defaults to "usd".
func WithCurrency(currency string) Option {
	return func(cfg *config) {
		cfg.currency = currency
	}
}

func WithRetry(r retry.Retry) Option {
	return func(cfg *config) {
		cfg.retry = r
	}
}
