package ratehistory

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/gabapcia/txhistory/internal/txrecord"
)

// ErrRateNotFound is returned by Storage when no rate was stored for a key,
// and by providers that have no price for the requested coin and day.
var ErrRateNotFound = errors.New("rate not found")

// Storage persists historical rates per fiat currency.
type Storage interface {
	SaveRate(ctx context.Context, currency string, key txrecord.RateKey, rate decimal.Decimal) error

	// LoadRate returns ErrRateNotFound when nothing was stored for key.
	LoadRate(ctx context.Context, currency string, key txrecord.RateKey) (decimal.Decimal, error)
}

// Provider is the network source of historical prices.
type Provider interface {
	HistoricalPrice(ctx context.Context, coinUID, currency string, at time.Time) (decimal.Decimal, error)
}
