package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/gabapcia/txhistory/internal/ratehistory"
	"github.com/gabapcia/txhistory/internal/txrecord"
)

// rateKey builds the key of one historical price point:
//
//	"<prefix>:rate:<currency>:<coinUid>:<timestamp>"
func (c *client) rateKey(currency string, key txrecord.RateKey) string {
	return fmt.Sprintf("%s:rate:%s:%s:%d", c.keyPrefix, currency, key.CoinUID, key.Timestamp)
}

func (c *client) SaveRate(ctx context.Context, currency string, key txrecord.RateKey, rate decimal.Decimal) error {
	return c.conn.Set(ctx, c.rateKey(currency, key), rate.String(), c.rateTTL).Err()
}

// LoadRate returns ratehistory.ErrRateNotFound when the key does not exist.
func (c *client) LoadRate(ctx context.Context, currency string, key txrecord.RateKey) (decimal.Decimal, error) {
	val, err := c.conn.Get(ctx, c.rateKey(currency, key)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			err = ratehistory.ErrRateNotFound
		}

		return decimal.Zero, err
	}

	rate, err := decimal.NewFromString(val)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid stored rate %q: %w", val, err)
	}
	return rate, nil
}

var _ ratehistory.Storage = (*client)(nil)
