// Package redis stores historical rates, NFT metadata and contacts in Redis.
package redis

import (
	"context"
	"time"

	redis "github.com/redis/go-redis/v9"
)

const (
	defaultKeyPrefix   = "txhistory"
	defaultMetadataTTL = 7 * 24 * time.Hour
)

type client struct {
	conn *redis.Client

	keyPrefix   string
	rateTTL     time.Duration
	metadataTTL time.Duration
}

func (c *client) Close() error {
	return c.conn.Close()
}

type config struct {
	keyPrefix   string
	rateTTL     time.Duration
	metadataTTL time.Duration
}

type Option func(*config)

// NewClient connects to addr and pings it before returning.
func NewClient(ctx context.Context, addr, username, password string, db int, opts ...Option) (*client, error) {
	cfg := config{
		keyPrefix:   defaultKeyPrefix,
		metadataTTL: defaultMetadataTTL,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	conn := redis.NewClient(&redis.Options{
		Addr:     addr,
		Username: username,
		Password: password,
		DB:       db,
	})

	if err := conn.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &client{
		conn:        conn,
		keyPrefix:   cfg.keyPrefix,
		rateTTL:     cfg.rateTTL,
		metadataTTL: cfg.metadataTTL,
	}, nil
}

// WithKeyPrefix namespaces every key. Defaults to "txhistory".
func WithKeyPrefix(prefix string) Option {
	return func(c *config) {
		c.keyPrefix = prefix
	}
}

// WithRateTTL expires stored rates. Historical rates never change, so the
// default keeps them forever.
func WithRateTTL(ttl time.Duration) Option {
	return func(c *config) {
		c.rateTTL = ttl
	}
}

// WithMetadataTTL expires stored NFT metadata. Defaults to one week.
func WithMetadataTTL(ttl time.Duration) Option {
	return func(c *config) {
		c.metadataTTL = ttl
	}
}
