// Package ethereum follows EVM chains over JSON-RPC. It reports the newest
// block of the chain and returns signed transaction payloads.
package ethereum

import (
	"errors"
	"sync"
	"time"

	"github.com/gabapcia/txhistory/internal/pkg/transport/jsonrpc"
	"github.com/gabapcia/txhistory/internal/txinfo"
	"github.com/gabapcia/txhistory/internal/txrecord"
	"github.com/gabapcia/txhistory/internal/txstream"
)

// ErrUnsupportedBlockchain is returned when a source belongs to another chain
// than the one the client was built for.
var ErrUnsupportedBlockchain = errors.New("unsupported blockchain")

// averageBlockTime is the default polling interval on Ethereum mainnet.
const averageBlockTime = 12 * time.Second

type client struct {
	conn         jsonrpc.Client
	blockchain   txrecord.BlockchainType
	pollInterval time.Duration

	mu     sync.RWMutex
	latest *txrecord.LastBlockInfo
}

var (
	_ txstream.BlockFeed          = (*client)(nil)
	_ txinfo.BlockFeed            = (*client)(nil)
	_ txinfo.RawTransactionSource = (*client)(nil)
)

type config struct {
	blockchain   txrecord.BlockchainType
	pollInterval time.Duration
}

type Option func(*config)

// NewClient returns a client for the chain served by conn. It follows
// Ethereum mainnet unless WithBlockchain says otherwise.
func NewClient(conn jsonrpc.Client, opts ...Option) *client {
	cfg := config{
		blockchain:   txrecord.BlockchainEthereum,
		pollInterval: averageBlockTime,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &client{
		conn:         conn,
		blockchain:   cfg.blockchain,
		pollInterval: cfg.pollInterval,
	}
}

// WithBlockchain sets the EVM chain served by the node, such as
// binance-smart-chain or polygon.
func WithBlockchain(b txrecord.BlockchainType) Option {
	return func(c *config) {
		c.blockchain = b
	}
}

// WithPollInterval sets how often the node is asked for its newest block.
func WithPollInterval(d time.Duration) Option {
	return func(c *config) {
		if d > 0 {
			c.pollInterval = d
		}
	}
}

// Blockchain returns the chain the client serves.
func (c *client) Blockchain() txrecord.BlockchainType {
	return c.blockchain
}
