// Package blockchain routes chain queries to the adapter that serves the
// source's blockchain.
package blockchain

import (
	"context"

	"github.com/gabapcia/txhistory/internal/txinfo"
	"github.com/gabapcia/txhistory/internal/txrecord"
	"github.com/gabapcia/txhistory/internal/txstream"
)

// Feed is a chain adapter.
type Feed interface {
	Blockchain() txrecord.BlockchainType
	LastBlockInfo(source txrecord.Source) *txrecord.LastBlockInfo
	Subscribe(ctx context.Context, source txrecord.Source) (<-chan txrecord.LastBlockInfo, error)
	RawTransaction(ctx context.Context, source txrecord.Source, hash string) (string, bool, error)
}

// Router serves every chain it has an adapter for. Sources of other chains
// never see a block and have no raw transactions.
type Router struct {
	feeds map[txrecord.BlockchainType]Feed
}

var (
	_ txstream.BlockFeed          = (*Router)(nil)
	_ txinfo.BlockFeed            = (*Router)(nil)
	_ txinfo.RawTransactionSource = (*Router)(nil)
)

// NewRouter registers feeds by the chain they serve. A later feed replaces an
// earlier one for the same chain.
func NewRouter(feeds ...Feed) *Router {
	r := &Router{feeds: make(map[txrecord.BlockchainType]Feed, len(feeds))}
	for _, f := range feeds {
		r.feeds[f.Blockchain()] = f
	}
	return r
}

func (r *Router) LastBlockInfo(source txrecord.Source) *txrecord.LastBlockInfo {
	f, ok := r.feeds[source.Blockchain]
	if !ok {
		return nil
	}
	return f.LastBlockInfo(source)
}

// Subscribe returns a channel that stays silent until ctx is done for chains
// without an adapter.
func (r *Router) Subscribe(ctx context.Context, source txrecord.Source) (<-chan txrecord.LastBlockInfo, error) {
	f, ok := r.feeds[source.Blockchain]
	if ok {
		return f.Subscribe(ctx, source)
	}

	out := make(chan txrecord.LastBlockInfo)
	go func() {
		<-ctx.Done()
		close(out)
	}()
	return out, nil
}

func (r *Router) RawTransaction(ctx context.Context, source txrecord.Source, hash string) (string, bool, error) {
	f, ok := r.feeds[source.Blockchain]
	if !ok {
		return "", false, nil
	}
	return f.RawTransaction(ctx, source, hash)
}
