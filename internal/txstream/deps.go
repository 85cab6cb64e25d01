package txstream

import (
	"context"

	"github.com/gabapcia/txhistory/internal/txrecord"
)

// RecordSource is the per-wallet ledger feed produced by the sync adapters.
type RecordSource interface {
	// Subscribe starts streaming record lists for scope narrowed by filter.
	// Every emission is the complete list loaded so far, newest first. The
	// channel is closed when ctx is canceled.
	Subscribe(ctx context.Context, scope Scope, filter Filter) (<-chan []txrecord.Record, error)

	// LoadNext asks for one more page. The page arrives as a new emission on
	// the subscription channel. It must not block on the page itself.
	LoadNext(ctx context.Context) error
}

// RateCache is a read-through store of historical fiat rates.
type RateCache interface {
	// Cached returns the stored rate for key without touching the network.
	Cached(ctx context.Context, key txrecord.RateKey) (txrecord.CurrencyValue, bool)

	// Fetch starts a background fetch for key. The result, if any, is
	// delivered through Resolved.
	Fetch(ctx context.Context, key txrecord.RateKey)

	// Expired notifies that stored rates should be re-read.
	Expired(ctx context.Context) <-chan struct{}

	// Resolved delivers rates as background fetches complete.
	Resolved(ctx context.Context) <-chan txrecord.ResolvedRate
}

// MetadataCache is a read-through store of NFT metadata.
type MetadataCache interface {
	// Cached returns the stored metadata of the given ids. Missing ids are
	// absent from the result.
	Cached(ctx context.Context, ids []txrecord.NftUID) map[txrecord.NftUID]txrecord.NftMetadata

	// Fetch starts a background fetch for ids. Results are delivered through
	// Resolved.
	Fetch(ctx context.Context, ids []txrecord.NftUID)

	Resolved(ctx context.Context) <-chan map[txrecord.NftUID]txrecord.NftMetadata
}

// ContactIndex notifies about address book changes.
type ContactIndex interface {
	Changed(ctx context.Context) <-chan struct{}
}

// BlockFeed tracks the newest block of every source.
type BlockFeed interface {
	// LastBlockInfo returns the newest known block of source, or nil.
	LastBlockInfo(source txrecord.Source) *txrecord.LastBlockInfo

	// Subscribe streams block updates of source until ctx is canceled.
	Subscribe(ctx context.Context, source txrecord.Source) (<-chan txrecord.LastBlockInfo, error)
}
