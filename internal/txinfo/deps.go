package txinfo

import (
	"context"

	"github.com/gabapcia/txhistory/internal/txrecord"
	"github.com/gabapcia/txhistory/internal/txstream"
	"github.com/gabapcia/txhistory/internal/txview"
)

// RecordSource streams the ledger of the wallet the record belongs to.
type RecordSource interface {
	Subscribe(ctx context.Context, scope txstream.Scope, filter txstream.Filter) (<-chan []txrecord.Record, error)
}

// RateProvider returns historical rates, hitting the network when needed.
type RateProvider interface {
	HistoricalRate(ctx context.Context, key txrecord.RateKey) (txrecord.CurrencyValue, error)
}

type MetadataCache interface {
	Cached(ctx context.Context, ids []txrecord.NftUID) map[txrecord.NftUID]txrecord.NftMetadata
	Fetch(ctx context.Context, ids []txrecord.NftUID)
	Resolved(ctx context.Context) <-chan map[txrecord.NftUID]txrecord.NftMetadata
}

type BlockFeed interface {
	LastBlockInfo(source txrecord.Source) *txrecord.LastBlockInfo
	Subscribe(ctx context.Context, source txrecord.Source) (<-chan txrecord.LastBlockInfo, error)
}

// RawTransactionSource is the chain adapter that can return the signed
// payload of a transaction.
type RawTransactionSource interface {
	// RawTransaction returns the payload of hash, or false when the chain
	// cannot provide one.
	RawTransaction(ctx context.Context, source txrecord.Source, hash string) (string, bool, error)
}

// StatusTracker follows transactions whose outcome lives off chain, such as
// bridge transfers or exchange orders.
type StatusTracker interface {
	// Status returns the external status of record, or nil when the tracker
	// knows nothing about it.
	Status(ctx context.Context, record txrecord.Record) (*txrecord.Status, error)

	// URL returns the page where the user can follow record.
	URL(record txrecord.Record) (txview.ExplorerData, bool)
}
