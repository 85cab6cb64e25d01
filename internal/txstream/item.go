package txstream

import (
	"context"
	"maps"

	"github.com/gabapcia/txhistory/internal/txrecord"
)

// Item is a record enriched with everything the aggregator resolved for it.
// Items inside a published Snapshot are never modified afterwards.
type Item struct {
	Record        txrecord.Record
	CurrencyValue *txrecord.CurrencyValue
	LastBlockInfo *txrecord.LastBlockInfo
	NftMetadata   map[txrecord.NftUID]txrecord.NftMetadata
}

// UID returns the merge key of the item.
func (i Item) UID() string { return i.Record.Common().UID }

// Snapshot is one published version of the item list. Versions strictly
// increase within one aggregator.
type Snapshot struct {
	Version uint64
	Items   []Item
}

// currencyValue prices the record's main value with a cached rate.
func currencyValue(ctx context.Context, rates RateCache, r txrecord.Record) *txrecord.CurrencyValue {
	key, ok := txrecord.RateKeyOf(r)
	if !ok {
		return nil
	}

	rate, ok := rates.Cached(ctx, key)
	if !ok {
		return nil
	}
	return rate.Times(*r.Common().MainValue)
}

// withMetadata returns the metadata of item merged with the ids of resolved
// that the record references. It returns false when nothing was added.
func withMetadata(item Item, resolved map[txrecord.NftUID]txrecord.NftMetadata) (map[txrecord.NftUID]txrecord.NftMetadata, bool) {
	var merged map[txrecord.NftUID]txrecord.NftMetadata
	for uid := range txrecord.NftUIDs(item.Record) {
		meta, ok := resolved[uid]
		if !ok {
			continue
		}

		if current, ok := item.NftMetadata[uid]; ok && current == meta {
			continue
		}

		if merged == nil {
			merged = maps.Clone(item.NftMetadata)
			if merged == nil {
				merged = make(map[txrecord.NftUID]txrecord.NftMetadata)
			}
		}
		merged[uid] = meta
	}

	if merged == nil {
		return item.NftMetadata, false
	}
	return merged, true
}
