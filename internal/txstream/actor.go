package txstream

import (
	"context"
	"slices"
	"time"

	"github.com/gabapcia/txhistory/internal/pkg/logger"
	"github.com/gabapcia/txhistory/internal/pkg/types"
	"github.com/gabapcia/txhistory/internal/pkg/x/chflow"
	"github.com/gabapcia/txhistory/internal/txrecord"
)

// message is anything the actor applies to the list.
type message any

type (
	recordsUpdated struct {
		generation uint64
		records    []txrecord.Record
	}
	resync       struct{ generation uint64 }
	ratesExpired struct{}
	rateResolved struct{ rate txrecord.ResolvedRate }
	nftResolved  struct {
		metadata map[txrecord.NftUID]txrecord.NftMetadata
	}
	contactsChanged  struct{}
	lastBlockUpdated struct {
		source txrecord.Source
		info   txrecord.LastBlockInfo
	}
	loadNext   struct{}
	pageFailed struct{}
	fetchRate  struct{ uid string }
)

// actor owns the item list. Only its run goroutine reads or writes the fields
// below.
type actor struct {
	s *service

	generation uint64
	version    uint64
	items      []Item
	index      map[string]int
	rateIndex  types.DefaultMap[txrecord.RateKey, types.Set[string]]
	requested  map[txrecord.RateKey]time.Time
	loading    bool
}

func newActor(s *service) *actor {
	return &actor{
		s:          s,
		generation: s.generation,
		index:      make(map[string]int),
		rateIndex:  types.NewDefaultMap[txrecord.RateKey](func() types.Set[string] { return types.NewSet[string]() }),
		requested:  make(map[txrecord.RateKey]time.Time),
	}
}

func (a *actor) run(ctx context.Context) {
	for {
		msg, ok := chflow.Receive(ctx, a.s.inbox)
		if !ok {
			return
		}

		if a.handle(ctx, msg) {
			a.publish(ctx)
		}
	}
}

// handle applies msg and reports whether a snapshot must be published.
func (a *actor) handle(ctx context.Context, msg message) bool {
	switch m := msg.(type) {
	case recordsUpdated:
		if m.generation != a.generation {
			return false
		}
		return a.onRecordsUpdated(ctx, m.records)
	case resync:
		return a.onResync(m.generation)
	case ratesExpired:
		return a.onRatesExpired(ctx)
	case rateResolved:
		return a.onRateResolved(m.rate.Key, m.rate.Rate)
	case nftResolved:
		return a.onNftMetadataResolved(m.metadata)
	case contactsChanged:
		return true
	case lastBlockUpdated:
		return a.onLastBlockInfo(m.source, m.info)
	case loadNext:
		a.loadNext(ctx)
	case pageFailed:
		a.loading = false
	case fetchRate:
		a.fetchRateIfNeeded(ctx, m.uid)
	}
	return false
}

func (a *actor) publish(ctx context.Context) {
	a.version++
	a.s.publish(ctx, Snapshot{Version: a.version, Items: a.items})
}

func (a *actor) loadNext(ctx context.Context) {
	if a.loading {
		return
	}

	a.loading = true
	a.s.requestPage(ctx)
}

func (a *actor) onResync(generation uint64) bool {
	a.generation = generation
	a.items = nil
	clear(a.index)
	a.rateIndex.Reset()
	a.loading = false
	return true
}

// onRecordsUpdated merges a full record list into the items. Existing items
// keep everything but their record; new items are seeded from the caches.
//
// A list whose new records are all spam is treated as a filtered-out page:
// the next page is requested instead and nothing is published.
func (a *actor) onRecordsUpdated(ctx context.Context, records []txrecord.Record) bool {
	a.loading = false
	a.s.metrics.recordsReceived(ctx, len(records))

	var newRecords []txrecord.Record
	for _, r := range records {
		if _, ok := a.index[r.Common().UID]; !ok {
			newRecords = append(newRecords, r)
		}
	}

	if len(newRecords) > 0 && !slices.ContainsFunc(newRecords, func(r txrecord.Record) bool { return !r.Common().Spam }) {
		a.loadNext(ctx)
		return false
	}

	var cachedMetadata map[txrecord.NftUID]txrecord.NftMetadata
	if nftUIDs := txrecord.NftUIDs(records...); len(nftUIDs) > 0 {
		cachedMetadata = a.s.metadata.Cached(ctx, nftUIDs.ToSlice())
		if missing := types.Difference(nftUIDs, cachedMetadata); len(missing) > 0 {
			a.s.metadata.Fetch(ctx, missing.ToSlice())
		}
	}

	items := make([]Item, 0, len(records))
	index := make(map[string]int, len(records))
	for _, r := range records {
		uid := r.Common().UID
		if r.Common().Spam && a.s.hideSpam {
			continue
		}

		// Identity violations are the source's problem; keep the first.
		if _, ok := index[uid]; ok {
			continue
		}

		var item Item
		if i, ok := a.index[uid]; ok {
			item = a.items[i]
			a.unindexRate(item)
			item.Record = r
		} else {
			item = Item{
				Record:        r,
				CurrencyValue: currencyValue(ctx, a.s.rates, r),
				LastBlockInfo: a.s.blocks.LastBlockInfo(r.Common().Source),
			}
			item.NftMetadata, _ = withMetadata(item, cachedMetadata)
		}

		index[uid] = len(items)
		items = append(items, item)
	}

	for _, item := range a.items {
		if _, ok := index[item.UID()]; !ok {
			a.unindexRate(item)
		}
	}
	for _, item := range items {
		if key, ok := txrecord.RateKeyOf(item.Record); ok {
			a.rateIndex.Get(key).Add(item.UID())
		}
	}

	a.items = items
	a.index = index
	return true
}

func (a *actor) unindexRate(item Item) {
	key, ok := txrecord.RateKeyOf(item.Record)
	if !ok {
		return
	}

	uids, ok := a.rateIndex.Lookup(key)
	if !ok {
		return
	}

	uids.Delete(item.UID())
	if len(uids) == 0 {
		a.rateIndex.Delete(key)
	}
}

// update copies the list and applies fn to every item at the given
// positions. It reports whether fn changed anything.
func (a *actor) update(positions []int, fn func(*Item) bool) bool {
	var items []Item
	for _, i := range positions {
		item := a.items[i]
		if !fn(&item) {
			continue
		}

		if items == nil {
			items = slices.Clone(a.items)
		}
		items[i] = item
	}

	if items == nil {
		return false
	}

	a.items = items
	return true
}

func (a *actor) allPositions() []int {
	positions := make([]int, len(a.items))
	for i := range positions {
		positions[i] = i
	}
	return positions
}

func (a *actor) onRatesExpired(ctx context.Context) bool {
	clear(a.requested)

	a.update(a.allPositions(), func(item *Item) bool {
		item.CurrencyValue = currencyValue(ctx, a.s.rates, item.Record)
		return true
	})
	return true
}

// onRateResolved updates every item priced with key.
func (a *actor) onRateResolved(key txrecord.RateKey, rate txrecord.CurrencyValue) bool {
	delete(a.requested, key)

	uids, ok := a.rateIndex.Lookup(key)
	if !ok {
		return false
	}

	positions := make([]int, 0, len(uids))
	for uid := range uids {
		if i, ok := a.index[uid]; ok {
			positions = append(positions, i)
		}
	}

	return a.update(positions, func(item *Item) bool {
		value := rate.Times(*item.Record.Common().MainValue)
		if value == nil {
			return false
		}

		item.CurrencyValue = value
		return true
	})
}

// onNftMetadataResolved merges resolved metadata into the items that
// reference it. Entries are added or replaced, never removed.
func (a *actor) onNftMetadataResolved(resolved map[txrecord.NftUID]txrecord.NftMetadata) bool {
	return a.update(a.allPositions(), func(item *Item) bool {
		merged, changed := withMetadata(*item, resolved)
		item.NftMetadata = merged
		return changed
	})
}

func (a *actor) onLastBlockInfo(source txrecord.Source, info txrecord.LastBlockInfo) bool {
	return a.update(a.allPositions(), func(item *Item) bool {
		if item.Record.Common().Source != source || !txrecord.ChangedBy(item.Record, item.LastBlockInfo, &info) {
			return false
		}

		item.LastBlockInfo = &info
		return true
	})
}

func (a *actor) fetchRateIfNeeded(ctx context.Context, uid string) {
	i, ok := a.index[uid]
	if !ok || a.items[i].CurrencyValue != nil {
		return
	}

	key, ok := txrecord.RateKeyOf(a.items[i].Record)
	if !ok {
		return
	}

	now := a.s.now()
	if at, ok := a.requested[key]; ok && now.Sub(at) < a.s.rateRefetchInterval {
		return
	}

	a.requested[key] = now
	logger.Debug(ctx, "fetching historical rate", "rate.coin_uid", key.CoinUID, "rate.timestamp", key.Timestamp)
	a.s.rates.Fetch(ctx, key)
}
