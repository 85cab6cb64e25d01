package txinfo

import (
	"context"
	"maps"

	"github.com/gabapcia/txhistory/internal/pkg/x/chflow"
	"github.com/gabapcia/txhistory/internal/txrecord"
)

type message any

type (
	recordsUpdated   struct{ records []txrecord.Record }
	lastBlockUpdated struct{ info txrecord.LastBlockInfo }
	ratesFetched     struct {
		rates map[string]txrecord.CurrencyValue
	}
	nftResolved struct {
		metadata map[txrecord.NftUID]txrecord.NftMetadata
	}
	statusPolled struct{ status *txrecord.Status }
)

// actor owns the item. Every handler replaces it with a modified copy.
//
// At most one status poll is in flight. A block that arrives meanwhile
// schedules one more poll, started once the current one reports back.
type actor struct {
	s       *service
	item    Item
	polling bool
	repoll  bool
}

func newActor(s *service, item Item) *actor {
	return &actor{s: s, item: item}
}

func (a *actor) run(ctx context.Context) {
	a.pollStatus(ctx)

	for {
		msg, ok := chflow.Receive(ctx, a.s.inbox)
		if !ok {
			return
		}

		if a.handle(ctx, msg) {
			a.publish()
		}
	}
}

func (a *actor) handle(ctx context.Context, msg message) bool {
	switch m := msg.(type) {
	case recordsUpdated:
		return a.onRecordsUpdated(m.records)
	case lastBlockUpdated:
		return a.onLastBlockInfo(ctx, m.info)
	case ratesFetched:
		a.item.Rates = m.rates
		return true
	case nftResolved:
		return a.onNftMetadataResolved(m.metadata)
	case statusPolled:
		return a.onStatusPolled(ctx, m.status)
	}
	return false
}

func (a *actor) publish() {
	a.item.Version++
	a.s.publish(a.item)
}

func (a *actor) onRecordsUpdated(records []txrecord.Record) bool {
	uid := a.item.Record.Common().UID
	for _, r := range records {
		if r.Common().UID == uid {
			a.item.Record = r
			return true
		}
	}
	return false
}

// onLastBlockInfo records the new block and polls the external status again.
func (a *actor) onLastBlockInfo(ctx context.Context, info txrecord.LastBlockInfo) bool {
	a.pollStatus(ctx)

	if a.item.LastBlockInfo.Equal(&info) {
		return false
	}

	a.item.LastBlockInfo = &info
	return true
}

func (a *actor) pollStatus(ctx context.Context) {
	if a.s.tracker == nil {
		return
	}

	if a.polling {
		a.repoll = true
		return
	}

	a.polling = true
	a.s.pollStatus(ctx, a.item.Record)
}

// onStatusPolled stores a polled status. A nil status means the poll failed
// or the tracker had nothing to report.
func (a *actor) onStatusPolled(ctx context.Context, status *txrecord.Status) bool {
	a.polling = false
	if a.repoll {
		a.repoll = false
		a.pollStatus(ctx)
	}

	if status == nil {
		return false
	}

	if a.item.ExternalStatus != nil && *a.item.ExternalStatus == *status {
		return false
	}

	a.item.ExternalStatus = status
	return true
}

// onNftMetadataResolved merges the resolved entries the record references.
func (a *actor) onNftMetadataResolved(resolved map[txrecord.NftUID]txrecord.NftMetadata) bool {
	var merged map[txrecord.NftUID]txrecord.NftMetadata
	for id := range txrecord.NftUIDs(a.item.Record) {
		meta, ok := resolved[id]
		if !ok {
			continue
		}

		if current, ok := a.item.NftMetadata[id]; ok && current == meta {
			continue
		}

		if merged == nil {
			merged = maps.Clone(a.item.NftMetadata)
			if merged == nil {
				merged = make(map[txrecord.NftUID]txrecord.NftMetadata)
			}
		}
		merged[id] = meta
	}

	if merged == nil {
		return false
	}

	a.item.NftMetadata = merged
	return true
}
