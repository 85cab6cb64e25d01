package txstream

import (
	"github.com/gabapcia/txhistory/internal/txrecord"
)

// Scope is the wallet an aggregator works for: the chains and accounts whose
// records it merges.
type Scope struct {
	Sources []txrecord.Source `validate:"required,min=1,dive"`
}

// FilterType narrows the list to one kind of activity.
type FilterType string

const (
	FilterAll      FilterType = "all"
	FilterIncoming FilterType = "incoming"
	FilterOutgoing FilterType = "outgoing"
	FilterSwap     FilterType = "swap"
	FilterApprove  FilterType = "approve"
)

// Filter selects which records the source streams. The zero value selects
// everything.
type Filter struct {
	CoinUID string
	Type    FilterType
}

// Matches reports whether r passes the filter.
func (f Filter) Matches(r txrecord.Record) bool {
	if f.CoinUID != "" && !txrecord.Mentions(r, f.CoinUID) {
		return false
	}

	if f.Type == "" || f.Type == FilterAll {
		return true
	}

	return typeOf(r)[f.Type]
}

// typeOf reports the filter types a record belongs to. Contract calls count as
// incoming and/or outgoing depending on their events.
func typeOf(r txrecord.Record) map[FilterType]bool {
	events := func(in, out []txrecord.TransferEvent) map[FilterType]bool {
		return map[FilterType]bool{FilterIncoming: len(in) > 0, FilterOutgoing: len(out) > 0}
	}

	switch tx := r.(type) {
	case *txrecord.EvmRecord:
		switch tx.Kind {
		case txrecord.EvmIncoming:
			return map[FilterType]bool{FilterIncoming: true}
		case txrecord.EvmOutgoing, txrecord.EvmContractCreation:
			return map[FilterType]bool{FilterOutgoing: true}
		case txrecord.EvmSwap, txrecord.EvmUnknownSwap:
			return map[FilterType]bool{FilterSwap: true}
		case txrecord.EvmApprove:
			return map[FilterType]bool{FilterApprove: true}
		default:
			return events(tx.IncomingEvents, tx.OutgoingEvents)
		}
	case *txrecord.BitcoinRecord:
		return map[FilterType]bool{
			FilterIncoming: tx.Kind == txrecord.BitcoinIncoming,
			FilterOutgoing: tx.Kind == txrecord.BitcoinOutgoing,
		}
	case *txrecord.SolanaRecord:
		return accountType(tx.Kind, events(tx.Incoming, tx.Outgoing))
	case *txrecord.TronRecord:
		return accountType(tx.Kind, events(tx.IncomingEvents, tx.OutgoingEvents))
	case *txrecord.TonRecord:
		out := make(map[FilterType]bool)
		for _, a := range tx.Actions {
			switch a.Kind {
			case txrecord.TonReceive, txrecord.TonMint:
				out[FilterIncoming] = true
			case txrecord.TonSend, txrecord.TonBurn, txrecord.TonContractCall:
				out[FilterOutgoing] = true
			case txrecord.TonSwap:
				out[FilterSwap] = true
			}
		}
		return out
	case *txrecord.StellarRecord:
		return simpleType(tx.Kind)
	case *txrecord.MoneroRecord:
		return simpleType(tx.Kind)
	case *txrecord.BinanceChainRecord:
		return simpleType(tx.Kind)
	}
	return nil
}

func accountType(kind txrecord.AccountKind, events map[FilterType]bool) map[FilterType]bool {
	switch kind {
	case txrecord.AccountIncoming:
		return map[FilterType]bool{FilterIncoming: true}
	case txrecord.AccountOutgoing:
		return map[FilterType]bool{FilterOutgoing: true}
	case txrecord.AccountApprove:
		return map[FilterType]bool{FilterApprove: true}
	}
	return events
}

func simpleType(kind txrecord.SimpleKind) map[FilterType]bool {
	switch kind {
	case txrecord.SimpleIncoming:
		return map[FilterType]bool{FilterIncoming: true}
	case txrecord.SimpleOutgoing:
		return map[FilterType]bool{FilterOutgoing: true}
	case txrecord.SimpleChangeTrust:
		return map[FilterType]bool{FilterApprove: true}
	}
	return nil
}
