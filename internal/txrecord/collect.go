package txrecord

import (
	"slices"

	"github.com/gabapcia/txhistory/internal/pkg/types"
)

// values returns every Value carried by r except the fee, in a stable order.
func values(r Record) []*Value {
	var out []*Value
	addEvents := func(events []TransferEvent) {
		for i := range events {
			out = append(out, &events[i].Value)
		}
	}

	switch tx := r.(type) {
	case *EvmRecord:
		out = append(out, tx.Value, tx.ValueIn, tx.ValueOut)
		addEvents(tx.IncomingEvents)
		addEvents(tx.OutgoingEvents)
	case *BitcoinRecord:
		// main value only
	case *SolanaRecord:
		addEvents(tx.Incoming)
		addEvents(tx.Outgoing)
	case *TronRecord:
		addEvents(tx.IncomingEvents)
		addEvents(tx.OutgoingEvents)
	case *TonRecord:
		for i := range tx.Actions {
			a := &tx.Actions[i]
			out = append(out, a.Value, a.ValueIn, a.ValueOut)
		}
	case *StellarRecord:
		out = append(out, tx.TrustLimit)
	case *MoneroRecord, *BinanceChainRecord:
		// main value only
	}

	out = append(out, r.Common().MainValue)
	return slices.DeleteFunc(out, func(v *Value) bool { return v == nil })
}

// Fee returns the fee paid by the record, or nil when unknown.
func Fee(r Record) *Value {
	switch tx := r.(type) {
	case *EvmRecord:
		return tx.Fee
	case *BitcoinRecord:
		return tx.Fee
	case *SolanaRecord:
		return tx.Fee
	case *TronRecord:
		return tx.Fee
	case *TonRecord:
		return tx.Fee
	case *StellarRecord:
		return tx.Fee
	case *MoneroRecord:
		return tx.Fee
	case *BinanceChainRecord:
		return tx.Fee
	}
	return nil
}

// IsForeign reports whether the wallet did not initiate the transaction.
// Only EVM and Tron records can be foreign.
func IsForeign(r Record) bool {
	switch tx := r.(type) {
	case *EvmRecord:
		return tx.ForeignTransaction
	case *TronRecord:
		return tx.ForeignTransaction
	}
	return false
}

// NftUIDs returns every NFT referenced by the given records.
func NftUIDs(records ...Record) types.Set[NftUID] {
	uids := types.NewSet[NftUID]()
	for _, r := range records {
		for _, v := range values(r) {
			if v.NFT != nil {
				uids.Add(*v.NFT)
			}
		}
	}
	return uids
}

// RateCoinUIDs lists the coins whose historical price is needed to render r,
// sorted. Foreign transactions never contribute their fee coin.
func RateCoinUIDs(r Record) []string {
	uids := types.NewSet[string]()
	for _, v := range values(r) {
		if v.CoinUID != "" && !v.IsNFT() {
			uids.Add(v.CoinUID)
		}
	}

	if f := Fee(r); f != nil && f.CoinUID != "" && !IsForeign(r) {
		uids.Add(f.CoinUID)
	}

	out := uids.ToSlice()
	slices.Sort(out)
	return out
}

// Mentions reports whether r moves coinUID, fee excluded.
func Mentions(r Record, coinUID string) bool {
	return slices.ContainsFunc(values(r), func(v *Value) bool { return v.CoinUID == coinUID })
}
