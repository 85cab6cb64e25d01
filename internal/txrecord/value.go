package txrecord

import (
	"github.com/shopspring/decimal"
)

// NftUID identifies a single NFT token. It is comparable and used as a map key.
type NftUID struct {
	Blockchain BlockchainType `json:"blockchain"`
	Contract   string         `json:"contract"`
	TokenID    string         `json:"tokenId"`
}

// String renders the id as "blockchain:contract:tokenId".
func (n NftUID) String() string {
	return string(n.Blockchain) + ":" + n.Contract + ":" + n.TokenID
}

// NftMetadata is the resolved display data of an NFT.
type NftMetadata struct {
	Name            string `json:"name,omitempty"`
	PreviewImageURL string `json:"previewImageUrl,omitempty"`
}

// Value is an amount of a coin, token or NFT moved by a transaction.
// A nil Amount means the amount is unknown.
type Value struct {
	CoinUID   string           `json:"coinUid,omitempty"`
	CoinCode  string           `json:"coinCode,omitempty"`
	Decimals  int32            `json:"decimals"`
	Amount    *decimal.Decimal `json:"amount,omitempty"`
	NFT       *NftUID          `json:"nft,omitempty"`
	TokenName string           `json:"tokenName,omitempty"`
	MaxValue  bool             `json:"maxValue"`
}

// IsNFT reports whether the value moves an NFT.
func (v Value) IsNFT() bool { return v.NFT != nil }

// Abs returns a copy of the value with a non-negative amount.
func (v Value) Abs() Value {
	if v.Amount == nil {
		return v
	}

	abs := v.Amount.Abs()
	v.Amount = &abs
	return v
}

// Negative reports whether the amount is known and below zero.
func (v Value) Negative() bool {
	return v.Amount != nil && v.Amount.IsNegative()
}

// CurrencyValue is a fiat amount or a fiat rate.
type CurrencyValue struct {
	Currency string          `json:"currency"`
	Value    decimal.Decimal `json:"value"`
}

// Times prices v with the given rate. It returns nil when the amount is unknown.
func (r CurrencyValue) Times(v Value) *CurrencyValue {
	if v.Amount == nil {
		return nil
	}

	return &CurrencyValue{
		Currency: r.Currency,
		Value:    v.Amount.Mul(r.Value),
	}
}

// RateKey identifies a historical price point.
type RateKey struct {
	CoinUID   string `json:"coinUid"`
	Timestamp int64  `json:"timestamp"`
}

// RateKeyOf returns the key used to price the record's main value.
func RateKeyOf(r Record) (RateKey, bool) {
	b := r.Common()
	if b.MainValue == nil || b.MainValue.CoinUID == "" {
		return RateKey{}, false
	}

	return RateKey{CoinUID: b.MainValue.CoinUID, Timestamp: b.Timestamp}, true
}

// LastBlockInfo is the newest block the sync adapter knows about.
type LastBlockInfo struct {
	Height    int64  `json:"height"`
	Timestamp *int64 `json:"timestamp,omitempty"`
}

// HeightPtr returns a pointer to the height, or nil when info is nil.
func (i *LastBlockInfo) HeightPtr() *int64 {
	if i == nil {
		return nil
	}

	h := i.Height
	return &h
}

// TimestampPtr returns the block timestamp, or nil when info is nil.
func (i *LastBlockInfo) TimestampPtr() *int64 {
	if i == nil {
		return nil
	}
	return i.Timestamp
}

// Equal reports whether both infos describe the same block.
func (i *LastBlockInfo) Equal(o *LastBlockInfo) bool {
	if i == nil || o == nil {
		return i == o
	}

	if i.Height != o.Height {
		return false
	}

	if i.Timestamp == nil || o.Timestamp == nil {
		return i.Timestamp == o.Timestamp
	}
	return *i.Timestamp == *o.Timestamp
}

// ResolvedRate is a historical rate delivered by the rate cache after a fetch.
type ResolvedRate struct {
	Key  RateKey       `json:"key"`
	Rate CurrencyValue `json:"rate"`
}
