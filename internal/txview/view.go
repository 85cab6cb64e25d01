// Package txview turns a transaction record and its enrichment context into
// ordered sections of typed view items. Classification is pure: it performs no
// I/O and returns equal output for equal input.
package txview

import (
	"github.com/gabapcia/txhistory/internal/txrecord"
)

// ViewItem is one typed line of a detail view. The set of implementations is
// closed.
type ViewItem interface {
	viewItem()
}

// Section is an ordered group of view items.
type Section []ViewItem

// Tone tells a renderer how to color an amount.
type Tone string

const (
	ToneIncoming Tone = "incoming"
	ToneOutgoing Tone = "outgoing"
	ToneNeutral  Tone = "neutral"
)

// Sign is the sign shown in front of an amount.
type Sign string

const (
	SignNone     Sign = ""
	SignPositive Sign = "+"
	SignNegative Sign = "-"
)

// AmountKind says which role an amount plays in its section.
type AmountKind string

const (
	AmountSent     AmountKind = "sent"
	AmountReceived AmountKind = "received"
	AmountYouSent  AmountKind = "you-sent"
	AmountYouGot   AmountKind = "you-got"
	AmountApproved AmountKind = "approved"
)

// Header is the title line of a section, e.g. a contract method.
type Header struct {
	Title      string
	Subtitle   string
	Blockchain txrecord.BlockchainType
}

// Amount is a coin or token amount with its fiat equivalent.
//
// Coin.Amount is the absolute amount. Fiat is nil when no rate is known.
// Hidden amounts carry neither.
type Amount struct {
	Title     string
	Kind      AmountKind
	Coin      txrecord.Value
	Sign      Sign
	Tone      Tone
	Fiat      *txrecord.CurrencyValue
	Bound     string
	Unlimited bool
	Hidden    bool
}

// NftAmount is an NFT movement with whatever metadata has been resolved.
type NftAmount struct {
	Title           string
	Coin            txrecord.Value
	Sign            Sign
	Tone            Tone
	Name            string
	PreviewImageURL string
	Hidden          bool
}

// KeyValue is a plain titled value such as a date, memo or rate.
type KeyValue struct {
	Title string
	Value string
}

// Address is a counterparty address. InContacts is true when a Contact item
// follows it.
type Address struct {
	Title      string
	Address    string
	Blockchain txrecord.BlockchainType
	InContacts bool
}

// Contact is the contact-book name of the address before it.
type Contact struct {
	Name string
}

// StatusItem is the confirmation state.
type StatusItem struct {
	Status txrecord.Status
}

// SpeedUpCancel offers to replace a pending transaction.
type SpeedUpCancel struct {
	TransactionHash string
	Blockchain      txrecord.BlockchainType
}

// TransactionHash is the hash of the transaction.
type TransactionHash struct {
	Hash string
}

// Explorer is a link to an external page about the transaction.
type Explorer struct {
	Title string
	URL   string
}

// RawTransaction marks that the raw payload can be fetched.
type RawTransaction struct{}

// LockState is the lock state of a time-locked output.
type LockState struct {
	Locked bool
	Date   int64
}

// DoubleSpend flags a transaction replaced by a conflicting one.
type DoubleSpend struct {
	TransactionHash string
	ConflictingHash string
}

// SentToSelf marks a transfer between addresses of the same wallet.
type SentToSelf struct{}

// Warning is a prominent message, e.g. for spam.
type Warning struct {
	Message string
}

// Description is explanatory text.
type Description struct {
	Text string
}

func (Header) viewItem()          {}
func (Amount) viewItem()          {}
func (NftAmount) viewItem()       {}
func (KeyValue) viewItem()        {}
func (Address) viewItem()         {}
func (Contact) viewItem()         {}
func (StatusItem) viewItem()      {}
func (SpeedUpCancel) viewItem()   {}
func (TransactionHash) viewItem() {}
func (Explorer) viewItem()        {}
func (RawTransaction) viewItem()  {}
func (LockState) viewItem()       {}
func (DoubleSpend) viewItem()     {}
func (SentToSelf) viewItem()      {}
func (Warning) viewItem()         {}
func (Description) viewItem()     {}

// ExplorerData names an external page and its URL.
type ExplorerData struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// ContactBook resolves addresses to contact names.
type ContactBook interface {
	ContactName(blockchain txrecord.BlockchainType, address string) (string, bool)
}

// Context is everything besides the record that classification depends on.
type Context struct {
	Rates          map[string]txrecord.CurrencyValue
	NftMetadata    map[txrecord.NftUID]txrecord.NftMetadata
	LastBlockInfo  *txrecord.LastBlockInfo
	ExternalStatus *txrecord.Status
	HideAmount     bool
	ResendEnabled  bool
	Explorer       ExplorerData
	StatusURL      *ExplorerData

	// Contacts may be nil.
	Contacts ContactBook
}
