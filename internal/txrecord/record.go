// Package txrecord defines the chain-native transaction records produced by the
// sync adapters and consumed by the aggregation pipeline.
//
// A Record is a closed tagged union: exactly eight families implement it and
// consumers are expected to dispatch with an exhaustive type switch. Records
// are immutable once emitted; a newer emission of the same logical transaction
// carries the same UID.
package txrecord

// BlockchainType identifies the chain a record belongs to (e.g. "ethereum",
// "bitcoin", "tron"). It is used for explorer links, contact lookups and
// address rendering.
type BlockchainType string

const (
	BlockchainEthereum     BlockchainType = "ethereum"
	BlockchainBinanceSmart BlockchainType = "binance-smart-chain"
	BlockchainPolygon      BlockchainType = "polygon"
	BlockchainBitcoin      BlockchainType = "bitcoin"
	BlockchainLitecoin     BlockchainType = "litecoin"
	BlockchainBinanceChain BlockchainType = "binance-chain"
	BlockchainSolana       BlockchainType = "solana"
	BlockchainTron         BlockchainType = "tron"
	BlockchainTon          BlockchainType = "ton"
	BlockchainStellar      BlockchainType = "stellar"
	BlockchainMonero       BlockchainType = "monero"
)

// Source points at the wallet and chain a record was synced from.
// It is comparable and is used as the key of block-height updates.
type Source struct {
	Blockchain BlockchainType `json:"blockchain" validate:"required"`
	Account    string         `json:"account" validate:"required"`
	Meta       string         `json:"meta,omitempty"`
}

// Base holds the fields every record family shares.
type Base struct {
	UID                    string `json:"uid"`
	TransactionHash        string `json:"transactionHash"`
	TransactionIndex       int    `json:"transactionIndex"`
	BlockHeight            *int64 `json:"blockHeight,omitempty"`
	ConfirmationsThreshold *int64 `json:"confirmationsThreshold,omitempty"`
	Timestamp              int64  `json:"timestamp"`
	Failed                 bool   `json:"failed"`
	Spam                   bool   `json:"spam"`
	Source                 Source `json:"source"`
	MainValue              *Value `json:"mainValue,omitempty"`
}

// Common returns the shared fields. It is promoted to every family through
// embedding, which is how the families satisfy Record.
func (b *Base) Common() *Base { return b }

// Record is one raw ledger entry. The set of implementations is closed.
type Record interface {
	Common() *Base
	family() Family
}

// Family names the structural family of a record.
type Family string

const (
	FamilyEvm          Family = "evm"
	FamilyBitcoin      Family = "bitcoin"
	FamilyBinanceChain Family = "binance-chain"
	FamilySolana       Family = "solana"
	FamilyTron         Family = "tron"
	FamilyTon          Family = "ton"
	FamilyStellar      Family = "stellar"
	FamilyMonero       Family = "monero"
)

// FamilyOf reports the family of r.
func FamilyOf(r Record) Family { return r.family() }

// TransferEvent is a single token movement inside a contract call.
type TransferEvent struct {
	Address string `json:"address"`
	Value   Value  `json:"value"`
}

// EvmKind is the sub-type of an EVM record.
type EvmKind string

const (
	EvmContractCreation     EvmKind = "contract-creation"
	EvmIncoming             EvmKind = "incoming"
	EvmOutgoing             EvmKind = "outgoing"
	EvmSwap                 EvmKind = "swap"
	EvmUnknownSwap          EvmKind = "unknown-swap"
	EvmApprove              EvmKind = "approve"
	EvmContractCall         EvmKind = "contract-call"
	EvmExternalContractCall EvmKind = "external-contract-call"
)

// SwapAmountKind tells whether the input side of a swap was exact or a bound.
type SwapAmountKind string

const (
	SwapAmountExact    SwapAmountKind = "exact"
	SwapAmountExtremum SwapAmountKind = "extremum"
)

// EvmRecord covers every account-based EVM chain.
type EvmRecord struct {
	Base
	Kind               EvmKind `json:"kind"`
	Fee                *Value  `json:"fee,omitempty"`
	ForeignTransaction bool    `json:"foreignTransaction"`

	// incoming / outgoing / approve
	From       string `json:"from,omitempty"`
	To         string `json:"to,omitempty"`
	Value      *Value `json:"value,omitempty"`
	SentToSelf bool   `json:"sentToSelf"`
	Spender    string `json:"spender,omitempty"`

	// swap / unknown-swap
	ExchangeAddress string          `json:"exchangeAddress,omitempty"`
	ValueIn         *Value          `json:"valueIn,omitempty"`
	ValueOut        *Value          `json:"valueOut,omitempty"`
	AmountIn        *SwapAmountKind `json:"amountIn,omitempty"`
	Recipient       string          `json:"recipient,omitempty"`

	// contract-call / external-contract-call
	ContractAddress string          `json:"contractAddress,omitempty"`
	Method          string          `json:"method,omitempty"`
	IncomingEvents  []TransferEvent `json:"incomingEvents,omitempty"`
	OutgoingEvents  []TransferEvent `json:"outgoingEvents,omitempty"`
}

func (*EvmRecord) family() Family { return FamilyEvm }

// BitcoinKind is the sub-type of a UTXO record.
type BitcoinKind string

const (
	BitcoinIncoming BitcoinKind = "incoming"
	BitcoinOutgoing BitcoinKind = "outgoing"
)

// LockInfo describes a time-locked UTXO output.
type LockInfo struct {
	LockedUntil     int64  `json:"lockedUntil"`
	OriginalAddress string `json:"originalAddress,omitempty"`
}

// BitcoinRecord covers Bitcoin-like UTXO chains.
type BitcoinRecord struct {
	Base
	Kind               BitcoinKind `json:"kind"`
	From               string      `json:"from,omitempty"`
	To                 string      `json:"to,omitempty"`
	Fee                *Value      `json:"fee,omitempty"`
	SentToSelf         bool        `json:"sentToSelf"`
	Memo               string      `json:"memo,omitempty"`
	Replaceable        bool        `json:"replaceable"`
	ConflictingHash    string      `json:"conflictingHash,omitempty"`
	ShowRawTransaction bool        `json:"showRawTransaction"`
	LockInfo           *LockInfo   `json:"lockInfo,omitempty"`
}

func (*BitcoinRecord) family() Family { return FamilyBitcoin }

// AccountKind is the sub-type shared by the Solana and Tron families.
type AccountKind string

const (
	AccountIncoming             AccountKind = "incoming"
	AccountOutgoing             AccountKind = "outgoing"
	AccountApprove              AccountKind = "approve"
	AccountContractCall         AccountKind = "contract-call"
	AccountExternalContractCall AccountKind = "external-contract-call"
	AccountUnknown              AccountKind = "unknown"
)

// SolanaRecord covers Solana transfers and program calls.
type SolanaRecord struct {
	Base
	Kind           AccountKind     `json:"kind"`
	From           string          `json:"from,omitempty"`
	To             string          `json:"to,omitempty"`
	Fee            *Value          `json:"fee,omitempty"`
	SentToSelf     bool            `json:"sentToSelf"`
	Spender        string          `json:"spender,omitempty"`
	ProgramAddress string          `json:"programAddress,omitempty"`
	Method         string          `json:"method,omitempty"`
	Incoming       []TransferEvent `json:"incomingTransfers,omitempty"`
	Outgoing       []TransferEvent `json:"outgoingTransfers,omitempty"`
}

func (*SolanaRecord) family() Family { return FamilySolana }

// TronRecord covers Tron native and TRC-20 activity.
type TronRecord struct {
	Base
	Kind               AccountKind     `json:"kind"`
	Fee                *Value          `json:"fee,omitempty"`
	ForeignTransaction bool            `json:"foreignTransaction"`
	From               string          `json:"from,omitempty"`
	To                 string          `json:"to,omitempty"`
	SentToSelf         bool            `json:"sentToSelf"`
	Spender            string          `json:"spender,omitempty"`
	ContractAddress    string          `json:"contractAddress,omitempty"`
	ContractLabel      string          `json:"contractLabel,omitempty"`
	Method             string          `json:"method,omitempty"`
	IncomingEvents     []TransferEvent `json:"incomingEvents,omitempty"`
	OutgoingEvents     []TransferEvent `json:"outgoingEvents,omitempty"`
}

func (*TronRecord) family() Family { return FamilyTron }

// TonActionKind is the type of a single Ton action.
type TonActionKind string

const (
	TonBurn           TonActionKind = "burn"
	TonMint           TonActionKind = "mint"
	TonSend           TonActionKind = "send"
	TonReceive        TonActionKind = "receive"
	TonSwap           TonActionKind = "swap"
	TonContractCall   TonActionKind = "contract-call"
	TonContractDeploy TonActionKind = "contract-deploy"
	TonUnsupported    TonActionKind = "unsupported"
)

// TonAction is one independent step of a Ton transaction.
type TonAction struct {
	Kind        TonActionKind `json:"kind"`
	Value       *Value        `json:"value,omitempty"`
	ValueIn     *Value        `json:"valueIn,omitempty"`
	ValueOut    *Value        `json:"valueOut,omitempty"`
	Address     string        `json:"address,omitempty"`
	Comment     string        `json:"comment,omitempty"`
	SentToSelf  bool          `json:"sentToSelf"`
	RouterName  string        `json:"routerName,omitempty"`
	Interfaces  []string      `json:"interfaces,omitempty"`
	Operation   string        `json:"operation,omitempty"`
	Description string        `json:"description,omitempty"`
	Failed      bool          `json:"failed"`
}

// TonRecord is a Ton transaction made of independent actions.
type TonRecord struct {
	Base
	LogicalTime int64       `json:"logicalTime"`
	Fee         *Value      `json:"fee,omitempty"`
	Memo        string      `json:"memo,omitempty"`
	Actions     []TonAction `json:"actions"`
}

func (*TonRecord) family() Family { return FamilyTon }

// SimpleKind is the sub-type shared by Stellar, Monero and the Binance chain.
type SimpleKind string

const (
	SimpleIncoming    SimpleKind = "incoming"
	SimpleOutgoing    SimpleKind = "outgoing"
	SimpleChangeTrust SimpleKind = "change-trust"
	SimpleUnsupported SimpleKind = "unsupported"
)

// StellarRecord covers Stellar payments and trustline changes.
type StellarRecord struct {
	Base
	Kind           SimpleKind `json:"kind"`
	From           string     `json:"from,omitempty"`
	To             string     `json:"to,omitempty"`
	Fee            *Value     `json:"fee,omitempty"`
	SentToSelf     bool       `json:"sentToSelf"`
	Memo           string     `json:"memo,omitempty"`
	AccountCreated bool       `json:"accountCreated"`
	TrustLimit     *Value     `json:"trustLimit,omitempty"`
	AssetIssuer    string     `json:"assetIssuer,omitempty"`
	OperationType  string     `json:"operationType,omitempty"`
}

func (*StellarRecord) family() Family { return FamilyStellar }

// MoneroRecord covers Monero transfers.
type MoneroRecord struct {
	Base
	Kind          SimpleKind `json:"kind"`
	From          string     `json:"from,omitempty"`
	To            string     `json:"to,omitempty"`
	Fee           *Value     `json:"fee,omitempty"`
	SentToSelf    bool       `json:"sentToSelf"`
	Memo          string     `json:"memo,omitempty"`
	Subaddress    string     `json:"subaddress,omitempty"`
	OperationType string     `json:"operationType,omitempty"`
}

func (*MoneroRecord) family() Family { return FamilyMonero }

// BinanceChainRecord covers the native Binance chain token ledger.
type BinanceChainRecord struct {
	Base
	Kind          SimpleKind `json:"kind"`
	From          string     `json:"from,omitempty"`
	To            string     `json:"to,omitempty"`
	Fee           *Value     `json:"fee,omitempty"`
	SentToSelf    bool       `json:"sentToSelf"`
	Memo          string     `json:"memo,omitempty"`
	OperationType string     `json:"operationType,omitempty"`
}

func (*BinanceChainRecord) family() Family { return FamilyBinanceChain }

var (
	_ Record = (*EvmRecord)(nil)
	_ Record = (*BitcoinRecord)(nil)
	_ Record = (*SolanaRecord)(nil)
	_ Record = (*TronRecord)(nil)
	_ Record = (*TonRecord)(nil)
	_ Record = (*StellarRecord)(nil)
	_ Record = (*MoneroRecord)(nil)
	_ Record = (*BinanceChainRecord)(nil)
)
