package txview

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"

	"github.com/gabapcia/txhistory/internal/txrecord"
)

type explorer struct {
	title  string
	prefix string
	evm    bool
}

var explorers = map[txrecord.BlockchainType]explorer{
	txrecord.BlockchainEthereum:     {title: "etherscan.io", prefix: "https://etherscan.io/tx/", evm: true},
	txrecord.BlockchainBinanceSmart: {title: "bscscan.com", prefix: "https://bscscan.com/tx/", evm: true},
	txrecord.BlockchainPolygon:      {title: "polygonscan.com", prefix: "https://polygonscan.com/tx/", evm: true},
	txrecord.BlockchainBitcoin:      {title: "blockchair.com", prefix: "https://blockchair.com/bitcoin/transaction/"},
	txrecord.BlockchainLitecoin:     {title: "blockchair.com", prefix: "https://blockchair.com/litecoin/transaction/"},
	txrecord.BlockchainBinanceChain: {title: "binance.org", prefix: "https://explorer.binance.org/tx/"},
	txrecord.BlockchainSolana:       {title: "solscan.io", prefix: "https://solscan.io/tx/"},
	txrecord.BlockchainTron:         {title: "tronscan.org", prefix: "https://tronscan.org/#/transaction/"},
	txrecord.BlockchainTon:          {title: "tonviewer.com", prefix: "https://tonviewer.com/transaction/"},
	txrecord.BlockchainStellar:      {title: "stellar.expert", prefix: "https://stellar.expert/explorer/public/tx/"},
	txrecord.BlockchainMonero:       {title: "xmrchain.net", prefix: "https://xmrchain.net/tx/"},
}

// ExplorerFor returns the block explorer page of a transaction. Unknown
// chains get an explorer without a URL.
func ExplorerFor(blockchain txrecord.BlockchainType, hash string) ExplorerData {
	e, ok := explorers[blockchain]
	if !ok {
		return ExplorerData{Title: string(blockchain)}
	}

	if e.evm {
		hash = evmTxHash(hash)
	} else {
		hash = normalizeTxHash(hash)
	}
	return ExplorerData{Title: e.title, URL: e.prefix + hash}
}

// evmTxHash renders a 32-byte hash as lowercase 0x-prefixed hex.
func evmTxHash(hash string) string {
	trimmed := strings.TrimPrefix(strings.ToLower(hash), "0x")
	if len(trimmed) != 2*common.HashLength {
		return hash
	}
	return common.HexToHash(trimmed).Hex()
}
