package txview

import (
	"strings"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/ethereum/go-ethereum/common"
	tronaddress "github.com/fbsobreira/gotron-sdk/pkg/address"
	"github.com/gagliardetto/solana-go"

	"github.com/gabapcia/txhistory/internal/txrecord"
)

func isEvmChain(b txrecord.BlockchainType) bool {
	switch b {
	case txrecord.BlockchainEthereum, txrecord.BlockchainBinanceSmart, txrecord.BlockchainPolygon:
		return true
	}
	return false
}

// DisplayAddress renders addr in the canonical form of its chain. Addresses
// that do not parse are returned unchanged.
func DisplayAddress(blockchain txrecord.BlockchainType, addr string) string {
	switch {
	case isEvmChain(blockchain):
		if common.IsHexAddress(addr) {
			return common.HexToAddress(addr).Hex()
		}
	case blockchain == txrecord.BlockchainTron:
		return tronAddress(addr)
	case blockchain == txrecord.BlockchainSolana:
		if pk, err := solana.PublicKeyFromBase58(addr); err == nil {
			return pk.String()
		}
	}
	return addr
}

// tronAddress converts the 21-byte hex form (41...) to base58check.
func tronAddress(addr string) string {
	if _, err := tronaddress.Base58ToAddress(addr); err == nil {
		return addr
	}

	hex := strings.TrimPrefix(strings.ToLower(addr), "0x")
	if len(hex) != 42 || !strings.HasPrefix(hex, "41") {
		return addr
	}

	if a := tronaddress.HexToAddress(hex); len(a) == 21 {
		return a.String()
	}
	return addr
}

// isZeroAddress reports whether addr is the EVM zero address, which marks
// mints and burns.
func isZeroAddress(addr string) bool {
	return common.IsHexAddress(addr) && common.HexToAddress(addr) == (common.Address{})
}

// normalizeTxHash lowercases a bitcoin-style hash when it parses as one.
func normalizeTxHash(hash string) string {
	h, err := chainhash.NewHashFromStr(hash)
	if err != nil || len(hash) != 2*chainhash.HashSize {
		return hash
	}
	return h.String()
}
