package txrecord

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrUnknownFamily is returned when decoding a record whose family is not one
// of the eight known families.
var ErrUnknownFamily = errors.New("unknown record family")

type envelope struct {
	Family Family          `json:"family"`
	Record json.RawMessage `json:"record"`
}

// Marshal encodes r together with its family tag.
func Marshal(r Record) ([]byte, error) {
	payload, err := json.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s record: %w", r.family(), err)
	}

	return json.Marshal(envelope{Family: r.family(), Record: payload})
}

// Unmarshal decodes a record produced by Marshal.
func Unmarshal(data []byte) (Record, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("invalid record envelope: %w", err)
	}

	var r Record
	switch env.Family {
	case FamilyEvm:
		r = new(EvmRecord)
	case FamilyBitcoin:
		r = new(BitcoinRecord)
	case FamilyBinanceChain:
		r = new(BinanceChainRecord)
	case FamilySolana:
		r = new(SolanaRecord)
	case FamilyTron:
		r = new(TronRecord)
	case FamilyTon:
		r = new(TonRecord)
	case FamilyStellar:
		r = new(StellarRecord)
	case FamilyMonero:
		r = new(MoneroRecord)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFamily, env.Family)
	}

	if err := json.Unmarshal(env.Record, r); err != nil {
		return nil, fmt.Errorf("invalid %s record: %w", env.Family, err)
	}

	return r, nil
}
