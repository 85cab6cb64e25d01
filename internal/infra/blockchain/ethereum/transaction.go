package ethereum

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/gabapcia/txhistory/internal/txrecord"
)

// RawTransaction returns the RLP encoded signed transaction as 0x-prefixed
// hex. It reports false for other chains and for hashes the node does not
// know.
func (c *client) RawTransaction(ctx context.Context, source txrecord.Source, hash string) (string, bool, error) {
	if source.Blockchain != c.blockchain {
		return "", false, nil
	}

	data, err := c.conn.Fetch(ctx, "eth_getRawTransactionByHash", hash)
	if err != nil {
		return "", false, err
	}

	var raw *hexutil.Bytes
	if err := json.Unmarshal(data, &raw); err != nil {
		return "", false, fmt.Errorf("decode raw transaction: %w", err)
	}

	if raw == nil || len(*raw) == 0 {
		return "", false, nil
	}

	return raw.String(), true, nil
}
