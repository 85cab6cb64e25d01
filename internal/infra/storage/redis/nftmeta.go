package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/gabapcia/txhistory/internal/nftmeta"
	"github.com/gabapcia/txhistory/internal/pkg/logger"
	"github.com/gabapcia/txhistory/internal/txrecord"
)

// nftMetadataKey builds the key of one token:
//
//	"<prefix>:nft:<blockchain>:<contract>:<tokenId>"
func (c *client) nftMetadataKey(id txrecord.NftUID) string {
	return fmt.Sprintf("%s:nft:%s", c.keyPrefix, id.String())
}

// SaveNftMetadata writes every entry in a single pipeline.
func (c *client) SaveNftMetadata(ctx context.Context, metadata map[txrecord.NftUID]txrecord.NftMetadata) error {
	pipe := c.conn.Pipeline()
	for id, meta := range metadata {
		data, err := json.Marshal(meta)
		if err != nil {
			return fmt.Errorf("encode metadata of %s: %w", id, err)
		}

		pipe.Set(ctx, c.nftMetadataKey(id), data, c.metadataTTL)
	}

	_, err := pipe.Exec(ctx)
	return err
}

// LoadNftMetadata reads ids with MGET. Missing or undecodable entries are
// left out of the result.
func (c *client) LoadNftMetadata(ctx context.Context, ids []txrecord.NftUID) (map[txrecord.NftUID]txrecord.NftMetadata, error) {
	result := make(map[txrecord.NftUID]txrecord.NftMetadata, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = c.nftMetadataKey(id)
	}

	values, err := c.conn.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	for i, v := range values {
		s, ok := v.(string)
		if !ok {
			continue
		}

		var meta txrecord.NftMetadata
		if err := json.Unmarshal([]byte(s), &meta); err != nil {
			logger.Warn(ctx, "ignoring corrupted nft metadata", "nft.uid", ids[i].String(), "error", err)
			continue
		}

		result[ids[i]] = meta
	}

	return result, nil
}

var _ nftmeta.Storage = (*client)(nil)
