package ethereum

import (
	"context"
	"time"

	"github.com/gabapcia/txhistory/internal/pkg/logger"
	"github.com/gabapcia/txhistory/internal/pkg/transport/jsonrpc"
	"github.com/gabapcia/txhistory/internal/pkg/types"
	"github.com/gabapcia/txhistory/internal/pkg/x/chflow"
	"github.com/gabapcia/txhistory/internal/txrecord"
)

// blockHeader is the part of eth_getBlockByNumber the feed needs.
type blockHeader struct {
	Number    types.Hex `json:"number"`
	Timestamp types.Hex `json:"timestamp"`
}

func (b blockHeader) toLastBlockInfo() txrecord.LastBlockInfo {
	return txrecord.LastBlockInfo{
		Height:    b.Number.Int(),
		Timestamp: b.Timestamp.IntPtr(),
	}
}

// getLatestBlock fetches the header of the newest block.
func (c *client) getLatestBlock(ctx context.Context) (blockHeader, error) {
	return jsonrpc.Call[blockHeader](ctx, c.conn, "eth_getBlockByNumber", "latest", false)
}

// LastBlockInfo returns the newest block seen by any subscription, or nil
// before the first poll and for other chains.
func (c *client) LastBlockInfo(source txrecord.Source) *txrecord.LastBlockInfo {
	if source.Blockchain != c.blockchain {
		return nil
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.latest == nil {
		return nil
	}

	info := *c.latest
	return &info
}

// poll fetches the newest block and records it as the latest one unless a
// higher block was already seen.
func (c *client) poll(ctx context.Context) (txrecord.LastBlockInfo, bool) {
	header, err := c.getLatestBlock(ctx)
	if err != nil {
		logger.Warn(ctx, "failed to fetch latest block", "block.blockchain", string(c.blockchain), "error", err)
		return txrecord.LastBlockInfo{}, false
	}

	info := header.toLastBlockInfo()

	c.mu.Lock()
	if c.latest == nil || c.latest.Height < info.Height {
		c.latest = &info
	}
	c.mu.Unlock()

	return info, true
}

// Subscribe polls the node right away and then every interval, emitting each
// block whose height differs from the previous emission. A slow reader only
// sees the newest block. The channel is closed when ctx is done.
func (c *client) Subscribe(ctx context.Context, source txrecord.Source) (<-chan txrecord.LastBlockInfo, error) {
	if source.Blockchain != c.blockchain {
		return nil, ErrUnsupportedBlockchain
	}

	out := make(chan txrecord.LastBlockInfo, 1)
	go func() {
		defer close(out)

		var prev *txrecord.LastBlockInfo
		emit := func() {
			info, ok := c.poll(ctx)
			if !ok || (prev != nil && prev.Height == info.Height) {
				return
			}

			prev = &info
			chflow.Replace(out, info)
		}

		emit()
		for {
			select {
			case <-ctx.Done():
				return
			case <-time.After(c.pollInterval):
				emit()
			}
		}
	}()

	return out, nil
}
