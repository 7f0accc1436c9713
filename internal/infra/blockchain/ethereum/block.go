package ethereum

import (
	"context"
	"encoding/json"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/event"

	"github.com/gabapcia/firmchain/internal/pkg/x/chflow"
)

// toBlockNumArg encodes a block number parameter. A nil number means the
// latest block.
func toBlockNumArg(number *big.Int) string {
	if number == nil {
		return "latest"
	}

	return hexutil.EncodeBig(number)
}

// getLatestBlockNumber fetches the latest block number from the Ethereum node.
func (c *client) getLatestBlockNumber(ctx context.Context) (hexutil.Uint64, error) {
	data, err := c.conn.Fetch(ctx, "eth_blockNumber")
	if err != nil {
		return 0, err
	}

	var blockNumber hexutil.Uint64
	if err := json.Unmarshal(data, &blockNumber); err != nil {
		return 0, err
	}

	return blockNumber, nil
}

// BlockNumber implements firm.Source.
func (c *client) BlockNumber(ctx context.Context) (uint64, error) {
	blockNumber, err := c.getLatestBlockNumber(ctx)
	if err != nil {
		return 0, err
	}

	return uint64(blockNumber), nil
}

// pollNewHead fetches the latest block number and, when it moved past
// lastBlockNumber, sends a header for it on ch.
//
// Returns the block number to compare against on the next iteration.
func (c *client) pollNewHead(ctx context.Context, lastBlockNumber uint64, ch chan<- *types.Header) (uint64, error) {
	latestBlockNumber, err := c.BlockNumber(ctx)
	if err != nil {
		return lastBlockNumber, err
	}

	if latestBlockNumber <= lastBlockNumber {
		return lastBlockNumber, nil
	}

	header := &types.Header{Number: new(big.Int).SetUint64(latestBlockNumber)}
	if ok := chflow.Send(ctx, ch, header); !ok {
		return lastBlockNumber, nil
	}

	return latestBlockNumber, nil
}

// SubscribeNewHead implements firm.Source by polling eth_blockNumber every
// poll interval. Only the newest head is sent when several blocks were mined
// between two polls. The first poll error ends the subscription and is
// reported on its Err channel.
func (c *client) SubscribeNewHead(ctx context.Context, ch chan<- *types.Header) (ethereum.Subscription, error) {
	lastBlockNumber, err := c.BlockNumber(ctx)
	if err != nil {
		return nil, err
	}

	return event.NewSubscription(func(quit <-chan struct{}) error {
		ctx, cancel := context.WithCancel(ctx)
		defer cancel()

		go func() {
			select {
			case <-quit:
				cancel()
			case <-ctx.Done():
			}
		}()

		for {
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(c.pollInterval):
				var err error
				if lastBlockNumber, err = c.pollNewHead(ctx, lastBlockNumber, ch); err != nil && ctx.Err() == nil {
					return err
				}
			}
		}
	}), nil
}
