package ethereum

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/core/types"
)

// ErrBlockHashWithRange is returned when a log query sets both a block hash
// and a block range.
var ErrBlockHashWithRange = errors.New("cannot specify both BlockHash and FromBlock/ToBlock")

// toFilterArg encodes q as an eth_getLogs filter object.
func toFilterArg(q ethereum.FilterQuery) (map[string]any, error) {
	arg := map[string]any{
		"address": q.Addresses,
		"topics":  q.Topics,
	}

	if q.BlockHash != nil {
		if q.FromBlock != nil || q.ToBlock != nil {
			return nil, ErrBlockHashWithRange
		}

		arg["blockHash"] = *q.BlockHash
		return arg, nil
	}

	if q.FromBlock == nil {
		arg["fromBlock"] = "0x0"
	} else {
		arg["fromBlock"] = toBlockNumArg(q.FromBlock)
	}
	arg["toBlock"] = toBlockNumArg(q.ToBlock)

	return arg, nil
}

// FilterLogs implements firm.Source using eth_getLogs.
func (c *client) FilterLogs(ctx context.Context, q ethereum.FilterQuery) ([]types.Log, error) {
	arg, err := toFilterArg(q)
	if err != nil {
		return nil, err
	}

	data, err := c.conn.Fetch(ctx, "eth_getLogs", arg)
	if err != nil {
		return nil, err
	}

	var logs []types.Log
	if err := json.Unmarshal(data, &logs); err != nil {
		return nil, err
	}

	return logs, nil
}
