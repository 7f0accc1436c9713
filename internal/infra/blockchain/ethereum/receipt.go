package ethereum

import (
	"bytes"
	"context"
	"encoding/json"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// isNull reports whether a JSON-RPC result is absent.
func isNull(data json.RawMessage) bool {
	return len(data) == 0 || bytes.Equal(data, []byte("null"))
}

// TransactionReceipt implements firm.Source using eth_getTransactionReceipt.
// A null result, returned for pending or unknown transactions, is reported
// as ethereum.NotFound.
func (c *client) TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error) {
	data, err := c.conn.Fetch(ctx, "eth_getTransactionReceipt", txHash)
	if err != nil {
		return nil, err
	}

	if isNull(data) {
		return nil, ethereum.NotFound
	}

	var receipt types.Receipt
	if err := json.Unmarshal(data, &receipt); err != nil {
		return nil, err
	}

	return &receipt, nil
}
