package ethereum

import (
	"context"
	"encoding/json"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// CodeAt implements firm.Source using eth_getCode.
func (c *client) CodeAt(ctx context.Context, account common.Address, blockNumber *big.Int) ([]byte, error) {
	data, err := c.conn.Fetch(ctx, "eth_getCode", account, toBlockNumArg(blockNumber))
	if err != nil {
		return nil, err
	}

	var code hexutil.Bytes
	if err := json.Unmarshal(data, &code); err != nil {
		return nil, err
	}

	return code, nil
}

// toCallArg encodes msg as an eth_call transaction object.
func toCallArg(msg ethereum.CallMsg) map[string]any {
	arg := map[string]any{
		"from": msg.From,
		"to":   msg.To,
	}
	if len(msg.Data) > 0 {
		arg["input"] = hexutil.Bytes(msg.Data)
	}
	if msg.Value != nil {
		arg["value"] = (*hexutil.Big)(msg.Value)
	}
	if msg.Gas != 0 {
		arg["gas"] = hexutil.Uint64(msg.Gas)
	}
	if msg.GasPrice != nil {
		arg["gasPrice"] = (*hexutil.Big)(msg.GasPrice)
	}

	return arg
}

// CallContract implements firm.Source using eth_call.
func (c *client) CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error) {
	data, err := c.conn.Fetch(ctx, "eth_call", toCallArg(msg), toBlockNumArg(blockNumber))
	if err != nil {
		return nil, err
	}

	var output hexutil.Bytes
	if err := json.Unmarshal(data, &output); err != nil {
		return nil, err
	}

	return output, nil
}
