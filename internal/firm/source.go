package firm

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// Source is the chain data source every confirmed read is built on.
// *ethclient.Client satisfies it, as do the adapters under infra/blockchain.
type Source interface {
	// BlockNumber returns the number of the current chain head.
	BlockNumber(ctx context.Context) (uint64, error)

	// CodeAt returns the contract code of account at blockNumber.
	// A nil blockNumber means the latest block.
	CodeAt(ctx context.Context, account common.Address, blockNumber *big.Int) ([]byte, error)

	// TransactionReceipt returns the receipt of a mined transaction.
	// It returns ethereum.NotFound when the transaction is not mined yet.
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)

	// FilterLogs executes a log query.
	FilterLogs(ctx context.Context, q ethereum.FilterQuery) ([]types.Log, error)

	// SubscribeNewHead delivers a header on ch for every new chain head until
	// the returned subscription is unsubscribed or fails.
	SubscribeNewHead(ctx context.Context, ch chan<- *types.Header) (ethereum.Subscription, error)

	// CallContract executes a message call at blockNumber (nil for latest).
	CallContract(ctx context.Context, call ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
}
