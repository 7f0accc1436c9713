package firm

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"github.com/gabapcia/firmchain/internal/pkg/resilience/retry"
)

// ProgressFunc observes terminal failures of a confirmed read or watch:
// transport errors, subscription errors and retry exhaustion.
type ProgressFunc func(ctx context.Context, err error)

type callOptions struct {
	progress ProgressFunc
}

func (o callOptions) report(ctx context.Context, err error) {
	if o.progress != nil {
		o.progress(ctx, err)
	}
}

// CallOption customizes a single confirmed read or watch.
type CallOption func(*callOptions)

// WithProgress registers f to be told about failures of the call.
func WithProgress(f ProgressFunc) CallOption {
	return func(o *callOptions) {
		o.progress = f
	}
}

func buildCallOptions(opts []CallOption) callOptions {
	var o callOptions
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// GetCode returns the code deployed at address once the same bytes are seen
// at the latest block and at the confirmed block.
func (c *Client) GetCode(ctx context.Context, address common.Address, opts ...CallOption) ([]byte, error) {
	if address == (common.Address{}) {
		return nil, usageError("an address is required")
	}

	var code []byte
	err := c.execute(ctx, "get_code", buildCallOptions(opts), func() error {
		latest, err := c.source.CodeAt(ctx, address, nil)
		if err != nil {
			return fmt.Errorf("failed to read code at latest block: %w", err)
		}

		if len(latest) == 0 {
			return retry.ErrRetry
		}

		block, err := c.confirmedBlock(ctx)
		if errors.Is(err, ErrNotConfirmable) {
			return retry.ErrRetry
		}
		if err != nil {
			return fmt.Errorf("failed to read chain head: %w", err)
		}

		confirmed, err := c.source.CodeAt(ctx, address, new(big.Int).SetUint64(block))
		if err != nil {
			return fmt.Errorf("failed to read code at block %d: %w", block, err)
		}

		if !bytes.Equal(latest, confirmed) {
			return retry.ErrRetry
		}

		code = latest
		return nil
	})
	if err != nil {
		return nil, err
	}

	return code, nil
}

// GetTransactionReceipt returns the receipt of hash once the block that
// included it is at or below the confirmed block.
func (c *Client) GetTransactionReceipt(ctx context.Context, hash common.Hash, opts ...CallOption) (*types.Receipt, error) {
	if hash == (common.Hash{}) {
		return nil, usageError("a transaction hash is required")
	}

	var receipt *types.Receipt
	err := c.execute(ctx, "get_transaction_receipt", buildCallOptions(opts), func() error {
		r, err := c.source.TransactionReceipt(ctx, hash)
		if errors.Is(err, ethereum.NotFound) {
			return retry.ErrRetry
		}
		if err != nil {
			return fmt.Errorf("failed to read receipt: %w", err)
		}

		if r == nil || r.BlockNumber == nil {
			return retry.ErrRetry
		}

		block, err := c.confirmedBlock(ctx)
		if errors.Is(err, ErrNotConfirmable) {
			return retry.ErrRetry
		}
		if err != nil {
			return fmt.Errorf("failed to read chain head: %w", err)
		}

		if !r.BlockNumber.IsUint64() || r.BlockNumber.Uint64() > block {
			return retry.ErrRetry
		}

		receipt = r
		return nil
	})
	if err != nil {
		return nil, err
	}

	return receipt, nil
}
