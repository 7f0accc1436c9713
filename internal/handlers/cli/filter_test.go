package cli

import (
	"context"
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/event"

	firmtest "github.com/gabapcia/firmchain/internal/firm/mocks"
	"github.com/gabapcia/firmchain/internal/pkg/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const transferTopic = "0xddf252ad1be2c89b69c2b068fc378daa952ba7f163c4a11628f55a4df523b3ef"

// blockingSubscription never fails and ends when unsubscribed.
func blockingSubscription() ethereum.Subscription {
	return event.NewSubscription(func(quit <-chan struct{}) error {
		<-quit
		return nil
	})
}

func TestBuildFilter(t *testing.T) {
	t.Run("should reject an invalid address", func(t *testing.T) {
		app, _ := newTestApp(t, firmtest.NewSource(t))

		err := app.Run(t.Context(), []string{"firm", "logs", "--address", "0x12"})

		assert.ErrorIs(t, err, validator.ErrValidationFailed)
	})

	t.Run("should reject an invalid topic", func(t *testing.T) {
		app, _ := newTestApp(t, firmtest.NewSource(t))

		err := app.Run(t.Context(), []string{"firm", "logs", "--topic", "Transfer"})

		assert.ErrorIs(t, err, validator.ErrValidationFailed)
	})
}

func TestGetLogsCommand(t *testing.T) {
	t.Run("should print the logs of the confirmed block", func(t *testing.T) {
		source := firmtest.NewSource(t)
		log := types.Log{
			Address:     common.HexToAddress(contractAddress),
			Topics:      []common.Hash{common.HexToHash(transferTopic)},
			Data:        []byte{},
			BlockNumber: 96,
		}

		source.EXPECT().BlockNumber(mock.Anything).Return(uint64(100), nil).Once()
		source.EXPECT().FilterLogs(mock.Anything, mock.Anything).
			RunAndReturn(func(_ context.Context, q ethereum.FilterQuery) ([]types.Log, error) {
				assert.Equal(t, big.NewInt(96), q.FromBlock)
				assert.Equal(t, big.NewInt(96), q.ToBlock)
				assert.Equal(t, []common.Address{common.HexToAddress(contractAddress)}, q.Addresses)
				assert.Equal(t, [][]common.Hash{{common.HexToHash(transferTopic)}}, q.Topics)
				return []types.Log{log}, nil
			}).Once()

		app, out := newTestApp(t, source)
		err := app.Run(t.Context(), []string{"firm", "logs", "--address", contractAddress, "--topic", transferTopic})

		require.NoError(t, err)
		assert.Contains(t, out.String(), `"blockNumber":"0x60"`)
	})

	t.Run("should print nothing while the chain is too short", func(t *testing.T) {
		source := firmtest.NewSource(t)

		source.EXPECT().BlockNumber(mock.Anything).Return(uint64(2), nil).Once()

		app, out := newTestApp(t, source)
		err := app.Run(t.Context(), []string{"firm", "logs"})

		require.NoError(t, err)
		assert.Empty(t, out.String())
	})

	t.Run("should return source errors", func(t *testing.T) {
		source := firmtest.NewSource(t)

		source.EXPECT().BlockNumber(mock.Anything).Return(uint64(0), assert.AnError).Once()

		app, _ := newTestApp(t, source)
		err := app.Run(t.Context(), []string{"firm", "logs"})

		assert.ErrorIs(t, err, assert.AnError)
	})
}

func TestWatchLogsCommand(t *testing.T) {
	t.Run("should stream confirmed logs until the context is done", func(t *testing.T) {
		source := firmtest.NewSource(t)
		log := types.Log{Address: common.HexToAddress(contractAddress), Topics: []common.Hash{}, Data: []byte{}, BlockNumber: 96}

		source.EXPECT().SubscribeNewHead(mock.Anything, mock.Anything).
			RunAndReturn(func(_ context.Context, ch chan<- *types.Header) (ethereum.Subscription, error) {
				ch <- &types.Header{Number: big.NewInt(100)}
				return blockingSubscription(), nil
			}).Once()
		source.EXPECT().BlockNumber(mock.Anything).Return(uint64(100), nil).Once()
		source.EXPECT().FilterLogs(mock.Anything, mock.Anything).Return([]types.Log{log}, nil).Once()

		app, out := newTestApp(t, source)
		ctx, cancel := context.WithCancel(t.Context())
		defer cancel()

		done := make(chan error, 1)
		go func() {
			done <- app.Run(ctx, []string{"firm", "watch", "--address", contractAddress})
		}()

		assert.Eventually(t, func() bool {
			return len(out.String()) > 0
		}, time.Second, 5*time.Millisecond)

		cancel()

		select {
		case err := <-done:
			assert.NoError(t, err)
		case <-time.After(time.Second):
			t.Fatal("watch command did not return after cancel")
		}

		assert.Contains(t, out.String(), `"blockNumber":"0x60"`)
	})

	t.Run("should return the initial subscription error", func(t *testing.T) {
		source := firmtest.NewSource(t)

		source.EXPECT().SubscribeNewHead(mock.Anything, mock.Anything).Return(nil, assert.AnError).Once()

		app, _ := newTestApp(t, source)
		err := app.Run(t.Context(), []string{"firm", "watch", "--checkpoint-key", "transfers"})

		assert.ErrorIs(t, err, assert.AnError)
	})
}
