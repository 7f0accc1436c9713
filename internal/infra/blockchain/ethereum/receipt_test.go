package ethereum

import (
	"encoding/json"
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	gethtypes "github.com/ethereum/go-ethereum/core/types"
	jsonrpctest "github.com/gabapcia/firmchain/internal/pkg/transport/jsonrpc/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testTxHash = common.HexToHash("0x01")

func TestIsNull(t *testing.T) {
	assert.True(t, isNull(nil))
	assert.True(t, isNull(json.RawMessage("null")))
	assert.False(t, isNull(json.RawMessage(`{}`)))
}

func TestClient_TransactionReceipt(t *testing.T) {
	t.Run("decodes a mined receipt", func(t *testing.T) {
		want := &gethtypes.Receipt{
			Status:            gethtypes.ReceiptStatusSuccessful,
			CumulativeGasUsed: 21000,
			GasUsed:           21000,
			Logs:              []*gethtypes.Log{},
			TxHash:            testTxHash,
			BlockNumber:       big.NewInt(96),
		}
		raw, err := json.Marshal(want)
		require.NoError(t, err)

		mockClient := jsonrpctest.NewClient(t)
		mockClient.EXPECT().Fetch(mock.Anything, "eth_getTransactionReceipt", testTxHash).
			Return(json.RawMessage(raw), nil).Once()

		got, err := NewClient(mockClient).TransactionReceipt(t.Context(), testTxHash)
		require.NoError(t, err)
		assert.Equal(t, testTxHash, got.TxHash)
		assert.Equal(t, int64(96), got.BlockNumber.Int64())
		assert.Equal(t, gethtypes.ReceiptStatusSuccessful, got.Status)
	})

	t.Run("null result is not found", func(t *testing.T) {
		mockClient := jsonrpctest.NewClient(t)
		mockClient.EXPECT().Fetch(mock.Anything, "eth_getTransactionReceipt", testTxHash).
			Return(json.RawMessage("null"), nil).Once()

		got, err := NewClient(mockClient).TransactionReceipt(t.Context(), testTxHash)
		assert.ErrorIs(t, err, ethereum.NotFound)
		assert.Nil(t, got)
	})

	t.Run("fetch error", func(t *testing.T) {
		mockClient := jsonrpctest.NewClient(t)
		mockClient.EXPECT().Fetch(mock.Anything, "eth_getTransactionReceipt", testTxHash).
			Return(nil, errors.New("fetch error")).Once()

		_, err := NewClient(mockClient).TransactionReceipt(t.Context(), testTxHash)
		assert.EqualError(t, err, "fetch error")
	})

	t.Run("malformed receipt", func(t *testing.T) {
		mockClient := jsonrpctest.NewClient(t)
		mockClient.EXPECT().Fetch(mock.Anything, "eth_getTransactionReceipt", testTxHash).
			Return(json.RawMessage(`{"status":"0x1"}`), nil).Once()

		_, err := NewClient(mockClient).TransactionReceipt(t.Context(), testTxHash)
		assert.Error(t, err)
	})
}
