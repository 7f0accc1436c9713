// Package ethereum implements firm.Source for Ethereum-compatible nodes on top
// of the plain HTTP JSON-RPC client. Nodes reachable only over HTTP cannot
// push new heads, so SubscribeNewHead polls eth_blockNumber instead.
package ethereum

import (
	"time"

	"github.com/gabapcia/firmchain/internal/firm"
	"github.com/gabapcia/firmchain/internal/pkg/transport/jsonrpc"
)

// averageBlockTime is the expected time between blocks on Ethereum mainnet.
const averageBlockTime = 12 * time.Second

// client implements firm.Source over a JSON-RPC connection.
type client struct {
	conn         jsonrpc.Client // Underlying JSON-RPC client used to interact with the Ethereum node
	pollInterval time.Duration  // Wait between two eth_blockNumber polls of a head subscription
}

// Ensure client implements the firm.Source interface at compile time.
var _ firm.Source = (*client)(nil)

// Option customizes the client built by NewClient.
type Option func(*client)

// WithPollInterval sets how often head subscriptions poll for a new block.
//
// Default: 12 seconds.
func WithPollInterval(d time.Duration) Option {
	return func(c *client) {
		if d > 0 {
			c.pollInterval = d
		}
	}
}

// NewClient creates a new Ethereum source using the provided JSON-RPC connection.
func NewClient(conn jsonrpc.Client, opts ...Option) *client {
	c := &client{
		conn:         conn,
		pollInterval: averageBlockTime,
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}
