// Package ethclient adapts go-ethereum's ethclient to firm.Source. Every call
// goes through a circuit breaker and is traced and counted with OpenTelemetry.
// Use it for WebSocket endpoints, where new heads are pushed by the node.
package ethclient

import (
	"context"
	"errors"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	gethclient "github.com/ethereum/go-ethereum/ethclient"
	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/gabapcia/firmchain/internal/firm"
	"github.com/gabapcia/firmchain/internal/pkg/logger"
)

const instrumentationName = "github.com/gabapcia/firmchain/internal/infra/blockchain/ethclient"

// client implements firm.Source on top of another Source, usually an
// *ethclient.Client.
type client struct {
	backend firm.Source
	breaker *gobreaker.CircuitBreaker[any]

	tracer   trace.Tracer
	calls    metric.Int64Counter
	failures metric.Int64Counter
}

var _ firm.Source = (*client)(nil)

type config struct {
	name        string
	maxFailures uint32
	openTimeout time.Duration
}

// Option customizes the circuit breaker.
type Option func(*config)

// WithName sets the breaker name reported in logs.
//
// Default: "ethereum".
func WithName(name string) Option {
	return func(c *config) {
		c.name = name
	}
}

// WithMaxFailures sets how many consecutive failed calls open the breaker.
//
// Default: 5.
func WithMaxFailures(n uint32) Option {
	return func(c *config) {
		if n > 0 {
			c.maxFailures = n
		}
	}
}

// WithOpenTimeout sets how long the breaker stays open before letting a
// trial call through.
//
// Default: 30 seconds.
func WithOpenTimeout(d time.Duration) Option {
	return func(c *config) {
		c.openTimeout = d
	}
}

// isSuccessful reports whether err should not count against the breaker:
// absent values and cancelled calls say nothing about the node's health.
func isSuccessful(err error) bool {
	return err == nil ||
		errors.Is(err, ethereum.NotFound) ||
		errors.Is(err, context.Canceled)
}

// New wraps backend with a circuit breaker and telemetry.
func New(backend firm.Source, opts ...Option) *client {
	cfg := config{
		name:        "ethereum",
		maxFailures: 5,
		openTimeout: 30 * time.Second,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	breaker := gobreaker.NewCircuitBreaker[any](gobreaker.Settings{
		Name:    cfg.name,
		Timeout: cfg.openTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.maxFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn(context.Background(), "circuit breaker state change",
				"breaker", name,
				"from", from.String(),
				"to", to.String(),
			)
		},
		IsSuccessful: isSuccessful,
	})

	meter := otel.Meter(instrumentationName)
	calls, _ := meter.Int64Counter("ethclient.calls", metric.WithDescription("RPC calls issued to the node."))
	failures, _ := meter.Int64Counter("ethclient.failures", metric.WithDescription("RPC calls that failed or were rejected by the breaker."))

	return &client{
		backend:  backend,
		breaker:  breaker,
		tracer:   otel.Tracer(instrumentationName),
		calls:    calls,
		failures: failures,
	}
}

// Dial connects to rawURL (http, https, ws or wss) and wraps the connection.
func Dial(ctx context.Context, rawURL string, opts ...Option) (*client, error) {
	ec, err := gethclient.DialContext(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	return New(ec, opts...), nil
}

// Close releases the backend connection when it holds one.
func (c *client) Close() {
	if closer, ok := c.backend.(interface{ Close() }); ok {
		closer.Close()
	}
}

// State returns the breaker state.
func (c *client) State() gobreaker.State {
	return c.breaker.State()
}

// call runs fn through the breaker inside a client span.
func call[T any](ctx context.Context, c *client, method string, fn func(ctx context.Context) (T, error)) (T, error) {
	ctx, span := c.tracer.Start(ctx, "eth."+method, trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()

	attrs := metric.WithAttributes(attribute.String("method", method))
	if c.calls != nil {
		c.calls.Add(ctx, 1, attrs)
	}

	res, err := c.breaker.Execute(func() (any, error) {
		return fn(ctx)
	})
	if err != nil {
		if !isSuccessful(err) {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			if c.failures != nil {
				c.failures.Add(ctx, 1, attrs)
			}
		}

		var zero T
		return zero, err
	}

	v, _ := res.(T)
	return v, nil
}

func (c *client) BlockNumber(ctx context.Context) (uint64, error) {
	return call(ctx, c, "block_number", c.backend.BlockNumber)
}

func (c *client) CodeAt(ctx context.Context, account common.Address, blockNumber *big.Int) ([]byte, error) {
	return call(ctx, c, "get_code", func(ctx context.Context) ([]byte, error) {
		return c.backend.CodeAt(ctx, account, blockNumber)
	})
}

func (c *client) TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error) {
	return call(ctx, c, "get_transaction_receipt", func(ctx context.Context) (*types.Receipt, error) {
		return c.backend.TransactionReceipt(ctx, txHash)
	})
}

func (c *client) FilterLogs(ctx context.Context, q ethereum.FilterQuery) ([]types.Log, error) {
	return call(ctx, c, "get_logs", func(ctx context.Context) ([]types.Log, error) {
		return c.backend.FilterLogs(ctx, q)
	})
}

func (c *client) SubscribeNewHead(ctx context.Context, ch chan<- *types.Header) (ethereum.Subscription, error) {
	return call(ctx, c, "subscribe_new_head", func(ctx context.Context) (ethereum.Subscription, error) {
		return c.backend.SubscribeNewHead(ctx, ch)
	})
}

func (c *client) CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error) {
	return call(ctx, c, "call", func(ctx context.Context) ([]byte, error) {
		return c.backend.CallContract(ctx, msg, blockNumber)
	})
}
