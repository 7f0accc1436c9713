// Package firm wraps an Ethereum chain source with confirmation certainty.
//
// Every read offered here is only returned once the value has been observed
// both at the chain head and at a block Certainty confirmations behind it.
// Until then the read is polled again after RetryDelay, at most RetryLimit
// times, after which a retry.ExhaustedError is returned.
package firm

import (
	"context"
	"errors"
	"time"

	"github.com/gabapcia/firmchain/internal/pkg/logger"
	"github.com/gabapcia/firmchain/internal/pkg/resilience/retry"
)

// Client performs confirmed reads against a Source.
// A Client is safe for concurrent use; its configuration never changes after
// New returns.
type Client struct {
	source      Source
	cfg         Config
	checkpoints CheckpointStorage
	metrics     *metrics
}

type config struct {
	cfg         Config
	checkpoints CheckpointStorage
}

// Option customizes a Client built by New.
type Option func(*config)

// New wraps source in a Client. It returns an ErrUsage error when source is
// nil or when the resulting configuration is invalid.
func New(source Source, opts ...Option) (*Client, error) {
	if source == nil {
		return nil, usageError("a chain source is required")
	}

	c := config{
		cfg:         DefaultConfig(),
		checkpoints: nopCheckpoint{},
	}
	for _, opt := range opts {
		opt(&c)
	}

	if err := c.cfg.Validate(); err != nil {
		return nil, err
	}

	return &Client{
		source:      source,
		cfg:         c.cfg,
		checkpoints: c.checkpoints,
		metrics:     newMetrics(),
	}, nil
}

// WithConfig replaces the whole configuration.
func WithConfig(cfg Config) Option {
	return func(c *config) {
		c.cfg = cfg
	}
}

// WithCertainty sets the confirmation depth.
//
// Default: CertaintyMedium.
func WithCertainty(certainty uint64) Option {
	return func(c *config) {
		c.cfg.Certainty = certainty
	}
}

// WithRetryLimit sets the maximum number of attempts per call.
//
// Default: 16.
func WithRetryLimit(limit uint) Option {
	return func(c *config) {
		c.cfg.RetryLimit = limit
	}
}

// WithRetryDelay sets the wait between attempts.
//
// Default: 2 seconds.
func WithRetryDelay(d time.Duration) Option {
	return func(c *config) {
		c.cfg.RetryDelay = d
	}
}

// WithCheckpointStorage sets the storage used by filters watched with a
// checkpoint key. Without it, checkpoint keys are ignored.
func WithCheckpointStorage(cs CheckpointStorage) Option {
	return func(c *config) {
		if cs != nil {
			c.checkpoints = cs
		}
	}
}

// Source returns the wrapped chain source.
func (c *Client) Source() Source {
	return c.source
}

// Config returns the client configuration.
func (c *Client) Config() Config {
	return c.cfg
}

// WithCertainty returns a new Client sharing the same source with a different
// confirmation depth. c is left untouched.
func (c *Client) WithCertainty(certainty uint64) *Client {
	clone := *c
	clone.cfg = c.cfg.WithCertainty(certainty)
	return &clone
}

// confirmedBlock reads the head and returns the block Certainty behind it.
func (c *Client) confirmedBlock(ctx context.Context) (uint64, error) {
	head, err := c.source.BlockNumber(ctx)
	if err != nil {
		return 0, err
	}

	return ConfirmedBlock(head, c.cfg.Certainty)
}

// newRetry builds the retry session for a single call.
func (c *Client) newRetry(ctx context.Context, operation string) retry.Retry {
	return retry.New(
		retry.WithAttempts(c.cfg.RetryLimit),
		retry.WithDelay(c.cfg.RetryDelay),
		retry.WithOnRetry(func(attempt uint, err error) {
			c.metrics.recordRetry(ctx, operation)
			logger.Debug(ctx, "value not confirmed yet",
				"firm.operation", operation,
				"firm.attempt", attempt+1,
				"firm.certainty", c.cfg.Certainty,
				"error", err,
			)
		}),
	)
}

// execute runs body under a fresh retry session and reports the outcome to
// the progress observer in o. Usage errors are returned but never reported.
func (c *Client) execute(ctx context.Context, operation string, o callOptions, body func() error) error {
	err := c.newRetry(ctx, operation).Execute(ctx, body)
	if err == nil || errors.Is(err, ErrUsage) {
		return err
	}

	if errors.Is(err, retry.ErrRetriesExhausted) {
		c.metrics.recordExhausted(ctx, operation)
	}

	logger.Warn(ctx, "confirmed read failed",
		"firm.operation", operation,
		"error", err,
	)

	o.report(ctx, err)
	return err
}
