// Package retry provides a bounded retry scheduler for operations that must be
// re-attempted until a value settles. It wraps the retry-go package from Avast
// and exposes a small interface with functional options.
//
// Unlike a plain error-retrying helper, the scheduler distinguishes between
// two outcomes of a failed attempt:
//
//   - the operation returns ErrRetry (the retry continuation): the scheduler
//     waits the configured delay and runs the operation again;
//   - the operation returns any other error: the error is terminal and is
//     returned unchanged, without consuming further attempts.
//
// When every attempt asked for a retry, Execute returns an *ExhaustedError.
//
// Basic usage:
//
//	r := retry.New(retry.WithAttempts(16), retry.WithDelay(2*time.Second))
//	err := r.Execute(ctx, func() error {
//	    v, err := fetch(ctx)
//	    if err != nil {
//	        return err // terminal
//	    }
//	    if v == nil {
//	        return retry.ErrRetry // not there yet
//	    }
//	    return nil
//	})
package retry

import (
	"context"
	"errors"
	"fmt"
	"time"

	retry "github.com/avast/retry-go/v4"
)

var (
	// ErrRetry is returned by an operation to request another attempt.
	// It is the only error the scheduler retries on.
	ErrRetry = errors.New("retry requested")

	// ErrRetriesExhausted matches every *ExhaustedError via errors.Is.
	ErrRetriesExhausted = errors.New("retries exhausted")
)

// ExhaustedError reports that the retry budget was consumed without the
// operation succeeding.
type ExhaustedError struct {
	Limit uint // configured number of attempts
}

func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("Maximal number of %d retries reached.", e.Limit)
}

// Is makes errors.Is(err, ErrRetriesExhausted) hold for any *ExhaustedError.
func (e *ExhaustedError) Is(target error) bool {
	return target == ErrRetriesExhausted
}

// Retry defines the interface for retry operations.
type Retry interface {
	// Execute runs operation until it returns nil, returns an error other than
	// ErrRetry, or the configured number of attempts is used up.
	//
	// Attempts are strictly sequential. Between attempts Execute waits the
	// configured delay; if ctx is done while waiting, the context error is
	// returned and the operation is not invoked again.
	Execute(ctx context.Context, operation func() error) error
}

// config holds internal settings for the retry scheduler.
type config struct {
	attempts uint                          // maximum number of attempts
	delay    time.Duration                 // fixed delay between attempts
	onRetry  func(attempt uint, err error) // observer invoked before each wait
}

// Option defines a functional option for configuring the retry scheduler.
// Options are applied in the order they are provided to New().
type Option func(*config)

// retrier implements the Retry interface using the retry-go package.
type retrier struct {
	cfg config
}

// Compile-time assertion that retrier implements Retry interface
var _ Retry = (*retrier)(nil)

// New creates a Retry configured with the provided options.
//
// Default configuration:
//   - attempts: 16
//   - delay:    2 seconds (fixed, no backoff)
func New(opts ...Option) Retry {
	cfg := config{
		attempts: 16,
		delay:    2 * time.Second,
		onRetry:  func(uint, error) {},
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	// retry-go treats zero attempts as "retry forever".
	if cfg.attempts == 0 {
		cfg.attempts = 1
	}

	return &retrier{
		cfg: cfg,
	}
}

func isRetryRequest(err error) bool {
	return errors.Is(err, ErrRetry)
}

// beforeWait forwards to the configured observer unless the attempt was the
// last one. retry-go reports the final failure through OnRetry as well, and
// no wait follows it.
func (r *retrier) beforeWait(attempt uint, err error) {
	if attempt+1 < r.cfg.attempts {
		r.cfg.onRetry(attempt, err)
	}
}

// Execute implements the Retry interface.
func (r *retrier) Execute(ctx context.Context, operation func() error) error {
	options := []retry.Option{
		retry.Attempts(r.cfg.attempts),
		retry.Delay(r.cfg.delay),
		retry.DelayType(retry.FixedDelay),
		retry.RetryIf(isRetryRequest),
		retry.OnRetry(r.beforeWait),
		retry.LastErrorOnly(true),
		retry.Context(ctx),
	}

	err := retry.Do(operation, options...)
	if isRetryRequest(err) {
		return &ExhaustedError{Limit: r.cfg.attempts}
	}

	return err
}

// WithAttempts sets the maximum number of attempts, including the first one.
// Values lower than 1 are treated as 1.
// Default: 16.
func WithAttempts(n uint) Option {
	return func(c *config) {
		c.attempts = n
	}
}

// WithDelay sets the fixed delay between attempts.
// Default: 2 seconds.
func WithDelay(d time.Duration) Option {
	return func(c *config) {
		c.delay = d
	}
}

// WithOnRetry registers an observer called before each wait, with the
// zero-based number of the attempt that asked for a retry. It is not called
// when the last attempt fails.
func WithOnRetry(f func(attempt uint, err error)) Option {
	return func(c *config) {
		if f != nil {
			c.onRetry = f
		}
	}
}
