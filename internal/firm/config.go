package firm

import (
	"time"

	"github.com/gabapcia/firmchain/internal/pkg/validator"
)

// Certainty presets, in blocks.
const (
	CertaintyLow    uint64 = 2
	CertaintyMedium uint64 = 4
	CertaintyHigh   uint64 = 12
)

const (
	defaultRetryLimit uint = 16
	defaultRetryDelay      = 2 * time.Second
)

// Config controls how long a value has to be stable before it is returned.
// A Config is a value: deriving a new one never changes the original.
type Config struct {
	// Certainty is the confirmation depth in blocks.
	Certainty uint64

	// RetryLimit is the maximum number of attempts per call.
	RetryLimit uint `validate:"min=1"`

	// RetryDelay is the wait between attempts.
	RetryDelay time.Duration
}

// DefaultConfig returns medium certainty, 16 attempts and a 2s delay.
func DefaultConfig() Config {
	return Config{
		Certainty:  CertaintyMedium,
		RetryLimit: defaultRetryLimit,
		RetryDelay: defaultRetryDelay,
	}
}

// WithCertainty returns a copy of c with Certainty replaced.
func (c Config) WithCertainty(certainty uint64) Config {
	c.Certainty = certainty
	return c
}

// Validate reports an ErrUsage-wrapped error for configurations that cannot
// drive a retry session.
func (c Config) Validate() error {
	if err := validator.Validate(c); err != nil {
		return usageError("invalid configuration: %v", err)
	}

	return nil
}
