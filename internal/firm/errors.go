package firm

import (
	"errors"
	"fmt"
)

// ErrUsage reports a call that was rejected before touching the chain:
// a missing argument, a nil handler or an unsupported filter bound.
// Usage errors are never retried and never reach progress observers.
var ErrUsage = errors.New("invalid usage")

func usageError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrUsage, fmt.Sprintf(format, args...))
}
