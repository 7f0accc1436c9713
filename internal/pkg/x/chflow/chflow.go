// Package chflow holds channel helpers that honor context cancellation.
package chflow

import "context"

// Send delivers data on ch unless ctx is done first. It reports whether the
// value was sent.
func Send[T any](ctx context.Context, ch chan<- T, data T) bool {
	if ctx.Err() != nil {
		return false
	}

	select {
	case <-ctx.Done():
		return false
	case ch <- data:
		return true
	}
}
