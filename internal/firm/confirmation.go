package firm

import (
	"errors"
	"fmt"
)

// ErrNotConfirmable is returned by ConfirmedBlock while the chain is shorter
// than the requested certainty.
var ErrNotConfirmable = errors.New("chain head is below the certainty depth")

// ConfirmedBlock returns the block that lies certainty blocks behind head.
func ConfirmedBlock(head, certainty uint64) (uint64, error) {
	if certainty > head {
		return 0, fmt.Errorf("%w: head %d, certainty %d", ErrNotConfirmable, head, certainty)
	}

	return head - certainty, nil
}
