package firm

import (
	"context"
	"errors"
)

// ErrNoCheckpointFound is returned by LoadLatestCheckpoint when nothing has
// been delivered yet for the requested key.
var ErrNoCheckpointFound = errors.New("no checkpoint found for filter")

// CheckpointStorage persists the last confirmed block whose logs were
// delivered by a watched filter, so a restarted watcher does not deliver the
// same block twice.
type CheckpointStorage interface {
	// SaveCheckpoint records block as the latest delivered block for key,
	// overwriting any previous value.
	SaveCheckpoint(ctx context.Context, key string, block uint64) error

	// LoadLatestCheckpoint returns the latest delivered block for key, or
	// ErrNoCheckpointFound.
	LoadLatestCheckpoint(ctx context.Context, key string) (uint64, error)
}

// nopCheckpoint never stores anything, so every confirmed block is delivered.
type nopCheckpoint struct{}

var _ CheckpointStorage = nopCheckpoint{}

func (nopCheckpoint) SaveCheckpoint(context.Context, string, uint64) error {
	return nil
}

func (nopCheckpoint) LoadLatestCheckpoint(context.Context, string) (uint64, error) {
	return 0, ErrNoCheckpointFound
}
