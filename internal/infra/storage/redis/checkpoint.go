package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/redis/go-redis/v9"

	"github.com/gabapcia/firmchain/internal/firm"
)

// checkpointKeyPrefix is the namespace prefix for all watch checkpoint keys.
const checkpointKeyPrefix = "firm"

// checkpointKey constructs the Redis key used to store the latest delivered
// confirmed block of a watched filter. The format is:
//
//	"firm:checkpoint:<key>"
func checkpointKey(key string) string {
	return fmt.Sprintf("%s:checkpoint:%s", checkpointKeyPrefix, key)
}

// SaveCheckpoint persists the latest confirmed block delivered for key,
// hex-encoded and with no expiration.
func (c *client) SaveCheckpoint(ctx context.Context, key string, block uint64) error {
	return c.conn.Set(ctx, checkpointKey(key), hexutil.EncodeUint64(block), 0).Err()
}

// LoadLatestCheckpoint retrieves the latest confirmed block saved for key.
//
// If no checkpoint exists yet, it returns firm.ErrNoCheckpointFound.
func (c *client) LoadLatestCheckpoint(ctx context.Context, key string) (uint64, error) {
	val, err := c.conn.Get(ctx, checkpointKey(key)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			err = firm.ErrNoCheckpointFound
		}

		return 0, err
	}

	return parseCheckpoint(key, val)
}

// parseCheckpoint decodes a stored checkpoint value.
func parseCheckpoint(key, val string) (uint64, error) {
	block, err := hexutil.DecodeUint64(val)
	if err != nil {
		return 0, fmt.Errorf("corrupted checkpoint %q: %w", key, err)
	}

	return block, nil
}

// Compile-time assertion to ensure client implements the CheckpointStorage interface.
var _ firm.CheckpointStorage = new(client)
