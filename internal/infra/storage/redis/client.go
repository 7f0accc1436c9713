// Package redis stores watch checkpoints in Redis.
package redis

import (
	"context"

	redis "github.com/redis/go-redis/v9"
)

type client struct {
	conn *redis.Client
}

// Close closes the underlying connection pool.
func (c *client) Close() error {
	return c.conn.Close()
}

// NewClient connects to Redis at addr and verifies the connection with PING.
func NewClient(ctx context.Context, addr, username, password string, db int) (*client, error) {
	conn := redis.NewClient(&redis.Options{
		Addr:     addr,
		Username: username,
		Password: password,
		DB:       db,
	})

	if err := conn.Ping(ctx).Err(); err != nil {
		_ = conn.Close()
		return nil, err
	}

	return &client{
		conn: conn,
	}, nil
}
