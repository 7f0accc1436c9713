// Package main is the entry point of the firm CLI.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/gabapcia/firmchain/internal/firm"
	"github.com/gabapcia/firmchain/internal/handlers/cli"
	"github.com/gabapcia/firmchain/internal/infra/blockchain/ethclient"
	"github.com/gabapcia/firmchain/internal/infra/blockchain/ethereum"
	"github.com/gabapcia/firmchain/internal/infra/storage/redis"
	"github.com/gabapcia/firmchain/internal/pkg/logger"
	"github.com/gabapcia/firmchain/internal/pkg/telemetry"
	"github.com/gabapcia/firmchain/internal/pkg/transport/jsonrpc"
)

const serviceName = "firm"

var version = "dev"

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if err := logger.Init(cfg.LogLevel); err != nil {
		return fmt.Errorf("failed to init logger: %w", err)
	}
	defer logger.Sync() // nolint:errcheck

	if cfg.TelemetryEnabled {
		shutdown, err := telemetry.Init(ctx, serviceName, telemetryOptions(cfg)...)
		if err != nil {
			return fmt.Errorf("failed to init telemetry: %w", err)
		}
		defer func() {
			if err := shutdown(context.WithoutCancel(ctx)); err != nil {
				logger.Error(ctx, "failed to shutdown telemetry", "error", err)
			}
		}()
	}

	source, err := newSource(ctx, cfg)
	if err != nil {
		return err
	}
	defer source.Close()

	opts := []firm.Option{firm.WithConfig(cfg.firmConfig())}
	if cfg.RedisAddr != "" {
		storage, err := redis.NewClient(ctx, cfg.RedisAddr, cfg.RedisUsername, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			return fmt.Errorf("failed to connect to redis: %w", err)
		}
		defer storage.Close() // nolint:errcheck

		opts = append(opts, firm.WithCheckpointStorage(storage))
	}

	client, err := firm.New(source, opts...)
	if err != nil {
		return err
	}

	return cli.Run(ctx, client)
}

func telemetryOptions(cfg config) []telemetry.Option {
	opts := []telemetry.Option{telemetry.WithServiceVersion(version)}
	if cfg.TelemetryEndpoint != "" {
		opts = append(opts, telemetry.WithEndpoint(cfg.TelemetryEndpoint))
	}
	if cfg.TelemetryInsecure {
		opts = append(opts, telemetry.WithInsecure())
	}

	return opts
}

// closableSource is a firm.Source holding a connection.
type closableSource interface {
	firm.Source
	Close()
}

// newSource connects to the node at cfg.RPCURL. Websocket endpoints use
// go-ethereum's client and push new heads. HTTP endpoints use the polling
// JSON-RPC source. Both are guarded by a circuit breaker.
func newSource(ctx context.Context, cfg config) (closableSource, error) {
	if cfg.usesWebsocket() {
		c, err := ethclient.Dial(ctx, cfg.RPCURL, ethclient.WithName(serviceName))
		if err != nil {
			return nil, fmt.Errorf("failed to dial node: %w", err)
		}

		return c, nil
	}

	conn := jsonrpc.NewClient(cfg.RPCURL, jsonrpc.WithRateLimit(cfg.RateLimit, cfg.RateBurst))
	source := ethereum.NewClient(conn, ethereum.WithPollInterval(cfg.PollInterval))

	return ethclient.New(source, ethclient.WithName(serviceName)), nil
}
