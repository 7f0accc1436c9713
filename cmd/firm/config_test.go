package main

import (
	"testing"
	"time"

	"github.com/gabapcia/firmchain/internal/firm"
	"github.com/gabapcia/firmchain/internal/pkg/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("should apply defaults", func(t *testing.T) {
		t.Setenv("FIRM_RPC_URL", "http://localhost:8545")

		cfg, err := loadConfig()

		require.NoError(t, err)
		assert.Equal(t, firm.DefaultConfig(), cfg.firmConfig())
		assert.Equal(t, 12*time.Second, cfg.PollInterval)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.False(t, cfg.TelemetryEnabled)
		assert.Empty(t, cfg.RedisAddr)
	})

	t.Run("should read overrides", func(t *testing.T) {
		t.Setenv("FIRM_RPC_URL", "wss://node.example.com")
		t.Setenv("FIRM_CERTAINTY", "12")
		t.Setenv("FIRM_RETRY_LIMIT", "3")
		t.Setenv("FIRM_RETRY_DELAY", "500ms")
		t.Setenv("FIRM_REDIS_ADDR", "localhost:6379")

		cfg, err := loadConfig()

		require.NoError(t, err)
		assert.Equal(t, firm.Config{Certainty: firm.CertaintyHigh, RetryLimit: 3, RetryDelay: 500 * time.Millisecond}, cfg.firmConfig())
		assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	})

	t.Run("should require the rpc url", func(t *testing.T) {
		t.Setenv("FIRM_RPC_URL", "")

		_, err := loadConfig()

		assert.Error(t, err)
	})

	t.Run("should reject a zero retry limit", func(t *testing.T) {
		t.Setenv("FIRM_RPC_URL", "http://localhost:8545")
		t.Setenv("FIRM_RETRY_LIMIT", "0")

		_, err := loadConfig()

		assert.ErrorIs(t, err, validator.ErrValidationFailed)
	})

	t.Run("should reject an unknown log level", func(t *testing.T) {
		t.Setenv("FIRM_RPC_URL", "http://localhost:8545")
		t.Setenv("FIRM_LOG_LEVEL", "verbose")

		_, err := loadConfig()

		assert.ErrorIs(t, err, validator.ErrValidationFailed)
	})
}

func TestConfig_UsesWebsocket(t *testing.T) {
	testCases := map[string]bool{
		"ws://localhost:8546":      true,
		"wss://node.example.com":   true,
		"http://localhost:8545":    false,
		"https://node.example.com": false,
	}

	for url, expected := range testCases {
		t.Run(url, func(t *testing.T) {
			assert.Equal(t, expected, config{RPCURL: url}.usesWebsocket())
		})
	}
}

func TestTelemetryOptions(t *testing.T) {
	assert.Len(t, telemetryOptions(config{}), 1)
	assert.Len(t, telemetryOptions(config{TelemetryEndpoint: "localhost:4317", TelemetryInsecure: true}), 3)
}
