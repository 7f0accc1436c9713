package main

import (
	"fmt"
	"net/url"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/gabapcia/firmchain/internal/firm"
	"github.com/gabapcia/firmchain/internal/pkg/validator"
)

// envPrefix namespaces every environment variable read by the binary.
const envPrefix = "FIRM"

// config is loaded from FIRM_* environment variables.
type config struct {
	RPCURL       string        `envconfig:"RPC_URL" required:"true" validate:"required,url"`
	PollInterval time.Duration `envconfig:"POLL_INTERVAL" default:"12s"`
	RateLimit    float64       `envconfig:"RATE_LIMIT" default:"10"`
	RateBurst    int           `envconfig:"RATE_BURST" default:"20"`

	Certainty  uint64        `envconfig:"CERTAINTY" default:"4"`
	RetryLimit uint          `envconfig:"RETRY_LIMIT" default:"16" validate:"min=1"`
	RetryDelay time.Duration `envconfig:"RETRY_DELAY" default:"2s"`

	LogLevel string `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`

	TelemetryEnabled  bool   `envconfig:"TELEMETRY_ENABLED" default:"false"`
	TelemetryEndpoint string `envconfig:"TELEMETRY_ENDPOINT"`
	TelemetryInsecure bool   `envconfig:"TELEMETRY_INSECURE" default:"false"`

	RedisAddr     string `envconfig:"REDIS_ADDR"`
	RedisUsername string `envconfig:"REDIS_USERNAME"`
	RedisPassword string `envconfig:"REDIS_PASSWORD"`
	RedisDB       int    `envconfig:"REDIS_DB" default:"0" validate:"min=0"`
}

// loadConfig reads and validates the FIRM_* environment.
func loadConfig() (config, error) {
	var cfg config
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return config{}, fmt.Errorf("failed to read environment: %w", err)
	}

	if err := validator.Validate(cfg); err != nil {
		return config{}, err
	}

	return cfg, nil
}

// firmConfig returns the confirmation settings of cfg.
func (c config) firmConfig() firm.Config {
	return firm.Config{
		Certainty:  c.Certainty,
		RetryLimit: c.RetryLimit,
		RetryDelay: c.RetryDelay,
	}
}

// usesWebsocket reports whether the RPC endpoint can push new heads.
func (c config) usesWebsocket() bool {
	u, err := url.Parse(c.RPCURL)
	if err != nil {
		return false
	}

	return u.Scheme == "ws" || u.Scheme == "wss"
}
