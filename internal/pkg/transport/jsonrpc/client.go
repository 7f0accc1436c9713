// Package jsonrpc provides a generic JSON-RPC 2.0 client over HTTP.
// It supports automatic HTTP-level retries, configurable timeouts and an
// optional client-side rate limit, and is suitable for talking to Ethereum
// nodes or any other JSON-RPC service.
package jsonrpc

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-retryablehttp"
	"golang.org/x/time/rate"
)

// ErrProviderReturnedError indicates that the remote JSON-RPC server returned an error response.
var ErrProviderReturnedError = errors.New("provider error")

// response represents a standard JSON-RPC 2.0 response.
type response struct {
	JsonRPC string `json:"jsonrpc"` // JSON-RPC protocol version (usually "2.0")
	Error   *struct {
		Code    int    `json:"code"`    // Error code defined by JSON-RPC 2.0 or by the node
		Message string `json:"message"` // Human-readable error message
	} `json:"error"`
	Result json.RawMessage `json:"result"` // Raw result payload returned by the server
}

// Err returns an error if the response includes a JSON-RPC error object.
// It wraps ErrProviderReturnedError with the provided error code and message.
func (r response) Err() error {
	if r.Error == nil {
		return nil
	}

	return fmt.Errorf("%w: [%d] - %s", ErrProviderReturnedError, r.Error.Code, r.Error.Message)
}

// Client defines the interface for a generic JSON-RPC client.
type Client interface {
	// Fetch sends a JSON-RPC request with the given method name and parameters.
	// It returns the raw JSON result or an error if the request or response fails.
	// A JSON null result is returned as-is; callers decide what absence means.
	Fetch(ctx context.Context, method string, params ...any) (json.RawMessage, error)
}

// client is a reusable JSON-RPC client over HTTP.
type client struct {
	providerEndpoint string                // The URL of the remote JSON-RPC server
	httpClient       *retryablehttp.Client // The HTTP client used to perform requests
	limiter          *rate.Limiter         // nil when requests are not rate limited
}

// Compile-time assertion that client implements the Client interface.
var _ Client = (*client)(nil)

// Fetch sends a JSON-RPC request to the remote server with the given method and parameters.
// The `id` field in the request is generated as a UUID string.
func (c *client) Fetch(ctx context.Context, method string, params ...any) (json.RawMessage, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	if params == nil {
		params = []any{}
	}

	body, err := json.Marshal(map[string]any{
		"jsonrpc": "2.0",
		"id":      uuid.NewString(),
		"method":  method,
		"params":  params,
	})
	if err != nil {
		return nil, err
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, c.providerEndpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	var data response
	if err := json.NewDecoder(res.Body).Decode(&data); err != nil {
		return nil, err
	}

	if err := data.Err(); err != nil {
		return nil, err
	}

	return data.Result, nil
}

// config holds optional configuration parameters for the JSON-RPC client.
type config struct {
	timeout      time.Duration // Maximum time to wait for a HTTP request
	retryWaitMin time.Duration // Minimum delay between retries
	retryWaitMax time.Duration // Maximum delay between retries
	retryMax     int           // Maximum number of retry attempts
	rateLimit    float64       // Requests per second; zero disables limiting
	rateBurst    int           // Burst allowed above rateLimit
}

// Option defines a functional option type used to customize the client configuration.
type Option func(*config)

// NewClient creates a new JSON-RPC client pointing to the specified server endpoint.
func NewClient(providerEndpoint string, opts ...Option) *client {
	cfg := config{
		timeout:      5 * time.Second,
		retryWaitMin: 1 * time.Second,
		retryWaitMax: 5 * time.Second,
		retryMax:     2,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	httpClient := retryablehttp.NewClient()
	httpClient.Logger = nil
	httpClient.HTTPClient.Timeout = cfg.timeout
	httpClient.RetryWaitMin = cfg.retryWaitMin
	httpClient.RetryWaitMax = cfg.retryWaitMax
	httpClient.RetryMax = cfg.retryMax

	var limiter *rate.Limiter
	if cfg.rateLimit > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.rateLimit), max(cfg.rateBurst, 1))
	}

	return &client{
		providerEndpoint: providerEndpoint,
		httpClient:       httpClient,
		limiter:          limiter,
	}
}

// WithTimeout configures the maximum duration for a single HTTP request.
//
// Default: 5 seconds.
func WithTimeout(d time.Duration) Option {
	return func(c *config) {
		c.timeout = d
	}
}

// WithRetryWaitMin configures the minimum wait duration between retry attempts.
//
// Default: 1 second.
func WithRetryWaitMin(d time.Duration) Option {
	return func(c *config) {
		c.retryWaitMin = d
	}
}

// WithRetryWaitMax configures the maximum wait duration between retry attempts.
//
// Default: 5 seconds.
func WithRetryWaitMax(d time.Duration) Option {
	return func(c *config) {
		c.retryWaitMax = d
	}
}

// WithRetryMax configures the maximum number of retry attempts for failed requests.
//
// Default: 2 retries.
func WithRetryMax(n int) Option {
	return func(c *config) {
		c.retryMax = n
	}
}

// WithRateLimit caps outgoing requests to rps per second with the given burst.
// Fetch blocks until a token is available or ctx is done.
//
// Default: unlimited.
func WithRateLimit(rps float64, burst int) Option {
	return func(c *config) {
		c.rateLimit = rps
		c.rateBurst = burst
	}
}
