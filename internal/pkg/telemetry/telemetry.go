// Package telemetry initializes OpenTelemetry metrics and tracing with OTLP
// exporters over gRPC. It builds a Resource describing the process, registers
// global providers, and returns a ShutdownFunc that flushes and stops every
// pipeline.
package telemetry

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdkresource "go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.34.0"
)

// config holds the exporter settings shared by the metric and trace pipelines.
type config struct {
	endpoint       string // collector host:port; empty uses the OTEL_EXPORTER_OTLP_* env vars
	insecure       bool   // disable TLS towards the collector
	serviceVersion string // reported as service.version when set
}

// Option configures Init.
type Option func(*config)

// WithEndpoint sets the collector address (host:port) for both exporters.
func WithEndpoint(endpoint string) Option {
	return func(c *config) {
		c.endpoint = endpoint
	}
}

// WithInsecure disables TLS towards the collector.
func WithInsecure() Option {
	return func(c *config) {
		c.insecure = true
	}
}

// WithServiceVersion sets the service.version resource attribute.
func WithServiceVersion(version string) Option {
	return func(c *config) {
		c.serviceVersion = version
	}
}

func (c config) metricOptions() []otlpmetricgrpc.Option {
	var opts []otlpmetricgrpc.Option
	if c.endpoint != "" {
		opts = append(opts, otlpmetricgrpc.WithEndpoint(c.endpoint))
	}
	if c.insecure {
		opts = append(opts, otlpmetricgrpc.WithInsecure())
	}
	return opts
}

func (c config) traceOptions() []otlptracegrpc.Option {
	var opts []otlptracegrpc.Option
	if c.endpoint != "" {
		opts = append(opts, otlptracegrpc.WithEndpoint(c.endpoint))
	}
	if c.insecure {
		opts = append(opts, otlptracegrpc.WithInsecure())
	}
	return opts
}

// initMeterProvider sets up an OTLP gRPC MeterProvider using a periodic
// reader and registers it as the global MeterProvider.
func initMeterProvider(ctx context.Context, res *sdkresource.Resource, opts ...otlpmetricgrpc.Option) (*sdkmetric.MeterProvider, error) {
	exporter, err := otlpmetricgrpc.New(ctx, opts...)
	if err != nil {
		return nil, err
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter)),
		sdkmetric.WithResource(res),
	)

	otel.SetMeterProvider(mp)
	return mp, nil
}

// initTracerProvider sets up an OTLP gRPC TracerProvider using a batched
// exporter and registers it as the global TracerProvider.
func initTracerProvider(ctx context.Context, res *sdkresource.Resource, opts ...otlptracegrpc.Option) (*sdktrace.TracerProvider, error) {
	exporter, err := otlptracegrpc.New(ctx, opts...)
	if err != nil {
		return nil, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)

	otel.SetTracerProvider(tp)
	return tp, nil
}

// newResource merges the default system resource with the service name and,
// when given, the service version.
func newResource(serviceName, serviceVersion string) (*sdkresource.Resource, error) {
	attrs := []attribute.KeyValue{semconv.ServiceName(serviceName)}
	if serviceVersion != "" {
		attrs = append(attrs, semconv.ServiceVersion(serviceVersion))
	}

	return sdkresource.Merge(
		sdkresource.Default(),
		sdkresource.NewWithAttributes(semconv.SchemaURL, attrs...),
	)
}

// ShutdownFunc flushes and stops all telemetry providers.
type ShutdownFunc func(ctx context.Context) error

// Init configures OpenTelemetry metrics and traces exported over OTLP/gRPC
// and registers them as the global providers. The returned ShutdownFunc must
// be called on application shutdown so pending data is flushed.
func Init(ctx context.Context, serviceName string, opts ...Option) (ShutdownFunc, error) {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	res, err := newResource(serviceName, cfg.serviceVersion)
	if err != nil {
		return nil, err
	}

	mp, err := initMeterProvider(ctx, res, cfg.metricOptions()...)
	if err != nil {
		return nil, err
	}

	tp, err := initTracerProvider(ctx, res, cfg.traceOptions()...)
	if err != nil {
		return nil, errors.Join(err, mp.Shutdown(ctx))
	}

	return func(ctx context.Context) error {
		return errors.Join(
			mp.Shutdown(ctx),
			tp.Shutdown(ctx),
		)
	}, nil
}
