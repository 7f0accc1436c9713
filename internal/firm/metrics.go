package firm

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

const instrumentationName = "github.com/gabapcia/firmchain/internal/firm"

// metrics groups the counters recorded by confirmed reads and watches.
// Instruments come from the global MeterProvider, so they are no-ops until
// telemetry.Init registers a real one.
type metrics struct {
	retries       metric.Int64Counter
	exhaustions   metric.Int64Counter
	deliveredLogs metric.Int64Counter
}

func newMetrics() *metrics {
	meter := otel.Meter(instrumentationName)

	return &metrics{
		retries: counter(meter, "firm.retries",
			"Attempts that observed a value not yet confirmed."),
		exhaustions: counter(meter, "firm.retries.exhausted",
			"Calls abandoned after the retry limit was reached."),
		deliveredLogs: counter(meter, "firm.logs.delivered",
			"Confirmed logs delivered to watch handlers."),
	}
}

func counter(meter metric.Meter, name, description string) metric.Int64Counter {
	c, err := meter.Int64Counter(name, metric.WithDescription(description))
	if err != nil {
		c, _ = noop.NewMeterProvider().Meter(instrumentationName).Int64Counter(name)
	}

	return c
}

func (m *metrics) recordRetry(ctx context.Context, operation string) {
	m.retries.Add(ctx, 1, metric.WithAttributes(attribute.String("operation", operation)))
}

func (m *metrics) recordExhausted(ctx context.Context, operation string) {
	m.exhaustions.Add(ctx, 1, metric.WithAttributes(attribute.String("operation", operation)))
}

func (m *metrics) recordDelivered(ctx context.Context, n int) {
	if n > 0 {
		m.deliveredLogs.Add(ctx, int64(n))
	}
}
