// Package logger provides a global, sugared Zap logger whose fields can be
// carried through a context.Context. Every entry emitted with a context that
// holds an OpenTelemetry span is tagged with the trace and span IDs.
//
// Until Init is called the package logs nothing, so library code may log
// freely without forcing its callers to configure logging.
package logger

import (
	"context"
	"os"
	"sync"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type ctxKeyType struct{}

// ctxKey is the context key under which derived fields are stored.
var ctxKey = ctxKeyType{}

var (
	// baseLogger is the global SugaredLogger instance. It is initialized once by Init.
	baseLogger *zap.SugaredLogger

	// initBaseLoggerOnce ensures the logger is only configured a single time.
	initBaseLoggerOnce sync.Once

	nopLogger = zap.NewNop().Sugar()
)

// Init configures the global logger to emit JSON to stderr at the given level
// ("debug", "info", "warn", "error", "panic", "fatal"). Calling Init multiple
// times has no effect after the first successful initialization.
func Init(level string) error {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return err
	}

	initBaseLoggerOnce.Do(func() {
		core := zapcore.NewCore(
			zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
			zapcore.AddSync(os.Stderr),
			lvl,
		)

		baseLogger = zap.New(core).Sugar()
	})

	return nil
}

// Sync flushes any buffered log entries.
func Sync() error {
	if baseLogger == nil {
		return nil
	}

	return baseLogger.Sync()
}

func root() *zap.SugaredLogger {
	if baseLogger == nil {
		return nopLogger
	}

	return baseLogger
}

// deriveFromCtx returns the global logger enriched with the fields stored in
// ctx by Derive, keysAndValues and the trace/span IDs found in ctx.
func deriveFromCtx(ctx context.Context, keysAndValues ...any) *zap.SugaredLogger {
	fields, _ := ctx.Value(ctxKey).([]any)
	fields = append(fields[:len(fields):len(fields)], keysAndValues...)

	spanCtx := trace.SpanContextFromContext(ctx)
	if spanCtx.HasTraceID() {
		fields = append(fields, "trace_id", spanCtx.TraceID().String())
	}
	if spanCtx.HasSpanID() {
		fields = append(fields, "span_id", spanCtx.SpanID().String())
	}

	l := root()
	if len(fields) == 0 {
		return l
	}

	return l.With(fields...)
}

// Derive returns a copy of ctx carrying keysAndValues. Every entry logged with
// the returned context includes those fields, whether Init ran before or
// after Derive.
func Derive(ctx context.Context, keysAndValues ...any) context.Context {
	fields, _ := ctx.Value(ctxKey).([]any)
	fields = append(fields[:len(fields):len(fields)], keysAndValues...)

	return context.WithValue(ctx, ctxKey, fields)
}

func log(ctx context.Context, level zapcore.Level, msg string, keysAndValues ...any) {
	deriveFromCtx(ctx).Logw(level, msg, keysAndValues...)
}

// Debug logs a debug-level message with optional key/value context.
func Debug(ctx context.Context, msg string, keysAndValues ...any) {
	log(ctx, zapcore.DebugLevel, msg, keysAndValues...)
}

// Info logs an info-level message with optional key/value context.
func Info(ctx context.Context, msg string, keysAndValues ...any) {
	log(ctx, zapcore.InfoLevel, msg, keysAndValues...)
}

// Warn logs a warn-level message with optional key/value context.
func Warn(ctx context.Context, msg string, keysAndValues ...any) {
	log(ctx, zapcore.WarnLevel, msg, keysAndValues...)
}

// Error logs an error-level message with optional key/value context.
func Error(ctx context.Context, msg string, keysAndValues ...any) {
	log(ctx, zapcore.ErrorLevel, msg, keysAndValues...)
}

// Panic logs a panic-level message (and then panics) with optional key/value context.
func Panic(ctx context.Context, msg string, keysAndValues ...any) {
	log(ctx, zapcore.PanicLevel, msg, keysAndValues...)
}

// Fatal logs a fatal-level message (and then exits) with optional key/value context.
func Fatal(ctx context.Context, msg string, keysAndValues ...any) {
	log(ctx, zapcore.FatalLevel, msg, keysAndValues...)
}
