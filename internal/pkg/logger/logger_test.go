package logger

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// resetLogger resets the global logger state for testing
func resetLogger() {
	baseLogger = nil
	initBaseLoggerOnce = sync.Once{}
}

// observe replaces the global logger with one recording every entry at level
// or above.
func observe(t *testing.T, level zapcore.Level) *observer.ObservedLogs {
	t.Helper()

	resetLogger()
	t.Cleanup(resetLogger)

	core, logs := observer.New(level)
	baseLogger = zap.New(core).Sugar()

	return logs
}

func TestInit(t *testing.T) {
	t.Run("valid levels", func(t *testing.T) {
		for _, level := range []string{"debug", "info", "warn", "error"} {
			resetLogger()
			require.NoError(t, Init(level), level)
			assert.NotNil(t, baseLogger, level)
		}
	})

	t.Run("invalid level", func(t *testing.T) {
		resetLogger()

		assert.Error(t, Init("verbose"))
		assert.Nil(t, baseLogger)
	})

	t.Run("only the first call configures the logger", func(t *testing.T) {
		resetLogger()
		require.NoError(t, Init("info"))
		first := baseLogger

		require.NoError(t, Init("debug"))
		assert.Same(t, first, baseLogger)
	})
}

func TestLevels(t *testing.T) {
	logs := observe(t, zapcore.InfoLevel)
	ctx := context.Background()

	Debug(ctx, "hidden")
	Info(ctx, "head advanced", "firm.block", 100)
	Warn(ctx, "confirmed read failed")
	Error(ctx, "failed to save watch checkpoint")

	entries := logs.All()
	require.Len(t, entries, 3)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, int64(100), entries[0].ContextMap()["firm.block"])
	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	assert.Equal(t, zapcore.ErrorLevel, entries[2].Level)
}

func TestPanic(t *testing.T) {
	observe(t, zapcore.DebugLevel)

	assert.Panics(t, func() {
		Panic(context.Background(), "unreachable state")
	})
}

func TestDerive(t *testing.T) {
	logs := observe(t, zapcore.DebugLevel)

	ctx := Derive(context.Background(), "firm.operation", "get_code")
	ctx = Derive(ctx, "firm.attempt", 2)
	Info(ctx, "retrying")

	entries := logs.All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "get_code", fields["firm.operation"])
	assert.Equal(t, int64(2), fields["firm.attempt"])
}

func TestDeriveBeforeInit(t *testing.T) {
	resetLogger()
	ctx := Derive(context.Background(), "firm.watch_id", "w-1")

	logs := observe(t, zapcore.DebugLevel)
	Info(ctx, "delivered")

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "w-1", entries[0].ContextMap()["firm.watch_id"])
}

func TestDeriveDoesNotLeakBetweenSiblings(t *testing.T) {
	logs := observe(t, zapcore.DebugLevel)

	parent := Derive(context.Background(), "firm.operation", "watch")
	first := Derive(parent, "firm.block", 96)
	second := Derive(parent, "firm.block", 97)

	Info(first, "first")
	Info(second, "second")

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, int64(96), entries[0].ContextMap()["firm.block"])
	assert.Equal(t, int64(97), entries[1].ContextMap()["firm.block"])
}

func TestTraceFields(t *testing.T) {
	logs := observe(t, zapcore.DebugLevel)

	traceID := trace.TraceID{0x01}
	spanID := trace.SpanID{0x02}
	ctx := trace.ContextWithSpanContext(context.Background(), trace.NewSpanContext(trace.SpanContextConfig{
		TraceID: traceID,
		SpanID:  spanID,
	}))

	Info(ctx, "traced")
	Info(context.Background(), "untraced")

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, traceID.String(), entries[0].ContextMap()["trace_id"])
	assert.Equal(t, spanID.String(), entries[0].ContextMap()["span_id"])
	assert.NotContains(t, entries[1].ContextMap(), "trace_id")
}

func TestLogBeforeInit(t *testing.T) {
	resetLogger()

	assert.NotPanics(t, func() {
		Info(context.Background(), "discarded")
		ctx := Derive(context.Background(), "key", "value")
		Warn(ctx, "discarded")
	})
	assert.NoError(t, Sync())
}

func TestFatal(t *testing.T) {
	if os.Getenv("TEST_FATAL_SUBPROCESS") == "1" {
		_ = Init("debug")
		Fatal(Derive(context.Background(), "firm.operation", "watch"), "fatal error for test")
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=TestFatal")
	cmd.Env = append(os.Environ(), "TEST_FATAL_SUBPROCESS=1")

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	exitErr, ok := err.(*exec.ExitError)
	require.True(t, ok, "the subprocess should exit with a non-zero status")
	assert.Equal(t, 1, exitErr.ExitCode())

	// Log entries go to stderr so stdout stays free for command output.
	assert.Contains(t, stderr.String(), `"level":"fatal"`)
	assert.Contains(t, stderr.String(), `"firm.operation":"watch"`)
	assert.NotContains(t, stdout.String(), `"level":"fatal"`)
}
