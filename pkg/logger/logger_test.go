package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	appctx "nextperm/internal/core/context"
)

func observed(level zapcore.Level) (*Logger, *observer.ObservedLogs) {
	core, logs := observer.New(level)
	return &Logger{zap.New(core).Sugar()}, logs
}

func TestNew_UnknownLevelFallsBackToInfo(t *testing.T) {
	l, err := New(Config{Level: "verbose", OutputPaths: []string{"stderr"}})
	require.NoError(t, err)

	assert.False(t, l.Desugar().Core().Enabled(zap.DebugLevel))
	assert.True(t, l.Desugar().Core().Enabled(zap.InfoLevel))
}

func TestNew_DebugLevel(t *testing.T) {
	l, err := New(Config{Level: "debug", Development: true, OutputPaths: []string{"stderr"}})
	require.NoError(t, err)

	assert.True(t, l.Desugar().Core().Enabled(zap.DebugLevel))
}

func TestFromContext_AddsTraceFields(t *testing.T) {
	base, logs := observed(zap.DebugLevel)

	ctx := appctx.WithTrace(context.Background(), appctx.NewTraceContext("trace-1", "req-1"))
	ctx = WithLogger(ctx, base)

	Warn(ctx, "rejected", "code", "OUT_OF_RANGE")

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, zap.WarnLevel, entry.Level)
	fields := entry.ContextMap()
	assert.Equal(t, "trace-1", fields["trace_id"])
	assert.Equal(t, "req-1", fields["request_id"])
	assert.Equal(t, "OUT_OF_RANGE", fields["code"])
}

func TestFromContext_WithoutLoggerDiscards(t *testing.T) {
	l := FromContext(context.Background())

	require.NotNil(t, l)
	assert.False(t, l.Desugar().Core().Enabled(zap.ErrorLevel))
	Error(context.Background(), "dropped")
}

func TestWithComponent(t *testing.T) {
	base, logs := observed(zap.InfoLevel)

	base.WithComponent("permutation").Infow("hello")

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "permutation", logs.All()[0].ContextMap()["component"])
}
