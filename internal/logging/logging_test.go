package logging

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/Philanthropists/results/pkg/result"
)

func observed(level zapcore.Level) (*Logger, *observer.ObservedLogs) {
	core, logs := observer.New(level)
	return Wrap(zap.New(core)), logs
}

func Test_ResultFieldRendersVariant(t *testing.T) {
	l, logs := observed(zapcore.InfoLevel)

	l.Info("mapped",
		Result("ok", result.From(10)),
		Result("failed", result.FromError[int](errors.New("boom"))),
	)

	require.Equal(t, 1, logs.Len())
	ctx := logs.All()[0].ContextMap()
	assert.Equal(t, "Ok(10)", ctx["ok"])
	assert.Equal(t, "Error(boom)", ctx["failed"])
}

func Test_ResultFieldSkipsNil(t *testing.T) {
	l, logs := observed(zapcore.InfoLevel)

	l.Info("nothing", Result[string, int, error]("r", nil))

	require.Equal(t, 1, logs.Len())
	assert.Empty(t, logs.All()[0].ContextMap())
}

func Test_WithKeepsFields(t *testing.T) {
	l, logs := observed(zapcore.DebugLevel)

	l.With(String("input", "5")).Debug("parsed", Int("value", 5), Bool("ok", true))

	require.Equal(t, 1, logs.Len())
	ctx := logs.All()[0].ContextMap()
	assert.Equal(t, "5", ctx["input"])
	assert.EqualValues(t, 5, ctx["value"])
	assert.Equal(t, true, ctx["ok"])
}

func Test_FromContext(t *testing.T) {
	l, logs := observed(zapcore.InfoLevel)

	ctx := l.WithContext(context.Background())
	FromContext(ctx).Warn("from context")

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, zapcore.WarnLevel, logs.All()[0].Level)
}

func Test_FromContextFallsBackToGlobal(t *testing.T) {
	assert.Same(t, New(), FromContext(context.Background()))
}

func Test_DurationField(t *testing.T) {
	l, logs := observed(zapcore.InfoLevel)

	l.Info("timed", Duration("elapsed", 1500*time.Millisecond))

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, 1500*time.Millisecond, logs.All()[0].ContextMap()["elapsed"])
}

func Test_ErrorFieldAndLevel(t *testing.T) {
	l, logs := observed(zapcore.ErrorLevel)

	l.Info("dropped")
	l.Error("failed", Error(errors.New("boom")))

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "failed", entry.Message)
	assert.Equal(t, "boom", entry.ContextMap()["error"])
}

func Test_BuildRejectsUnknownLevel(t *testing.T) {
	_, err := Build("loud")
	assert.Error(t, err)

	logger, err := Build("debug")
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))
}
