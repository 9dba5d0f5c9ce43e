package main

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/Philanthropists/results/internal/logging"
	"github.com/Philanthropists/results/pkg/result"
)

func testLogger(t *testing.T) context.Context {
	t.Helper()

	logger, err := logging.Build("error")
	require.NoError(t, err)
	logging.SetGlobal(logger)

	return context.Background()
}

func Test_ParseWrapsFailures(t *testing.T) {
	assert.Equal(t, result.From(5), parse("5"))
	assert.True(t, parse("five").IsError())
}

func Test_MapValues(t *testing.T) {
	var out bytes.Buffer

	failed := mapValues(testLogger(t), &out, []string{"5", "boom", "-2"}, 2)

	assert.Equal(t, 1, failed)
	assert.Equal(t, "5\t[10]\nboom\t[]\n-2\t[-4]\n", out.String())
}

func Test_MapValuesLogsSummary(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	ctx := logging.Wrap(zap.New(core)).WithContext(context.Background())

	failed := mapValues(ctx, io.Discard, []string{"4", "x"}, 3)
	require.Equal(t, 1, failed)

	warned := logs.FilterMessage("value failed").All()
	require.Len(t, warned, 1)
	assert.Equal(t, "x", warned[0].ContextMap()["input"])
	assert.Equal(t, false, warned[0].ContextMap()["ok"])

	mapped := logs.FilterMessage("value mapped").All()
	require.Len(t, mapped, 1)
	assert.Equal(t, "Ok(12)", mapped[0].ContextMap()["result"])

	summary := logs.FilterMessage("mapped values").All()
	require.Len(t, summary, 1)
	fields := summary[0].ContextMap()
	assert.EqualValues(t, 2, fields["count"])
	assert.EqualValues(t, 1, fields["failures"])
	assert.Contains(t, fields, "elapsed")
}

func Test_MapCommand(t *testing.T) {
	_ = testLogger(t)

	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetArgs([]string{"map", "--multiplier", "3", "1", "2"})

	require.NoError(t, root.Execute())
	assert.Equal(t, "1\t[3]\n2\t[6]\n", out.String())
}

func Test_MapCommandFailsOnBadValue(t *testing.T) {
	_ = testLogger(t)

	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetArgs([]string{"map", "x"})

	err := root.Execute()
	require.Error(t, err)
	assert.True(t, errFailedValues.Has(err))
	assert.Equal(t, "x\t[]\n", out.String())
}
