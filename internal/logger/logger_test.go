package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	t.Parallel()

	for _, level := range []string{"debug", "info", "warn", "error"} {
		lggr, err := New(level)
		require.NoError(t, err, level)
		require.NotNil(t, lggr)
	}

	_, err := New("loud")
	require.Error(t, err)
}

func TestNewLevel(t *testing.T) {
	t.Parallel()

	lggr, err := New("warn")
	require.NoError(t, err)
	assert.False(t, lggr.Desugar().Core().Enabled(zapcore.InfoLevel))
	assert.True(t, lggr.Desugar().Core().Enabled(zapcore.WarnLevel))
}

func TestTestObserved(t *testing.T) {
	t.Parallel()

	lggr, logs := TestObserved(t, zapcore.DebugLevel)
	lggr.Debugw("input normalized", "type", "phase", "raw", 1.25, "value", 0.25)

	entries := logs.FilterMessage("input normalized").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "phase", entries[0].ContextMap()["type"])
}

func TestNop(t *testing.T) {
	t.Parallel()

	assert.False(t, Nop().Desugar().Core().Enabled(zapcore.ErrorLevel))
	Test(t).Debug("test logger writes through t")
}
