package cli

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/bounded/internal/logger"
	"github.com/mesh-intelligence/bounded/pkg/number"
)

// execute runs the root command in configDir with an observed logger and
// returns stdout.
func execute(t *testing.T, configDir string, args ...string) (string, *observer.ObservedLogs, error) {
	t.Helper()
	t.Setenv(envPrefix+"_FORMAT", "")
	t.Setenv(envPrefix+"_LOG_LEVEL", "")

	lggr, logs := logger.TestObserved(t, zapcore.DebugLevel)
	root := newRootCmd(&app{lggr: lggr})

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(append([]string{"--config-dir", configDir}, args...))
	err := root.Execute()
	return out.String(), logs, err
}

func TestOperations(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"unipolar", "new", "1.4"}, "1"},
		{[]string{"unipolar", "new", "--", "-0.5"}, "0"},
		{[]string{"unipolar", "invert", "0.25"}, "0.75"},
		{[]string{"unipolar", "add", "0.9", "0.5"}, "1"},
		{[]string{"unipolar", "addf", "--", "0.5", "-2"}, "0"},
		{[]string{"unipolar", "sub", "0.2", "0.5"}, "0"},
		{[]string{"unipolar", "mul", "0.5", "0.5"}, "0.25"},
		{[]string{"unipolar", "mulf", "0.5", "10"}, "5"},

		{[]string{"bipolar", "new", "--", "-3"}, "-1"},
		{[]string{"bipolar", "abs", "--", "-0.7"}, "0.7"},
		{[]string{"bipolar", "invert", "0.4"}, "-0.4"},
		{[]string{"bipolar", "invert-if", "0.4", "true"}, "-0.4"},
		{[]string{"bipolar", "invert-if", "0.4", "false"}, "0.4"},
		{[]string{"bipolar", "add", "0.9", "0.5"}, "1"},
		{[]string{"bipolar", "addf", "--", "0.5", "-1"}, "-0.5"},
		{[]string{"bipolar", "sub", "--", "-0.9", "0.5"}, "-1"},
		{[]string{"bipolar", "mul", "--", "-0.5", "-0.5"}, "0.25"},
		{[]string{"bipolar", "scale", "--", "-0.8", "0.5"}, "-0.4"},
		{[]string{"bipolar", "mulf", "--", "-0.5", "4"}, "-2"},

		{[]string{"phase", "new", "--", "-0.25"}, "0.75"},
		{[]string{"phase", "new", "1"}, "0"},
		{[]string{"phase", "add", "0.5", "0.75"}, "0.25"},
		{[]string{"phase", "addf", "0.5", "3"}, "0.5"},
		{[]string{"phase", "scale", "0.5", "0.5"}, "0.25"},
		{[]string{"phase", "mulf", "0.75", "2"}, "0.5"},
		{[]string{"phase", "div", "0.3", "0.5"}, "0.6"},
		{[]string{"phase", "div", "0.5", "0.25"}, "0"},
	}
	for _, tt := range tests {
		t.Run(filepath.Join(tt.args...), func(t *testing.T) {
			out, _, err := execute(t, t.TempDir(), tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want+"\n", out)
		})
	}
}

func TestFormats(t *testing.T) {
	// NaN renders differently in each format, which makes the selected
	// format observable.
	nanArgs := []string{"phase", "div", "0.5", "0"}

	t.Run("text by default", func(t *testing.T) {
		out, _, err := execute(t, t.TempDir(), nanArgs...)
		require.NoError(t, err)
		assert.Equal(t, "NaN\n", out)
	})

	t.Run("yaml flag", func(t *testing.T) {
		out, _, err := execute(t, t.TempDir(), append([]string{"--format", "yaml"}, nanArgs...)...)
		require.NoError(t, err)
		assert.Equal(t, ".nan\n", out)
	})

	t.Run("json flag", func(t *testing.T) {
		out, _, err := execute(t, t.TempDir(), "--format", "json", "unipolar", "mulf", "0.5", "10")
		require.NoError(t, err)
		assert.Equal(t, "5\n", out)
	})

	t.Run("json cannot encode NaN", func(t *testing.T) {
		_, _, err := execute(t, t.TempDir(), append([]string{"--format", "json"}, nanArgs...)...)
		require.Error(t, err)
	})

	t.Run("config file", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, configFileExt), []byte("format: yaml\n"), 0o644))
		out, _, err := execute(t, dir, nanArgs...)
		require.NoError(t, err)
		assert.Equal(t, ".nan\n", out)
	})

	t.Run("env overrides config file", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, configFileExt), []byte("format: json\n"), 0o644))
		lggr, _ := logger.TestObserved(t, zapcore.DebugLevel)
		root := newRootCmd(&app{lggr: lggr})
		var out bytes.Buffer
		root.SetOut(&out)
		root.SetErr(io.Discard)
		root.SetArgs(append([]string{"--config-dir", dir}, nanArgs...))
		t.Setenv(envPrefix+"_FORMAT", "yaml")

		require.NoError(t, root.Execute())
		assert.Equal(t, ".nan\n", out.String())
	})

	t.Run("flag overrides config file", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, configFileExt), []byte("format: yaml\n"), 0o644))
		out, _, err := execute(t, dir, append([]string{"--format", "text"}, nanArgs...)...)
		require.NoError(t, err)
		assert.Equal(t, "NaN\n", out)
	})

	t.Run("unknown format", func(t *testing.T) {
		_, _, err := execute(t, t.TempDir(), "--format", "xml", "phase", "new", "0.5")
		require.ErrorIs(t, err, errUnknownFormat)
		assert.Equal(t, exitUserError, exitCode(err))
	})
}

func TestErrors(t *testing.T) {
	t.Run("non-numeric argument", func(t *testing.T) {
		_, logs, err := execute(t, t.TempDir(), "unipolar", "new", "loud")
		require.ErrorIs(t, err, number.ErrInvalidValue)
		assert.Equal(t, exitUserError, exitCode(err))
		assert.Equal(t, 1, logs.FilterMessage("operation failed").Len())
	})

	t.Run("non-numeric raw argument", func(t *testing.T) {
		_, _, err := execute(t, t.TempDir(), "phase", "mulf", "0.5", "twice")
		require.ErrorIs(t, err, number.ErrInvalidValue)
	})

	t.Run("unknown operation", func(t *testing.T) {
		_, _, err := execute(t, t.TempDir(), "phase", "frob", "0.5")
		require.ErrorIs(t, err, errUnknownOperation)
		assert.Equal(t, exitUserError, exitCode(err))
	})

	t.Run("invalid flag", func(t *testing.T) {
		_, _, err := execute(t, t.TempDir(), "bipolar", "invert-if", "0.4", "maybe")
		require.ErrorIs(t, err, errInvalidFlag)
	})

	t.Run("wrong argument count", func(t *testing.T) {
		_, _, err := execute(t, t.TempDir(), "unipolar", "add", "0.5")
		require.Error(t, err)
	})

	t.Run("malformed config file", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, configFileExt), []byte("format: [\n"), 0o644))
		_, _, err := execute(t, dir, "phase", "new", "0.5")
		require.ErrorIs(t, err, errConfig)
		assert.Equal(t, exitSysError, exitCode(err))
	})

	t.Run("bad log level", func(t *testing.T) {
		dir := t.TempDir()
		t.Setenv(envPrefix+"_FORMAT", "")
		t.Setenv(envPrefix+"_LOG_LEVEL", "loud")
		root := NewRootCmd()
		root.SetOut(io.Discard)
		root.SetErr(io.Discard)
		root.SetArgs([]string{"--config-dir", dir, "phase", "new", "0.5"})
		err := root.Execute()
		require.ErrorIs(t, err, errConfig)
	})
}

func TestTypeCommandWithoutOperationPrintsHelp(t *testing.T) {
	out, _, err := execute(t, t.TempDir(), "unipolar")
	require.NoError(t, err)
	assert.Contains(t, out, "invert")
}

func TestNormalizationIsLogged(t *testing.T) {
	_, logs, err := execute(t, t.TempDir(), "unipolar", "new", "1.4")
	require.NoError(t, err)

	entries := logs.FilterMessage("input normalized").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "unipolar", fields["type"])
	assert.Equal(t, 1.4, fields["raw"])
	assert.Equal(t, 1.0, fields["value"])

	_, logs, err = execute(t, t.TempDir(), "unipolar", "new", "0.5")
	require.NoError(t, err)
	assert.Zero(t, logs.FilterMessage("input normalized").Len())
}

func TestVerboseBuildsDebugLogger(t *testing.T) {
	t.Setenv(envPrefix+"_FORMAT", "")
	t.Setenv(envPrefix+"_LOG_LEVEL", "")

	a := &app{}
	root := newRootCmd(a)
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"--config-dir", t.TempDir(), "--verbose", "phase", "new", "0.5"})
	require.NoError(t, root.Execute())
	require.NotNil(t, a.lggr)
	assert.True(t, a.lggr.Desugar().Core().Enabled(zapcore.DebugLevel))
}

func TestInit(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")

	out, logs, err := execute(t, dir, "init")
	require.NoError(t, err)
	assert.Contains(t, out, "wrote")
	assert.Equal(t, 1, logs.FilterMessage("wrote default config").Len())

	data, err := os.ReadFile(filepath.Join(dir, configFileExt))
	require.NoError(t, err)
	var cfg configFile
	require.NoError(t, yaml.Unmarshal(data, &cfg))
	assert.Equal(t, configFile{Format: formatText, LogLevel: logger.DefaultLevel}, cfg)

	out, _, err = execute(t, dir, "init")
	require.NoError(t, err)
	assert.Contains(t, out, "already exists")
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, t.TempDir(), "version")
	require.NoError(t, err)
	assert.Contains(t, out, "bounded v"+Version)
	assert.Contains(t, out, modulePath)
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, exitSuccess, exitCode(nil))
	assert.Equal(t, exitSysError, exitCode(errConfig))
	assert.Equal(t, exitUserError, exitCode(errUnknownOperation))
	assert.Equal(t, exitUserError, exitCode(errUnknownFormat))
}
