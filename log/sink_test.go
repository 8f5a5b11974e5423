package log_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"sync"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/stopwatch/log"
	"go.jacobcolvin.com/stopwatch/stopwatchtest"
)

func TestWriterSink(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	s := log.NewWriterSink(&buf)
	s.Info("first")
	s.Info("second")

	assert.Equal(t, stopwatchtest.JoinLF("first", "second", ""), buf.String())
}

func TestWriterSinkConcurrent(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	s := log.NewWriterSink(&buf)

	var wg sync.WaitGroup
	for range 20 {
		wg.Go(func() {
			s.Info("line")
		})
	}

	wg.Wait()

	assert.Equal(t, strings.Repeat("line\n", 20), buf.String())
}

func TestNewSink(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		check  func(t *testing.T, out string)
		level  log.Level
		format log.Format
	}{
		"plain": {
			level:  log.LevelInfo,
			format: log.FormatPlain,
			check: func(t *testing.T, out string) {
				t.Helper()
				assert.Equal(t, "hello world\n", out)
			},
		},
		"plain above info": {
			level:  log.LevelWarn,
			format: log.FormatPlain,
			check: func(t *testing.T, out string) {
				t.Helper()
				assert.Empty(t, out)
			},
		},
		"json": {
			level:  log.LevelDebug,
			format: log.FormatJSON,
			check: func(t *testing.T, out string) {
				t.Helper()

				var entry map[string]any
				require.NoError(t, json.Unmarshal([]byte(out), &entry))
				assert.Equal(t, "hello world", entry["msg"])
				assert.Equal(t, "INFO", entry["level"])
			},
		},
		"json above info": {
			level:  log.LevelError,
			format: log.FormatJSON,
			check: func(t *testing.T, out string) {
				t.Helper()
				assert.Empty(t, out)
			},
		},
		"logfmt": {
			level:  log.LevelInfo,
			format: log.FormatLogfmt,
			check: func(t *testing.T, out string) {
				t.Helper()
				assert.Contains(t, out, `msg="hello world"`)
			},
		},
		"text": {
			level:  log.LevelInfo,
			format: log.FormatText,
			check: func(t *testing.T, out string) {
				t.Helper()
				assert.Contains(t, out, "hello world")
			},
		},
		"console": {
			level:  log.LevelInfo,
			format: log.FormatConsole,
			check: func(t *testing.T, out string) {
				t.Helper()
				assert.Contains(t, out, "hello world")
			},
		},
		"console above info": {
			level:  log.LevelWarn,
			format: log.FormatConsole,
			check: func(t *testing.T, out string) {
				t.Helper()
				assert.Empty(t, out)
			},
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer

			log.NewSink(&buf, tc.level, tc.format).Info("hello world")
			tc.check(t, buf.String())
		})
	}
}

func TestNewSinkFromStrings(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	s, err := log.NewSinkFromStrings(&buf, "info", "plain")
	require.NoError(t, err)

	s.Info("ok")
	assert.Equal(t, "ok\n", buf.String())

	_, err = log.NewSinkFromStrings(&buf, "loud", "plain")
	require.ErrorIs(t, err, log.ErrInvalidArgument)
	require.ErrorIs(t, err, log.ErrUnknownLogLevel)

	_, err = log.NewSinkFromStrings(&buf, "info", "yaml")
	require.ErrorIs(t, err, log.ErrInvalidArgument)
	require.ErrorIs(t, err, log.ErrUnknownLogFormat)
}

func TestDiscard(t *testing.T) {
	t.Parallel()

	var s log.Sink = log.Discard{}
	assert.NotPanics(t, func() { s.Info("dropped") })
}

func TestStderr(t *testing.T) {
	t.Parallel()

	assert.Same(t, log.Stderr(), log.Stderr())
	assert.NotNil(t, log.Stderr().Writer())
}

func TestConfig(t *testing.T) {
	t.Parallel()

	cfg := log.NewConfig()
	cmd := &cobra.Command{Use: "test"}
	cfg.RegisterFlags(cmd.Flags())
	require.NoError(t, cfg.RegisterCompletions(cmd))

	assert.Equal(t, "info", cfg.Level)
	assert.Equal(t, "plain", cfg.Format)
	assert.True(t, cfg.Plain())

	require.NoError(t, cmd.Flags().Set("log-format", "json"))
	require.NoError(t, cmd.Flags().Set("log-level", "debug"))
	assert.False(t, cfg.Plain())

	var buf bytes.Buffer

	s, err := cfg.NewSink(&buf)
	require.NoError(t, err)

	s.Info("configured")
	assert.Contains(t, buf.String(), `"msg":"configured"`)
}

func TestConfigCustomFlags(t *testing.T) {
	t.Parallel()

	cfg := log.Flags{Level: "report-level", Format: "report-format"}.NewConfig()
	cmd := &cobra.Command{Use: "test"}
	cfg.RegisterFlags(cmd.Flags())

	assert.NotNil(t, cmd.Flags().Lookup("report-level"))
	assert.NotNil(t, cmd.Flags().Lookup("report-format"))
	assert.Nil(t, cmd.Flags().Lookup("log-level"))
}
