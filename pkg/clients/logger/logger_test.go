package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoggerWritesAtLevel(t *testing.T) {
	b := bytes.NewBufferString("")
	l := NewLogger(b, LogLevelInfo)

	l.Debug("hidden")
	l.Info("shown", "key", "value")

	require.NotContains(t, b.String(), "hidden")
	require.Contains(t, b.String(), "shown")
	require.Contains(t, b.String(), "key=value")
	require.Equal(t, LogLevelInfo, l.Level())
}

func TestLoggerDebugLevelWritesDebug(t *testing.T) {
	b := bytes.NewBufferString("")
	l := NewLogger(b, "DEBUG")

	l.Debug("now shown")

	require.Contains(t, b.String(), "now shown")
	require.Equal(t, LogLevelDebug, l.Level())
}

func TestLoggerInvalidLevelFallsBackToInfo(t *testing.T) {
	b := bytes.NewBufferString("")
	l := NewLogger(b, "verbose")

	require.Equal(t, LogLevelInfo, l.Level())
	require.Contains(t, b.String(), "Unknown log level")
	require.Contains(t, b.String(), "verbose")

	l.Debug("hidden")
	l.Info("shown")

	require.NotContains(t, b.String(), "hidden")
	require.Contains(t, b.String(), "shown")
}

func TestLoggerWithAddsFields(t *testing.T) {
	b := bytes.NewBufferString("")
	l := NewLogger(b, LogLevelInfo).With("id", "abc")

	l.Info("message")

	require.Contains(t, b.String(), "id=abc")
}

func TestHCLoggerSharesOutput(t *testing.T) {
	b := bytes.NewBufferString("")
	l := NewLogger(b, LogLevelInfo)

	hl := LoggerAsHCLogger(l)
	hl.Info("from hclog")

	require.Contains(t, b.String(), "from hclog")
}
