package schema

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlogAdapter(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	logger := NewSlogAdapter(slog.New(handler)).With("component", "test")

	logger.Debug("debug message", "k", 1)
	logger.Info("info message")
	logger.Warn("warn message")
	logger.Error("error message")

	out := buf.String()
	assert.Contains(t, out, "debug message")
	assert.Contains(t, out, "k=1")
	assert.Contains(t, out, "component=test")
	assert.Contains(t, out, "level=ERROR")
}

func TestNormalizeLogsDialect(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})

	_, err := Normalize([]byte(`{"definitions": {"A": {}}}`),
		WithLogger(NewSlogAdapter(slog.New(handler))),
		WithSourceName("a.json"),
	)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "dialect=json-schema")
	assert.Contains(t, buf.String(), "definitions=1")
	assert.Contains(t, buf.String(), "source=a.json")
}

func TestLoggerOrNop(t *testing.T) {
	assert.Equal(t, NopLogger{}, LoggerOrNop(nil))
	assert.NotPanics(t, func() {
		l := NopLogger{}.With("a", 1)
		l.Debug("x")
		l.Info("x")
		l.Warn("x")
		l.Error("x")
	})
}
