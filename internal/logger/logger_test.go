package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeRecord(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec), "output: %s", buf.String())
	return rec
}

func TestInitLogger_JSONBaseAttributes(t *testing.T) {
	var buf bytes.Buffer
	InitLoggerWithWriter(NewConfig("info", "json", "chore-wheel-test", "1.2.3", "test", false), &buf)

	slog.Default().Info("spin completed", "reward_type", "points", "remaining", 2)

	rec := decodeRecord(t, &buf)
	assert.Equal(t, "chore-wheel-test", rec[AttrKeyService])
	assert.Equal(t, "1.2.3", rec[AttrKeyVersion])
	assert.Equal(t, "test", rec[AttrKeyEnvironment])
	assert.Equal(t, "spin completed", rec["msg"])
	assert.Equal(t, "INFO", rec["level"])
	assert.Equal(t, "points", rec["reward_type"])
	assert.Equal(t, float64(2), rec["remaining"])
	assert.NotContains(t, rec, slog.SourceKey)
}

func TestInitLogger_AddSource(t *testing.T) {
	var buf bytes.Buffer
	InitLoggerWithWriter(NewConfig("debug", "json", "svc", "dev", EnvironmentDev, true), &buf)

	slog.Default().Debug("loaded wheel config")

	assert.Contains(t, decodeRecord(t, &buf), slog.SourceKey)
}

func TestConfig_LogLevel(t *testing.T) {
	tests := []struct {
		level string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"verbose", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			assert.Equal(t, tt.want, Config{Level: tt.level}.LogLevel())
		})
	}
}

func TestConfig_IsJSON(t *testing.T) {
	assert.True(t, Config{Format: "JSON"}.IsJSON())
	assert.False(t, Config{Format: LogFormatText}.IsJSON())
	assert.False(t, Config{}.IsJSON())
}

func TestInitLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	InitLoggerWithWriter(Config{Level: "warn", Format: "text"}, &buf)

	slog.Default().Info("quota checked")
	assert.Zero(t, buf.Len(), "info is dropped at warn level")

	slog.Default().Warn("daily limit reached")
	assert.Contains(t, buf.String(), "daily limit reached")
}

func TestRequestIDContext(t *testing.T) {
	id, ok := RequestIDFromContext(context.Background())
	assert.False(t, ok)
	assert.Empty(t, id)

	generated := GenerateRequestID()
	assert.Len(t, generated, 36)
	assert.NotEqual(t, generated, GenerateRequestID())

	id, ok = RequestIDFromContext(WithRequestID(context.Background(), "req-42"))
	assert.True(t, ok)
	assert.Equal(t, "req-42", id)
}

func TestFromContext(t *testing.T) {
	var buf bytes.Buffer
	InitLoggerWithWriter(Config{Level: "debug", Format: "json", ServiceName: "svc"}, &buf)

	FromContext(WithRequestID(context.Background(), "req-42")).Debug("spin started")
	assert.Equal(t, "req-42", decodeRecord(t, &buf)[AttrKeyRequestID])

	buf.Reset()
	FromContext(context.Background()).Debug("no request")
	assert.NotContains(t, decodeRecord(t, &buf), AttrKeyRequestID)
}
