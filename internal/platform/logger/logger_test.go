package logger_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/phrazzld/clinic-api/internal/config"
	"github.com/phrazzld/clinic-api/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name   string
		want   slog.Level
		wantOK bool
	}{
		{"debug", slog.LevelDebug, true},
		{"INFO", slog.LevelInfo, true},
		{"warn", slog.LevelWarn, true},
		{"error", slog.LevelError, true},
		{"", slog.LevelInfo, true},
		{"verbose", slog.LevelInfo, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := logger.ParseLevel(tc.name)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.wantOK, ok)
		})
	}
}

func TestSetupWithWriter(t *testing.T) {
	original := slog.Default()
	defer slog.SetDefault(original)

	buf := &logger.TestLogBuffer{}
	l, err := logger.SetupWithWriter(config.ServerConfig{LogLevel: "warn", Environment: "test"}, buf)
	require.NoError(t, err)
	require.NotNil(t, l)

	l.Info("suppressed")
	l.Warn("visible", "reservation_id", 6)

	entries, err := buf.Entries()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "visible", entries[0]["msg"])
	assert.Equal(t, "clinic-api", entries[0]["service"])
	assert.Equal(t, "test", entries[0]["env"])
	assert.EqualValues(t, 6, entries[0]["reservation_id"])

	assert.Same(t, l, slog.Default(), "Setup should install the default logger")
}

func TestServiceHandlerWithGroup(t *testing.T) {
	buf := &logger.TestLogBuffer{}
	h := logger.NewServiceHandler(slog.NewJSONHandler(buf, nil), map[string]string{"service": "clinic-api", "env": ""})
	l := slog.New(h).WithGroup("request").With("method", "GET")

	l.Info("handled")

	entries, err := buf.Entries()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "clinic-api", entries[0]["service"])
	assert.NotContains(t, entries[0], "env", "empty metadata is dropped")
	group, ok := entries[0]["request"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "GET", group["method"])
}

func TestFromContextOrDefault(t *testing.T) {
	def, _ := logger.NewTestLogger(t)
	scoped, buf := logger.NewTestLogger(t)

	assert.Same(t, def, logger.FromContextOrDefault(context.Background(), def))

	ctx := logger.WithLogger(context.Background(), scoped)
	got := logger.FromContextOrDefault(ctx, def)
	assert.Same(t, scoped, got)

	got.Debug("scoped message")
	assert.Contains(t, buf.String(), "scoped message")

	assert.Same(t, slog.Default(), logger.FromContextOrDefault(context.Background(), nil))
	assert.Same(t, slog.Default(), logger.FromContext(context.Background()))
}
