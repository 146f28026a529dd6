package app

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_Levels(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		level string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelWarn},
		{"chatty", slog.LevelWarn},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.level, func(t *testing.T) {
			t.Parallel()

			logger := newLogger(tc.level, "text", &bytes.Buffer{})

			ctx := context.Background()
			assert.True(t, logger.Enabled(ctx, tc.want))
			assert.False(t, logger.Enabled(ctx, tc.want-1))
		})
	}
}

func TestNewLogger_JSON(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	logger := newLogger("info", "json", buf)

	logger.Info("hello", "n", 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "hello", entry["msg"])
	assert.Equal(t, "prodcat", entry["app"])
}
