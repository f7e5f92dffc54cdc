package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"unknown", slog.LevelInfo}, // default
		{"", slog.LevelInfo},        // default
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := ParseLevel(tt.input)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestLogger_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "taskflow.log")
	logger := New(path, slog.LevelInfo)

	logger.Info("task added", "id", 3)
	logger.Debug("hidden")
	require.NoError(t, logger.Close())

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "INF")
	assert.Contains(t, string(content), "task added")
	assert.Contains(t, string(content), "id=3")
	assert.NotContains(t, string(content), "hidden")
}

func TestLogger_EmptyPathDiscards(t *testing.T) {
	logger := New("", slog.LevelDebug)
	logger.Info("nowhere")
	assert.NoError(t, logger.Close())
}
