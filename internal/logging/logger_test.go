package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"task-planner/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestResolveLevel(t *testing.T) {
	t.Setenv("TP_DEBUG", "")
	t.Setenv("DEBUG", "")

	tests := []struct {
		name        string
		cfg         config.LoggingConfig
		expected    zapcore.Level
		expectError bool
	}{
		{"default", config.LoggingConfig{}, zapcore.InfoLevel, false},
		{"warn", config.LoggingConfig{Level: "warn"}, zapcore.WarnLevel, false},
		{"debug flag wins", config.LoggingConfig{Level: "error", Debug: true}, zapcore.DebugLevel, false},
		{"unknown", config.LoggingConfig{Level: "chatty"}, zapcore.InfoLevel, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			level, err := ResolveLevel(tt.cfg)
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, level)
		})
	}
}

func TestResolveLevel_Environment(t *testing.T) {
	t.Setenv("TP_DEBUG", "1")
	level, err := ResolveLevel(config.LoggingConfig{Level: "error"})
	require.NoError(t, err)
	assert.Equal(t, zapcore.DebugLevel, level)
}

func TestNewLogger_Console(t *testing.T) {
	t.Setenv("TP_DEBUG", "")
	t.Setenv("DEBUG", "")

	var buf bytes.Buffer
	logger, err := newLogger(config.LoggingConfig{Level: "info"}, zapcore.AddSync(&buf))
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("task created", zap.Int64("id", 7))
	require.NoError(t, logger.Sync())

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "task created")
}

func TestNewLogger_File(t *testing.T) {
	t.Setenv("TP_DEBUG", "")
	t.Setenv("DEBUG", "")

	path := filepath.Join(t.TempDir(), "logs", "app.log")
	var console bytes.Buffer
	logger, err := newLogger(config.LoggingConfig{Level: "info", File: path, MaxSizeMB: 1}, zapcore.AddSync(&console))
	require.NoError(t, err)

	logger.Warn("disk almost full")
	require.NoError(t, logger.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"disk almost full"`)
	assert.Contains(t, console.String(), "disk almost full")
}

func TestNew_InvalidLevel(t *testing.T) {
	t.Setenv("TP_DEBUG", "")
	t.Setenv("DEBUG", "")

	_, err := New(config.LoggingConfig{Level: "loud"})
	assert.Error(t, err)
}

func TestMeasure(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := zap.New(core)

	done := Measure(logger, "search tasks")
	done()

	entries := logs.FilterMessage("operation finished").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "search tasks", entries[0].ContextMap()["operation"])
	assert.Contains(t, entries[0].ContextMap(), "elapsed")
}
