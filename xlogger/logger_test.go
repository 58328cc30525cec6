package xlogger

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name     string
		conf     Config
		expected slog.Handler
	}{
		{
			name:     "JSON handler",
			conf:     Config{Level: "debug", LogType: "json", AddSource: true},
			expected: &slog.JSONHandler{},
		},
		{
			name:     "text handler",
			conf:     Config{Level: "info", LogType: "text"},
			expected: &slog.TextHandler{},
		},
		{
			name:     "unknown type falls back to text",
			conf:     Config{Level: "warn", LogType: "unknown"},
			expected: &slog.TextHandler{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := New(tt.conf)
			require.NotNil(t, logger)
			assert.IsType(t, tt.expected, logger.Handler())
		})
	}
}

func TestNewWritesToOutput(t *testing.T) {
	var buf bytes.Buffer

	logger := New(Config{Level: "info", LogType: "json", Output: &buf})
	logger.Debug("hidden")
	logger.Info("reconstructed", slog.String("constant", "3"), Err(errors.New("boom")))

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "reconstructed", record["msg"])
	assert.Equal(t, "3", record["constant"])
	assert.Equal(t, "boom", record["error"])
	assert.NotContains(t, buf.String(), "hidden")
}

func TestDiscard(t *testing.T) {
	logger := Discard()
	assert.False(t, logger.Enabled(t.Context(), slog.LevelError))
}

func TestErr(t *testing.T) {
	assert.Equal(t, slog.String("error", "boom"), Err(errors.New("boom")))
	assert.Equal(t, slog.String("error", ""), Err(nil))
}

func TestGetLogLevel(t *testing.T) {
	tests := []struct {
		logLevel string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"unknown", slog.LevelInfo},
		{"DEBUG", slog.LevelDebug},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.logLevel, func(t *testing.T) {
			assert.Equal(t, tt.expected, getLogLevel(tt.logLevel))
		})
	}
}

func TestReplaceAttr(t *testing.T) {
	source := &slog.Source{
		File: "/home/build/src/github.com/vitalvas/sharerecon/shamir/lagrange.go",
		Line: 42,
	}

	tests := []struct {
		name     string
		conf     Config
		attr     slog.Attr
		expected slog.Attr
	}{
		{
			name:     "relative source path",
			conf:     Config{SourcePath: "github.com/vitalvas/sharerecon/"},
			attr:     slog.Any(slog.SourceKey, source),
			expected: slog.String("source", "shamir/lagrange.go:42"),
		},
		{
			name:     "full source path",
			conf:     Config{SourcePath: "/home/build/src/github.com/vitalvas/sharerecon/"},
			attr:     slog.Any(slog.SourceKey, source),
			expected: slog.String("source", "shamir/lagrange.go:42"),
		},
		{
			name:     "no source path",
			conf:     Config{},
			attr:     slog.Any(slog.SourceKey, source),
			expected: slog.String("source", "/home/build/src/github.com/vitalvas/sharerecon/shamir/lagrange.go:42"),
		},
		{
			name:     "non-source attribute unchanged",
			conf:     Config{},
			attr:     slog.String("non-source", "test"),
			expected: slog.String("non-source", "test"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := replaceAttr(tt.conf)(nil, tt.attr)
			assert.Equal(t, tt.expected, result)
		})
	}
}
