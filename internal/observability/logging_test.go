package observability

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/harkonenbade/jadepunk/internal/config"
)

func TestNewLogger_Formats(t *testing.T) {
	for _, format := range []string{"json", "console"} {
		logger, err := NewLogger(config.LoggingConfig{Level: "info", Format: format, Output: "stderr"})
		require.NoError(t, err, "format %q should be valid", format)
		assert.NotNil(t, logger)
	}
}

func TestNewLogger_Rejects(t *testing.T) {
	tests := map[string]config.LoggingConfig{
		"unknown level":  {Level: "trace", Format: "json"},
		"unknown format": {Level: "info", Format: "xml"},
		"bad output":     {Level: "info", Format: "json", Output: filepath.Join(t.TempDir(), "missing", "dir", "x.log")},
	}
	for name, cfg := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := NewLogger(cfg)
			assert.Error(t, err)
		})
	}
}

func TestNewLogger_LevelFilters(t *testing.T) {
	levels := map[string]zapcore.Level{
		"debug": zapcore.DebugLevel,
		"info":  zapcore.InfoLevel,
		"warn":  zapcore.WarnLevel,
		"error": zapcore.ErrorLevel,
	}
	for name, level := range levels {
		logger, err := NewLogger(config.LoggingConfig{Level: name, Format: "json"})
		require.NoError(t, err, "level %q should be valid", name)
		assert.True(t, logger.Core().Enabled(level), name)
		assert.False(t, logger.Core().Enabled(level-1), name)
	}
}

func TestNewLogger_FileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jadepunk.log")
	logger, err := NewLogger(config.LoggingConfig{Level: "info", Format: "json", Output: path})
	require.NoError(t, err)

	logger.Info("validated character")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"validated character"`)
	assert.Contains(t, string(data), `"logger":"jadepunk"`)
}
