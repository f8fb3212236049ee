package iologger

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/gnames/conslaw/pkg/config"
	"github.com/gnames/conslaw/pkg/errcode"
	"github.com/gnames/gn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		level string
		res   slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"unknown", slog.LevelInfo},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.res, parseLevel(tt.level), tt.level)
	}
}

// TestInit_File verifies log records go to the log file and
// that append mode keeps previous records.
func TestInit_File(t *testing.T) {
	defer slog.SetDefault(slog.Default())

	logDir := t.TempDir()
	cfg := config.LogConfig{
		Format:      "json",
		Level:       "info",
		Destination: "file",
	}

	err := Init(logDir, cfg, false)
	require.NoError(t, err)
	slog.Info("first run")

	err = Init(logDir, cfg, true)
	require.NoError(t, err)
	slog.Info("second run")
	slog.Debug("hidden")

	content, err := os.ReadFile(filepath.Join(logDir, LogFile))
	require.NoError(t, err)
	assert.Contains(t, string(content), "first run")
	assert.Contains(t, string(content), "second run")
	assert.NotContains(t, string(content), "hidden")

	err = Init(logDir, cfg, false)
	require.NoError(t, err)
	content, err = os.ReadFile(filepath.Join(logDir, LogFile))
	require.NoError(t, err)
	assert.Empty(t, content, "fresh run truncates the log")
}

func TestInit_BadDir(t *testing.T) {
	cfg := config.LogConfig{Destination: "file"}
	err := Init(filepath.Join(t.TempDir(), "none"), cfg, true)
	require.Error(t, err)

	gnErr, ok := err.(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, errcode.CreateLogFileError, gnErr.Code)
}

// TestInit_ClosesPrevious verifies a repeated Init closes the log file
// of the previous call.
func TestInit_ClosesPrevious(t *testing.T) {
	defer slog.SetDefault(slog.Default())

	logDir := t.TempDir()
	cfg := config.LogConfig{Format: "json", Level: "info", Destination: "file"}

	require.NoError(t, Init(logDir, cfg, false))
	first, ok := logFile.(*os.File)
	require.True(t, ok)

	require.NoError(t, Init(logDir, cfg, true))
	_, err := first.Write([]byte("x"))
	assert.ErrorIs(t, err, os.ErrClosed)

	require.NoError(t, Init(logDir, config.LogConfig{Destination: "stderr"}, true))
	assert.Nil(t, logFile)
	require.NoError(t, Close())
}
