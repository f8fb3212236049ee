// Package iologger provides slog-based logging initialization and configuration.
package iologger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gnames/conslaw/pkg/config"
)

// LogFile is the name of the log file inside the log directory.
const LogFile = "conslaw.log"

// logFile is the file opened by the latest Init, nil for stdout/stderr.
var logFile io.Closer

// Init initializes the global slog logger with the given configuration.
// Creates log file in logDir if destination is "file".
// If append is true, appends to existing log file; otherwise creates fresh file.
// A log file opened by a previous Init is closed.
func Init(logDir string, cfg config.LogConfig, append bool) error {
	writer, closer, err := newWriter(logDir, cfg.Destination, append)
	if err != nil {
		return err
	}

	handlerOpts := &slog.HandlerOptions{
		Level: parseLevel(cfg.Level),
	}

	var handler slog.Handler
	switch cfg.Format {
	case "text", "tint":
		handler = slog.NewTextHandler(writer, handlerOpts)
	default:
		handler = slog.NewJSONHandler(writer, handlerOpts)
	}

	slog.SetDefault(slog.New(handler))

	prev := logFile
	logFile = closer
	if prev != nil {
		return prev.Close()
	}
	return nil
}

// Close closes the log file, if any. Records logged afterwards are lost.
func Close() error {
	if logFile == nil {
		return nil
	}
	err := logFile.Close()
	logFile = nil
	return err
}

// newWriter returns the log destination and, for files, its closer.
func newWriter(logDir, dest string, append bool) (io.Writer, io.Closer, error) {
	switch dest {
	case "stdout":
		return os.Stdout, nil, nil
	case "file":
		logPath := filepath.Join(logDir, LogFile)
		flags := os.O_CREATE | os.O_WRONLY | os.O_TRUNC
		if append {
			flags = os.O_CREATE | os.O_WRONLY | os.O_APPEND
		}
		file, err := os.OpenFile(logPath, flags, 0644)
		if err != nil {
			return nil, nil, CreateLogFileError(logPath, err)
		}
		return file, file, nil
	default:
		return os.Stderr, nil, nil
	}
}

// parseLevel converts string level to slog.Level.
func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
