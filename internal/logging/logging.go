// Package logging writes a structured log file; the terminal belongs to the TUI.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
)

var (
	// Logger is the global logger instance. It discards until Init runs.
	Logger = log.New(io.Discard)

	logFile *os.File
)

// DefaultPath is ~/.forkify/logs/forkify-<date>.log.
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}
	name := fmt.Sprintf("forkify-%s.log", time.Now().Format("2006-01-02"))
	return filepath.Join(homeDir, ".forkify", "logs", name), nil
}

// Init opens path for appending (DefaultPath when empty) and points Logger
// at it.
func Init(path, level string) error {
	if path == "" {
		var err error
		if path, err = DefaultPath(); err != nil {
			return err
		}
	}
	lvl, err := ParseLevel(level)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	if logFile != nil {
		_ = logFile.Close()
	}
	logFile = f
	Logger = New(f, lvl)
	Logger.Info("forkify started", "path", path)
	return nil
}

// New builds a file-style logger on w.
func New(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Level:           level,
	})
}

// ParseLevel accepts debug, info, warn or error; empty means info.
func ParseLevel(level string) (log.Level, error) {
	if level == "" {
		return log.InfoLevel, nil
	}
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return log.InfoLevel, fmt.Errorf("parse log level %q: %w", level, err)
	}
	return lvl, nil
}

func Close() {
	if logFile == nil {
		return
	}
	Logger.Info("forkify shutting down")
	_ = logFile.Close()
	logFile = nil
	Logger = log.New(io.Discard)
}

func Info(msg string, keyvals ...any)  { Logger.Info(msg, keyvals...) }
func Debug(msg string, keyvals ...any) { Logger.Debug(msg, keyvals...) }
func Warn(msg string, keyvals ...any)  { Logger.Warn(msg, keyvals...) }
func Error(msg string, keyvals ...any) { Logger.Error(msg, keyvals...) }

// WithPrefix returns a component logger.
func WithPrefix(prefix string) *log.Logger {
	return Logger.WithPrefix(prefix)
}

// Discard is a logger that writes nowhere, for components built without one.
func Discard() *log.Logger {
	return log.New(io.Discard)
}
