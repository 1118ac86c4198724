// Package logger implements a logging adapter using log/slog.
package logger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.trai.ch/ccscope/internal/core/ports"
)

// Logger implements ports.Logger using log/slog.
type Logger struct {
	logger *slog.Logger
	level  slog.Level
	mu     sync.RWMutex
}

// New creates a new Logger instance.
func New() ports.Logger {
	// Use a text handler for human-readable output, writing to stderr as per 12-factor app guidelines
	return NewWithWriter(os.Stderr, slog.LevelInfo)
}

// NewWithWriter creates a Logger writing to w at the given level.
func NewWithWriter(w io.Writer, level slog.Level) *Logger {
	return &Logger{
		logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})),
		level:  level,
	}
}

// Discard returns a Logger that drops every record.
func Discard() *Logger {
	return NewWithWriter(io.Discard, slog.LevelError+1)
}

// OpenShim returns the logger of a shim process.
//
// A toolchain's stderr belongs to the wrapped build, so the shim never writes
// there. With an empty level nothing is logged; otherwise records are appended
// to path. The returned close function releases the file.
func OpenShim(path, level string) (*Logger, func() error) {
	noop := func() error { return nil }
	if level == "" {
		return Discard(), noop
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return Discard(), noop
	}
	//nolint:gosec // path is derived from the workspace root
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o640)
	if err != nil {
		return Discard(), noop
	}
	lg := NewWithWriter(f, ParseLevel(level))
	lg.logger = lg.logger.With("pid", os.Getpid())
	return lg, f.Close
}

// ParseLevel maps a level name to a slog level. Unknown names map to info.
func ParseLevel(name string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// SetOutput updates the logger's output destination.
// This is thread-safe and updates the underlying slog handler.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.logger = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: l.level}))
}

// Debug logs a debug message.
func (l *Logger) Debug(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Debug(msg)
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Info(msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Warn(msg)
}

// Error logs an error message.
func (l *Logger) Error(err error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Error("operation failed", "error", err)
}
