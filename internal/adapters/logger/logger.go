// Package logger implements a logging adapter using log/slog.
package logger

import (
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/charmbracelet/log"
	"go.trai.ch/projsync/internal/core/domain"
)

// Prefix is printed in front of every log line.
const Prefix = "projsync"

// Logger implements ports.Logger using log/slog with a charmbracelet/log handler.
type Logger struct {
	logger *slog.Logger
	mu     sync.RWMutex
	output io.Writer
	level  slog.Level
}

// New creates a new Logger writing to stderr at info level.
func New() *Logger {
	l := &Logger{
		output: os.Stderr,
		level:  slog.LevelInfo,
	}
	l.rebuild()
	return l
}

// rebuild replaces the slog logger. Callers must hold the write lock or own l exclusively.
func (l *Logger) rebuild() {
	handler := log.NewWithOptions(l.output, log.Options{
		Prefix: Prefix,
		Level:  log.Level(l.level),
	})
	l.logger = slog.New(handler)
}

// SetOutput updates the logger's output destination.
// If w is nil, os.Stderr is used as the default.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if w == nil {
		w = os.Stderr
	}
	l.output = w
	l.rebuild()
}

// SetLevel sets the minimum level that is written.
func (l *Logger) SetLevel(level domain.LoggingLevel) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.level = level.SlogLevel()
	l.rebuild()
}

// Debug logs a diagnostic message.
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

// Error logs err together with its cause chain.
func (l *Logger) Error(err error) {
	if err == nil {
		return
	}

	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Error(formatErrorEntries(collectErrorEntries(err)))
}
