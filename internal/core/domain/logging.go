package domain

import (
	"log/slog"
	"strings"

	"go.trai.ch/zerr"
)

// LoggingLevel is the user-selected diagnostic verbosity.
type LoggingLevel int

const (
	// LoggingLevelOff disables all diagnostics.
	LoggingLevelOff LoggingLevel = iota
	// LoggingLevelFatal only reports unrecoverable failures.
	LoggingLevelFatal
	// LoggingLevelError reports failures.
	LoggingLevelError
	// LoggingLevelWarn reports failures and suspicious state.
	LoggingLevelWarn
	// LoggingLevelInfo is the default verbosity.
	LoggingLevelInfo
	// LoggingLevelVerbose adds diagnostics about skipped work.
	LoggingLevelVerbose
	// LoggingLevelTrace reports everything.
	LoggingLevelTrace
)

var loggingLevelNames = [...]string{"off", "fatal", "error", "warn", "info", "verbose", "trace"}

// String returns the lowercase name of the level.
func (l LoggingLevel) String() string {
	if l < LoggingLevelOff || int(l) >= len(loggingLevelNames) {
		return "info"
	}
	return loggingLevelNames[l]
}

// ParseLoggingLevel maps a case-insensitive level name to a LoggingLevel.
// An empty name yields LoggingLevelInfo.
func ParseLoggingLevel(name string) (LoggingLevel, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return LoggingLevelInfo, nil
	}
	for i, n := range loggingLevelNames {
		if n == key {
			return LoggingLevel(i), nil
		}
	}
	return LoggingLevelInfo, zerr.With(zerr.Wrap(ErrUnknownLoggingLevel, "parse logging level"), "level", name)
}

// SlogLevel returns the minimum slog level that should be emitted.
func (l LoggingLevel) SlogLevel() slog.Level {
	switch {
	case l >= LoggingLevelVerbose:
		return slog.LevelDebug
	case l == LoggingLevelInfo:
		return slog.LevelInfo
	case l == LoggingLevelWarn:
		return slog.LevelWarn
	case l == LoggingLevelOff:
		// Above every level the logger emits.
		return slog.LevelError + 4
	default:
		return slog.LevelError
	}
}
