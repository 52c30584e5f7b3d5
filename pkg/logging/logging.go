// Package logging configures diagnostic logging for releasegate.
//
// Logs are JSON lines on stderr, tagged with the module name and build version.
// The level comes from LOG_LEVEL unless set explicitly. Check results are not
// logged; they are printed by the output package.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// EnvVar names the environment variable that sets the log level.
const EnvVar = "LOG_LEVEL"

// DefaultLevel keeps the CLI quiet unless something goes wrong.
const DefaultLevel = slog.LevelWarn

// ParseLevel converts a level name to a slog.Level.
// Unknown or empty names fall back to DefaultLevel.
func ParseLevel(name string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return DefaultLevel
	}
}

// NewStructuredLogger returns a JSON logger writing to w.
// Debug loggers include the source location.
func NewStructuredLogger(w io.Writer, module, version string, level slog.Level) *slog.Logger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:     level,
		AddSource: level <= slog.LevelDebug,
	})
	return slog.New(handler).With("module", module, "version", version)
}

// SetDefaultStructuredLogger installs a stderr logger as the slog default.
// An empty level name defers to LOG_LEVEL.
func SetDefaultStructuredLogger(module, version, level string) {
	if level == "" {
		level = os.Getenv(EnvVar)
	}
	slog.SetDefault(NewStructuredLogger(os.Stderr, module, version, ParseLevel(level)))
}
