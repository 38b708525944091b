// Package logging builds the planner's diagnostic logger. Diagnostics go to
// stderr so plans on stdout stay machine-readable.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// New creates the application logger: text handler on stderr, filtered at
// level. The "error" key is normalized to "err" for grep-friendly output.
func New(level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == "error" {
				a.Key = "err"
			}
			return a
		},
	}))
}

// NewNop returns a logger that discards everything.
func NewNop() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// ParseLevel maps a level name ("debug", "info", "warn", "error", any case)
// to its slog.Level. Unknown or empty names fall back to def.
func ParseLevel(name string, def slog.Level) slog.Level {
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
		return def
	}
}
