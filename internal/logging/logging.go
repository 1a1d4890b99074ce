// Package logging builds the JSON slog logger shared by the pantry service and
// shell.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// New creates the pantry logger at level. With no logFile it writes JSON to
// stderr; with one, records go only to the file so they do not interleave with
// the interactive shell on the terminal. The logger becomes the slog default.
// The returned cleanup func closes the log file; callers must defer it.
func New(level, logFile string) (*slog.Logger, func(), error) {
	if logFile == "" {
		return build(os.Stderr, level), func() {}, nil
	}

	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		return nil, nil, err
	}
	return build(f, level), func() { _ = f.Close() }, nil
}

func build(w io.Writer, level string) *slog.Logger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: parseLevel(level)})
	logger := slog.New(handler).With("app", "pantry")
	slog.SetDefault(logger)
	return logger
}

// Component tags every record from logger with the emitting component, e.g.
// "service" or "shell".
func Component(logger *slog.Logger, name string) *slog.Logger {
	return logger.With("component", name)
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

// parseLevel accepts the slog level names in any case, including offsets such
// as "warn+2". Anything else is info.
func parseLevel(s string) slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo
	}
	return lvl
}
