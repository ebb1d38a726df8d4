// Package logging configures structured logging with log/slog.
//
// Usage:
//
//	logger := logging.Setup(logging.Options{Level: "debug"})  // colored text via tint
//	logger := logging.Setup(logging.Options{Format: "json"})  // one JSON object per line
//
// Environment variables:
//
//	LOG_LEVEL: debug, info, warn, error (default: info), used when Options.Level is empty
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// Options selects the handler.
type Options struct {
	// Level is debug, info, warn or error. Empty reads LOG_LEVEL.
	Level string
	// Format is "text" (colored, default) or "json".
	Format string
	// Output defaults to os.Stderr.
	Output io.Writer
}

// Setup builds a logger from opts, installs it as the slog default and returns it.
func Setup(opts Options) *slog.Logger {
	logger := New(opts)
	slog.SetDefault(logger)
	return logger
}

// New builds a logger from opts without touching the default.
func New(opts Options) *slog.Logger {
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}
	levelName := opts.Level
	if levelName == "" {
		levelName = os.Getenv("LOG_LEVEL")
	}
	level := ParseLevel(levelName)

	if strings.EqualFold(opts.Format, "json") {
		return slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{Level: level}))
	}
	return slog.New(tint.NewHandler(out, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
		AddSource:  level == slog.LevelDebug,
	}))
}

// ParseLevel maps a level name to a slog.Level, defaulting to INFO.
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
