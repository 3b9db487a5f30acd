package config

import (
	"io"
	"log/slog"
	"os"
)

// NewLogger returns a slog.Logger for the named service.
// GO_ENV=production selects the JSON handler, anything else text.
// LOG_LEVEL accepts debug, info, warn, error (default info).
func NewLogger(service string) *slog.Logger {
	return newLogger(os.Stdout, service, os.Getenv("GO_ENV"), os.Getenv("LOG_LEVEL"))
}

func newLogger(w io.Writer, service, env, levelName string) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(levelName)); err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if env == "production" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler).With("service", service)
}
