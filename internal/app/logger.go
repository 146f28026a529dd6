package app

import (
	"io"
	"log/slog"
)

// newLogger builds an isolated slog.Logger writing to w; the global logger is
// left alone. Levels follow slog's names ("debug", "info", "warn", "error");
// anything else means warn so the interactive output stays quiet.
func newLogger(level, format string, w io.Writer) *slog.Logger {
	lvl := slog.LevelWarn
	if level != "" {
		if err := lvl.UnmarshalText([]byte(level)); err != nil {
			lvl = slog.LevelWarn
		}
	}

	opts := &slog.HandlerOptions{Level: lvl}
	if format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts)).With("app", "prodcat")
	}
	return slog.New(slog.NewTextHandler(w, opts)).With("app", "prodcat")
}
