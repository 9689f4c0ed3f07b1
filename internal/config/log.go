package config

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// SlogLevel parses LogLevel (debug, info, warn, error).
func (c Config) SlogLevel() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.ToLower(c.LogLevel))); err != nil {
		return lvl, fmt.Errorf("%w: log level %q", ErrInvalid, c.LogLevel)
	}

	return lvl, nil
}

// NewLogger returns a logger writing to w at the configured level, as
// logfmt text or, when asJSON is set, one JSON object per line.
func (c Config) NewLogger(w io.Writer, asJSON bool) *slog.Logger {
	lvl, err := c.SlogLevel()
	if err != nil {
		lvl = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: lvl}
	if asJSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}

	return slog.New(slog.NewTextHandler(w, opts))
}
