package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/KirkDiggler/ballmer/internal/config"
)

// setupLogger configures the logger based on configuration. Logs go to stderr
// unless a file is configured, so chart output on stdout stays clean.
func setupLogger(cfg config.LoggingConfig) (zerolog.Logger, func(), error) {
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = zerolog.DebugLevel
	case "info":
		level = zerolog.InfoLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	var (
		out     io.Writer = os.Stderr
		cleanup           = func() {}
	)
	if cfg.File != "" {
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return zerolog.Nop(), cleanup, fmt.Errorf("failed to open log file: %w", err)
		}
		out = f
		cleanup = func() { _ = f.Close() }
	}

	if strings.EqualFold(cfg.Format, "text") {
		return zerolog.New(zerolog.ConsoleWriter{Out: out, NoColor: cfg.File != ""}).With().Timestamp().Logger(), cleanup, nil
	}

	return zerolog.New(out).With().Timestamp().Logger(), cleanup, nil
}
