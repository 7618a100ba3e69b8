package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/g-m-twostay/bintree/config"
)

func newLogger(cfg config.LoggingConfig, w io.Writer, verbose bool) (*slog.Logger, error) {
	var level slog.Level

	err := level.UnmarshalText([]byte(cfg.Level))
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}

	if verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{Level: level}

	if strings.EqualFold(cfg.Format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}

	return slog.New(slog.NewTextHandler(w, opts)), nil
}
