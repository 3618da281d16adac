// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package logger builds the structured logger shared by every component.

Output format follows the environment:

  - development: human-readable console lines (zerolog.ConsoleWriter).
  - anything else: one JSON object per line.

The logger is created once at startup and passed down through constructors.
*/
package logger

import (
	"io"
	"time"

	"github.com/rs/zerolog"

	"github.com/taibuivan/mhinfo/internal/platform/config"
	"github.com/taibuivan/mhinfo/internal/platform/constants"
)

// New returns a logger writing to out, configured from cfg.
func New(cfg *config.Config, out io.Writer) zerolog.Logger {
	level := zerolog.InfoLevel
	if cfg.Debug {
		level = zerolog.DebugLevel
	}

	writer := out
	if cfg.IsDevelopment() {
		writer = zerolog.ConsoleWriter{Out: out, TimeFormat: time.Kitchen}
	}

	return zerolog.New(writer).
		Level(level).
		With().
		Timestamp().
		Str("app", constants.AppName).
		Logger()
}

// Nop returns a disabled logger, used by tests and by callers that opt out.
func Nop() zerolog.Logger {
	return zerolog.Nop()
}
