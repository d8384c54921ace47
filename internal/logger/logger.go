// Package logger builds the zerolog logger shared by the service.
package logger

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New returns a console logger for local runs and a JSON logger otherwise.
// An unknown level falls back to info.
func New(env, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}

	var base zerolog.Logger
	if env == "local" {
		base = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	} else {
		base = zerolog.New(os.Stderr)
	}

	return base.Level(lvl).With().Timestamp().Str("service", "coldtech-agenda").Logger()
}
