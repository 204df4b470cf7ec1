// Package logging provides structured logging for the CLI.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// NewLogger creates a console logger on stderr. Unknown levels fall back to
// warn so diagnostics never pollute rendered output by accident.
func NewLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.WarnLevel
	}

	writer := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}

	return zerolog.New(writer).
		Level(lvl).
		With().
		Timestamp().
		Str("component", "awsdsc").
		Logger()
}

// NewJSONLogger creates a JSON-formatted logger for file output or machine
// consumption.
func NewJSONLogger(w io.Writer, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.WarnLevel
	}

	return zerolog.New(w).
		Level(lvl).
		With().
		Timestamp().
		Str("component", "awsdsc").
		Logger()
}
