package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New builds the service logger: JSON on stdout, or a debug-level console
// writer in development.
func New(development bool) zerolog.Logger {
	return NewWithWriter(development, os.Stdout)
}

func NewWithWriter(development bool, w io.Writer) zerolog.Logger {
	level := zerolog.InfoLevel
	if development {
		level = zerolog.DebugLevel
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339, NoColor: true}
	}
	return zerolog.New(w).
		Level(level).
		With().
		Timestamp().
		Str("service", "donations").
		Logger()
}
