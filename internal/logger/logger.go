package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New returns a zerolog logger writing human-readable lines to w.
func New(w io.Writer, debug bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}

	console := zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly}
	return zerolog.New(console).
		Level(level).
		With().
		Timestamp().
		Logger()
}

// NewStderr is New on os.Stderr.
func NewStderr(debug bool) zerolog.Logger {
	return New(os.Stderr, debug)
}

// Component tags every event of l with the given component name.
func Component(l zerolog.Logger, name string) zerolog.Logger {
	return l.With().Str("component", name).Logger()
}
