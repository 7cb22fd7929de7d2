// Package logger wraps zerolog.Logger with the constructors and
// context helpers used by the server.
//
// Logger embeds zerolog.Logger, so Debug, Info, Warn, Error and friends are
// available directly. Request handlers obtain a request-scoped logger with
// FromContext; the request logging middleware attaches one with WithContext.
package logger

import (
	"context"
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Logger is a thin wrapper around zerolog.Logger.
type Logger struct {
	zerolog.Logger
}

// NewLogger returns a JSON logger writing to stdout at the given level.
// An unknown level falls back to info.
func NewLogger(level string) *Logger {
	return New(os.Stdout, level)
}

// New returns a JSON logger writing to w at the given level.
func New(w io.Writer, level string) *Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	l := zerolog.New(w).Level(lvl).With().
		Str("service", "aircnc").
		Timestamp().
		Logger()

	return &Logger{l}
}

// Nop returns a Logger that discards everything. Used in tests.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// With returns a child logger carrying an extra string field.
func (l *Logger) With(key, value string) *Logger {
	return &Logger{l.Logger.With().Str(key, value).Logger()}
}

// WithContext returns a copy of ctx carrying l.
func (l *Logger) WithContext(ctx context.Context) context.Context {
	return l.Logger.WithContext(ctx)
}

// FromContext returns the logger stored in ctx. When ctx carries none, the
// zerolog default (disabled) logger is returned, never nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*zerolog.Ctx(ctx)}
}
