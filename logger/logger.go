// Package logger provides the structured logging facade used by the
// documentation server and example hosts.
package logger

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Logger is the contract for structured logging.
type Logger interface {
	Debug() *zerolog.Event
	Info() *zerolog.Event
	Warn() *zerolog.Event
	Error() *zerolog.Event
	Fatal() *zerolog.Event
	WithFields(fields map[string]any) Logger
}

// ZeroLogger implements Logger on top of zerolog.
type ZeroLogger struct {
	zlog zerolog.Logger
}

var _ Logger = (*ZeroLogger)(nil)

// New creates a logger at the given level. An unparseable level falls back to
// info. If pretty is true, output is console formatted instead of JSON.
func New(level string, pretty bool) *ZeroLogger {
	var l zerolog.Logger
	if pretty {
		l = zerolog.New(zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: time.RFC3339,
		}).With().Timestamp().Logger()
	} else {
		l = zerolog.New(os.Stdout).With().Timestamp().Logger()
	}

	zLevel, err := zerolog.ParseLevel(level)
	if err != nil {
		zLevel = zerolog.InfoLevel
	}
	return &ZeroLogger{zlog: l.Level(zLevel)}
}

// Debug starts a debug-level event.
func (z *ZeroLogger) Debug() *zerolog.Event { return z.zlog.Debug() }

// Info starts an info-level event.
func (z *ZeroLogger) Info() *zerolog.Event { return z.zlog.Info() }

// Warn starts a warn-level event.
func (z *ZeroLogger) Warn() *zerolog.Event { return z.zlog.Warn() }

// Error starts an error-level event.
func (z *ZeroLogger) Error() *zerolog.Event { return z.zlog.Error() }

// Fatal starts a fatal-level event; sending it exits the process.
func (z *ZeroLogger) Fatal() *zerolog.Event { return z.zlog.Fatal() }

// WithFields returns a logger with fields attached to every event.
func (z *ZeroLogger) WithFields(fields map[string]any) Logger {
	ctx := z.zlog.With()
	for k, v := range fields {
		ctx = ctx.Interface(k, v)
	}
	return &ZeroLogger{zlog: ctx.Logger()}
}
