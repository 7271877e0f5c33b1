// Package logger provides structured logging for the gstindex service
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Logger is a zerolog logger scoped to the index service. Sub-loggers for
// individual components are derived with Component; the level is carried per
// logger so tests and embedded uses do not fight over global state.
type Logger struct {
	zlog zerolog.Logger
}

// Config holds logger configuration
type Config struct {
	Level      string // debug, info, warn, error
	Pretty     bool   // pretty-print for development
	Output     io.Writer
	WithCaller bool
}

// New creates a structured logger for the service. Unknown or empty levels
// fall back to info.
func New(cfg Config) *Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stdout
	}
	if cfg.Pretty {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	zlog := zerolog.New(out).Level(level).With().
		Timestamp().
		Str("service", "gstindex").
		Logger()
	if cfg.WithCaller {
		zlog = zlog.With().Caller().Logger()
	}

	return &Logger{zlog: zlog}
}

// Nop returns a logger that discards everything. Used by tests and as the
// fallback when no logger is injected.
func Nop() *Logger {
	return &Logger{zlog: zerolog.Nop()}
}

// Component derives a logger tagged with a component name (grpc, index, http).
func (l *Logger) Component(name string) *Logger {
	return &Logger{zlog: l.zlog.With().Str("component", name).Logger()}
}

// Debug, Info, Warn, Error and Fatal start an event at the given level.
func (l *Logger) Debug() *zerolog.Event { return l.zlog.Debug() }
func (l *Logger) Info() *zerolog.Event  { return l.zlog.Info() }
func (l *Logger) Warn() *zerolog.Event  { return l.zlog.Warn() }
func (l *Logger) Error() *zerolog.Event { return l.zlog.Error() }
func (l *Logger) Fatal() *zerolog.Event { return l.zlog.Fatal() }

// Lifecycle starts an info event for a server lifecycle transition
// (server_start, server_ready, server_shutdown).
func (l *Logger) Lifecycle(event string) *zerolog.Event {
	return l.zlog.Info().Str("event", event)
}

// Request logs a completed gRPC request. Failed requests log at error level
// with the error attached.
func (l *Logger) Request(method string, duration time.Duration, err error) {
	ev := l.zlog.Info()
	if err != nil {
		ev = l.zlog.Error().Err(err)
	}
	ev.Str("method", method).
		Dur("duration_ms", duration).
		Msg("request completed")
}

// Op logs an index operation (insert, search, similar, aggregate) and its
// result count. Routine operations log at debug level, failures at error.
func (l *Logger) Op(operation string, duration time.Duration, results int, err error) {
	ev := l.zlog.Debug()
	if err != nil {
		ev = l.zlog.Error().Err(err)
	}
	ev.Str("operation", operation).
		Dur("duration_ms", duration).
		Int("result_count", results).
		Msg("index operation")
}
