package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Field is a structured logging key/value pair.
type Field struct {
	Key   string
	Value any
}

// String creates a string field.
func String(key, value string) Field { return Field{Key: key, Value: value} }

// Int creates an int field.
func Int(key string, value int) Field { return Field{Key: key, Value: value} }

// Int64 creates an int64 field.
func Int64(key string, value int64) Field { return Field{Key: key, Value: value} }

// Uint64 creates a uint64 field.
func Uint64(key string, value uint64) Field { return Field{Key: key, Value: value} }

// Float64 creates a float64 field.
func Float64(key string, value float64) Field { return Field{Key: key, Value: value} }

// Dur creates a duration field.
func Dur(key string, value time.Duration) Field { return Field{Key: key, Value: value} }

// Err creates an error field with the conventional "error" key.
func Err(err error) Field { return Field{Key: "error", Value: err} }

// Logger is the unified logging interface used across components. It keeps
// call sites independent of the backing implementation.
type Logger interface {
	// Info logs an informational message with optional structured fields.
	Info(msg string, fields ...Field)
	// Error logs an error message with the causing error and optional fields.
	Error(msg string, err error, fields ...Field)
	// Debug logs a debug message with optional structured fields.
	Debug(msg string, fields ...Field)
	// Printf logs a formatted message at info level (log.Printf compatible).
	Printf(format string, args ...any)
	// Println logs its arguments at info level (log.Println compatible).
	Println(args ...any)
}

// ZerologAdapter implements Logger on top of a zerolog.Logger.
type ZerologAdapter struct {
	zl zerolog.Logger
}

// NewZerologAdapter wraps an existing zerolog.Logger.
func NewZerologAdapter(zl zerolog.Logger) *ZerologAdapter {
	return &ZerologAdapter{zl: zl}
}

// NewLogger creates a zerolog-backed Logger writing JSON lines to w with a
// component field attached to every event.
func NewLogger(w io.Writer, component string) *ZerologAdapter {
	zl := zerolog.New(w).With().Timestamp().Str("component", component).Logger()
	return &ZerologAdapter{zl: zl}
}

// NewDefaultLogger creates the process-wide default logger: human-readable
// console output on stderr.
func NewDefaultLogger() *ZerologAdapter {
	w := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	return &ZerologAdapter{zl: zerolog.New(w).With().Timestamp().Logger()}
}

// Info implements Logger.
func (a *ZerologAdapter) Info(msg string, fields ...Field) {
	a.applyFields(a.zl.Info(), fields).Msg(msg)
}

// Error implements Logger.
func (a *ZerologAdapter) Error(msg string, err error, fields ...Field) {
	a.applyFields(a.zl.Error().Err(err), fields).Msg(msg)
}

// Debug implements Logger.
func (a *ZerologAdapter) Debug(msg string, fields ...Field) {
	a.applyFields(a.zl.Debug(), fields).Msg(msg)
}

// Printf implements Logger.
func (a *ZerologAdapter) Printf(format string, args ...any) {
	a.zl.Info().Msgf(format, args...)
}

// Println implements Logger.
func (a *ZerologAdapter) Println(args ...any) {
	a.zl.Info().Msg(strings.TrimSuffix(fmt.Sprintln(args...), "\n"))
}

// applyFields attaches structured fields to a zerolog event, choosing the
// typed setter where one exists.
func (a *ZerologAdapter) applyFields(e *zerolog.Event, fields []Field) *zerolog.Event {
	for _, f := range fields {
		switch v := f.Value.(type) {
		case string:
			e = e.Str(f.Key, v)
		case int:
			e = e.Int(f.Key, v)
		case int64:
			e = e.Int64(f.Key, v)
		case uint64:
			e = e.Uint64(f.Key, v)
		case float64:
			e = e.Float64(f.Key, v)
		case bool:
			e = e.Bool(f.Key, v)
		case time.Duration:
			e = e.Dur(f.Key, v)
		case error:
			e = e.AnErr(f.Key, v)
		default:
			e = e.Interface(f.Key, v)
		}
	}
	return e
}

// StdLoggerAdapter implements Logger on top of the standard library logger,
// for callers that must interoperate with *log.Logger.
type StdLoggerAdapter struct {
	l *log.Logger
}

// NewStdLoggerAdapter wraps a standard library logger.
func NewStdLoggerAdapter(l *log.Logger) *StdLoggerAdapter {
	return &StdLoggerAdapter{l: l}
}

// Info implements Logger.
func (a *StdLoggerAdapter) Info(msg string, fields ...Field) {
	a.l.Printf("[INFO] %s%s", msg, formatFields(fields))
}

// Error implements Logger.
func (a *StdLoggerAdapter) Error(msg string, err error, fields ...Field) {
	if err != nil {
		a.l.Printf("[ERROR] %s: %v%s", msg, err, formatFields(fields))
		return
	}
	a.l.Printf("[ERROR] %s%s", msg, formatFields(fields))
}

// Debug implements Logger.
func (a *StdLoggerAdapter) Debug(msg string, fields ...Field) {
	a.l.Printf("[DEBUG] %s%s", msg, formatFields(fields))
}

// Printf implements Logger.
func (a *StdLoggerAdapter) Printf(format string, args ...any) {
	a.l.Printf(format, args...)
}

// Println implements Logger.
func (a *StdLoggerAdapter) Println(args ...any) {
	a.l.Println(args...)
}

func formatFields(fields []Field) string {
	if len(fields) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, f := range fields {
		fmt.Fprintf(&sb, " %s=%v", f.Key, f.Value)
	}
	return sb.String()
}
