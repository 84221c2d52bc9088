// Package logging wraps zerolog behind a small key-value API shared by
// every component. Child loggers carry bound fields; request-scoped
// loggers travel in the context.
package logging

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Logger wraps zerolog.Logger with variadic key-value convenience methods.
type Logger struct {
	zl     zerolog.Logger
	fields map[string]interface{}
}

var global *Logger

func init() {
	global = NewDevelopment()
}

// NewProduction creates a JSON logger at info level.
func NewProduction() *Logger {
	zl := zerolog.New(os.Stdout).
		Level(zerolog.InfoLevel).
		With().
		Timestamp().
		Logger()

	return &Logger{zl: zl, fields: make(map[string]interface{})}
}

// NewDevelopment creates a pretty console logger at debug level.
func NewDevelopment() *Logger {
	output := zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: time.RFC3339,
	}

	zl := zerolog.New(output).
		Level(zerolog.DebugLevel).
		With().
		Timestamp().
		Logger()

	return &Logger{zl: zl, fields: make(map[string]interface{})}
}

// NewWithWriter creates a logger with a custom writer.
func NewWithWriter(w io.Writer, level zerolog.Level) *Logger {
	zl := zerolog.New(w).
		Level(level).
		With().
		Timestamp().
		Logger()

	return &Logger{zl: zl, fields: make(map[string]interface{})}
}

// SetGlobal replaces the global logger instance.
func SetGlobal(logger *Logger) {
	global = logger
}

// Global returns the global logger instance.
func Global() *Logger {
	return global
}

// applyFields writes bound fields plus the call's key-value pairs to an
// event. Values under the "error" key are flattened to their message.
func (l *Logger) applyFields(e *zerolog.Event, fields []interface{}) {
	for k, v := range l.fields {
		e.Interface(k, v)
	}
	for i := 0; i+1 < len(fields); i += 2 {
		key, ok := fields[i].(string)
		if !ok {
			continue
		}
		if key == "error" {
			if err, isErr := fields[i+1].(error); isErr {
				e.Str(key, err.Error())
				continue
			}
		}
		e.Interface(key, fields[i+1])
	}
}

// Debug logs a debug message.
func (l *Logger) Debug(msg string, fields ...interface{}) {
	e := l.zl.Debug()
	l.applyFields(e, fields)
	e.Msg(msg)
}

// Info logs an info message.
func (l *Logger) Info(msg string, fields ...interface{}) {
	e := l.zl.Info()
	l.applyFields(e, fields)
	e.Msg(msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string, fields ...interface{}) {
	e := l.zl.Warn()
	l.applyFields(e, fields)
	e.Msg(msg)
}

// Error logs an error message.
func (l *Logger) Error(msg string, fields ...interface{}) {
	e := l.zl.Error()
	l.applyFields(e, fields)
	e.Msg(msg)
}

// Fatal logs a fatal message and exits.
func (l *Logger) Fatal(msg string, fields ...interface{}) {
	e := l.zl.Fatal()
	l.applyFields(e, fields)
	e.Msg(msg)
}

// With creates a child logger with additional bound fields.
func (l *Logger) With(fields ...interface{}) *Logger {
	newFields := make(map[string]interface{}, len(l.fields)+len(fields)/2)
	for k, v := range l.fields {
		newFields[k] = v
	}
	for i := 0; i+1 < len(fields); i += 2 {
		if key, ok := fields[i].(string); ok {
			newFields[key] = fields[i+1]
		}
	}

	return &Logger{zl: l.zl, fields: newFields}
}

// WithContext returns a logger enriched with context fields.
func (l *Logger) WithContext(ctx context.Context) *Logger {
	fields := extractContextFields(ctx)
	if len(fields) == 0 {
		return l
	}
	return l.With(fields...)
}

// Global convenience functions

// Debug logs a debug message using the global logger.
func Debug(msg string, fields ...interface{}) {
	global.Debug(msg, fields...)
}

// Info logs an info message using the global logger.
func Info(msg string, fields ...interface{}) {
	global.Info(msg, fields...)
}

// Warn logs a warning message using the global logger.
func Warn(msg string, fields ...interface{}) {
	global.Warn(msg, fields...)
}

// Error logs an error message using the global logger.
func Error(msg string, fields ...interface{}) {
	global.Error(msg, fields...)
}

// Fatal logs a fatal message and exits using the global logger.
func Fatal(msg string, fields ...interface{}) {
	global.Fatal(msg, fields...)
}

// With creates a child of the global logger with bound fields.
func With(fields ...interface{}) *Logger {
	return global.With(fields...)
}

// Field constructors returning key-value pairs.

// String creates a string field.
func String(key, val string) (string, interface{}) {
	return key, val
}

// Int creates an int field.
func Int(key string, val int) (string, interface{}) {
	return key, val
}

// Float64 creates a float64 field.
func Float64(key string, val float64) (string, interface{}) {
	return key, val
}

// Err creates an error field.
func Err(err error) (string, interface{}) {
	return "error", err
}

// Duration creates a duration field.
func Duration(key string, val time.Duration) (string, interface{}) {
	return key, val
}
