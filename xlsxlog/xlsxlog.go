// Package xlsxlog is the logging collaborator every workbook build reports through:
// four levels, structured fields, never blocking and never panicking regardless of
// backend.
//
// Grounded on the rs/zerolog dependency present in uppercaveman-go-1/go.mod; no
// logging call in this pack's example repos is itself worth copying verbatim, so
// the field-based call shape here follows zerolog's own idiomatic usage
// (Str/Err/chained-event builder) rather than a specific file.
package xlsxlog

import "github.com/rs/zerolog"

// Field is one structured key/value pair attached to a log line.
type Field struct {
	Key string
	Value any
}

// F is shorthand for building a Field.
func F(key string, value any) Field { return Field{Key: key, Value: value} }

// Logger is the four-level structured logging capability a Workbook build reports
// progress and failures through.
type Logger interface {
	Debug(msg string, fields...Field)
	Info(msg string, fields...Field)
	Warn(msg string, fields...Field)
	Error(msg string, fields...Field)
}

// NoopLogger discards everything. It is the zero-value default so a Workbook with
// no configured logger never panics or blocks.
type NoopLogger struct{}

func (NoopLogger) Debug(string,...Field) {}
func (NoopLogger) Info(string,...Field) {}
func (NoopLogger) Warn(string,...Field) {}
func (NoopLogger) Error(string,...Field) {}

// ZerologLogger adapts a zerolog.Logger to the Logger interface.
type ZerologLogger struct {
	Underlying zerolog.Logger
}

// NewZerologLogger wraps an existing zerolog.Logger.
func NewZerologLogger(l zerolog.Logger) ZerologLogger {
	return ZerologLogger{Underlying: l}
}

func apply(e *zerolog.Event, fields []Field) *zerolog.Event {
	for _, f := range fields {
		switch v := f.Value.(type) {
		case error:
			e = e.AnErr(f.Key, v)
		case string:
			e = e.Str(f.Key, v)
		case int:
			e = e.Int(f.Key, v)
		case int64:
			e = e.Int64(f.Key, v)
		case uint32:
			e = e.Uint32(f.Key, v)
		case float64:
			e = e.Float64(f.Key, v)
		case bool:
			e = e.Bool(f.Key, v)
		default:
			e = e.Interface(f.Key, v)
		}
	}
	return e
}

func (l ZerologLogger) Debug(msg string, fields...Field) {
	apply(l.Underlying.Debug(), fields).Msg(msg)
}

func (l ZerologLogger) Info(msg string, fields...Field) {
	apply(l.Underlying.Info(), fields).Msg(msg)
}

func (l ZerologLogger) Warn(msg string, fields...Field) {
	apply(l.Underlying.Warn(), fields).Msg(msg)
}

func (l ZerologLogger) Error(msg string, fields...Field) {
	apply(l.Underlying.Error(), fields).Msg(msg)
}
