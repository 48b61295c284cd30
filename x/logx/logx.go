// Package logx is a small levelled logger that avoids fmt, so the default
// sink works with the print builtins on MCU builds. Hosts can swap the sink
// (the simulator installs a zerolog one).
package logx

import (
	"io"
	"strconv"
	"sync"
)

type Level uint8

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	default:
		return "error"
	}
}

// ParseLevel maps a config string to a Level; unknown strings map to info.
func ParseLevel(s string) Level {
	switch s {
	case "debug":
		return LevelDebug
	case "warn":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// ---- Fields ----

type fieldKind uint8

const (
	kindStr fieldKind = iota
	kindInt
	kindBool
)

// Field is a typed key/value pair. Only strings, ints and bools are carried
// so no sink needs reflection.
type Field struct {
	Key  string
	kind fieldKind
	s    string
	i    int64
	b    bool
}

func Str(k, v string) Field    { return Field{Key: k, kind: kindStr, s: v} }
func Int(k string, v int) Field { return Field{Key: k, kind: kindInt, i: int64(v)} }
func Bool(k string, v bool) Field {
	return Field{Key: k, kind: kindBool, b: v}
}

// Err renders err under key "err"; a nil error renders "nil".
func Err(err error) Field {
	if err == nil {
		return Str("err", "nil")
	}
	return Str("err", err.Error())
}

// Value returns the field value as string, int64 or bool.
func (f Field) Value() any {
	switch f.kind {
	case kindInt:
		return f.i
	case kindBool:
		return f.b
	default:
		return f.s
	}
}

// ---- Sinks ----

// Sink receives every entry at or above the configured level.
type Sink func(lvl Level, component, msg string, fields []Field)

// PrintSink writes "[component] level msg k=v ..." via the print builtins.
func PrintSink(lvl Level, component, msg string, fields []Field) {
	print("[", component, "] ", lvl.String(), " ", msg)
	for _, f := range fields {
		print(" ", f.Key, "=")
		switch f.kind {
		case kindInt:
			print(f.i)
		case kindBool:
			print(f.b)
		default:
			print(f.s)
		}
	}
	println()
}

// WriterSink writes the same line format as PrintSink to w, terminated by
// "\r\n" for serial consoles. Write errors are dropped.
func WriterSink(w io.Writer) Sink {
	return func(lvl Level, component, msg string, fields []Field) {
		buf := make([]byte, 0, 64)
		buf = append(buf, '[')
		buf = append(buf, component...)
		buf = append(buf, "] "...)
		buf = append(buf, lvl.String()...)
		buf = append(buf, ' ')
		buf = append(buf, msg...)
		for _, f := range fields {
			buf = append(buf, ' ')
			buf = append(buf, f.Key...)
			buf = append(buf, '=')
			switch f.kind {
			case kindInt:
				buf = strconv.AppendInt(buf, f.i, 10)
			case kindBool:
				buf = strconv.AppendBool(buf, f.b)
			default:
				buf = append(buf, f.s...)
			}
		}
		buf = append(buf, '\r', '\n')
		_, _ = w.Write(buf)
	}
}

// Tee fans every entry out to each sink in order.
func Tee(sinks ...Sink) Sink {
	return func(lvl Level, component, msg string, fields []Field) {
		for _, s := range sinks {
			s(lvl, component, msg, fields)
		}
	}
}

var (
	mu       sync.RWMutex
	sink     Sink = PrintSink
	minLevel      = LevelInfo
)

// SetSink replaces the process-wide sink. nil restores PrintSink.
func SetSink(s Sink) {
	if s == nil {
		s = PrintSink
	}
	mu.Lock()
	sink = s
	mu.Unlock()
}

// SetLevel sets the process-wide minimum level.
func SetLevel(l Level) {
	mu.Lock()
	minLevel = l
	mu.Unlock()
}

// ---- Logger ----

// Logger tags entries with a component name. The zero value logs under "".
type Logger struct {
	component string
}

func New(component string) Logger { return Logger{component: component} }

func (l Logger) Debug(msg string, fields ...Field) { l.log(LevelDebug, msg, fields) }
func (l Logger) Info(msg string, fields ...Field)  { l.log(LevelInfo, msg, fields) }
func (l Logger) Warn(msg string, fields ...Field)  { l.log(LevelWarn, msg, fields) }
func (l Logger) Error(msg string, fields ...Field) { l.log(LevelError, msg, fields) }

func (l Logger) log(lvl Level, msg string, fields []Field) {
	mu.RLock()
	s, min := sink, minLevel
	mu.RUnlock()
	if lvl < min {
		return
	}
	s(lvl, l.component, msg, fields)
}
