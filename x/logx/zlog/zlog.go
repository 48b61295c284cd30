// Package zlog routes logx entries to a zerolog logger. Host builds only.
package zlog

import (
	"github.com/rs/zerolog"

	"tictactoe-go/x/logx"
)

// Sink returns a logx.Sink writing through l. Filtering stays with logx.
func Sink(l zerolog.Logger) logx.Sink {
	return func(lvl logx.Level, component, msg string, fields []logx.Field) {
		e := l.WithLevel(level(lvl)).Str("component", component)
		for _, f := range fields {
			switch v := f.Value().(type) {
			case int64:
				e = e.Int64(f.Key, v)
			case bool:
				e = e.Bool(f.Key, v)
			case string:
				e = e.Str(f.Key, v)
			}
		}
		e.Msg(msg)
	}
}

func level(l logx.Level) zerolog.Level {
	switch l {
	case logx.LevelDebug:
		return zerolog.DebugLevel
	case logx.LevelInfo:
		return zerolog.InfoLevel
	case logx.LevelWarn:
		return zerolog.WarnLevel
	default:
		return zerolog.ErrorLevel
	}
}
