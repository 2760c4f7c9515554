// Package zap adapts a *zap.Logger to nanowire.Logger.
package zap

import (
	"maps"
	"slices"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/unkn0wn-root/nanowire"
)

var _ nanowire.Logger = Logger{}

type Logger struct{ L *zap.Logger }

func New(l *zap.Logger) Logger { return Logger{L: l} }

func (z Logger) Debug(msg string, f nanowire.Fields) { z.log(zapcore.DebugLevel, msg, f) }
func (z Logger) Info(msg string, f nanowire.Fields)  { z.log(zapcore.InfoLevel, msg, f) }
func (z Logger) Warn(msg string, f nanowire.Fields)  { z.log(zapcore.WarnLevel, msg, f) }
func (z Logger) Error(msg string, f nanowire.Fields) { z.log(zapcore.ErrorLevel, msg, f) }

// log builds fields only when the level is enabled.
func (z Logger) log(lvl zapcore.Level, msg string, f nanowire.Fields) {
	if ce := z.L.Check(lvl, msg); ce != nil {
		ce.Write(zf(f)...)
	}
}

func zf(f nanowire.Fields) []zap.Field {
	if len(f) == 0 {
		return nil
	}
	out := make([]zap.Field, 0, len(f))
	for _, k := range slices.Sorted(maps.Keys(f)) {
		out = append(out, zap.Any(k, f[k]))
	}
	return out
}
