// Package logrus adapts a *logrus.Entry to nanowire.Logger.
package logrus

import (
	"github.com/sirupsen/logrus"

	"github.com/unkn0wn-root/nanowire"
)

var _ nanowire.Logger = Logger{}

type Logger struct{ E *logrus.Entry }

// New wraps l, e.g. New(logrus.WithField("component", "store")).
func New(e *logrus.Entry) Logger { return Logger{E: e} }

func (l Logger) Debug(msg string, f nanowire.Fields) { l.log(logrus.DebugLevel, msg, f) }
func (l Logger) Info(msg string, f nanowire.Fields)  { l.log(logrus.InfoLevel, msg, f) }
func (l Logger) Warn(msg string, f nanowire.Fields)  { l.log(logrus.WarnLevel, msg, f) }
func (l Logger) Error(msg string, f nanowire.Fields) { l.log(logrus.ErrorLevel, msg, f) }

func (l Logger) log(lvl logrus.Level, msg string, f nanowire.Fields) {
	if !l.E.Logger.IsLevelEnabled(lvl) {
		return
	}
	if len(f) == 0 {
		l.E.Log(lvl, msg)
		return
	}
	l.E.WithFields(logrus.Fields(f)).Log(lvl, msg)
}
