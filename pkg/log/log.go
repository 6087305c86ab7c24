// Package log defines the trace sink the emulator is injected with.
// Components never reach for a global logger; they hold a Logger
// handed to them at construction time.
package log

import "github.com/sirupsen/logrus"

// Logger is the narrow logging surface the emulator core depends on.
// Hardware-contract violations (shadow RAM writes, unmapped IO, fatal
// decode errors) are logged through it rather than a package-level
// logger, so hosts can redirect or silence emulator trace output.
type Logger interface {
	Infof(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Debugf(format string, args ...interface{})
}

// New returns a Logger backed by logrus: no colors, no timestamps,
// insertion order preserved.
func New() Logger {
	l := logrus.New()
	l.SetLevel(logrus.DebugLevel)
	l.Formatter = &logrus.TextFormatter{
		DisableColors:    true,
		DisableTimestamp: true,
		DisableSorting:   true,
	}
	return &logrusLogger{l}
}

type logrusLogger struct {
	l *logrus.Logger
}

func (l *logrusLogger) Infof(format string, args ...interface{})  { l.l.Infof(format, args...) }
func (l *logrusLogger) Errorf(format string, args ...interface{}) { l.l.Errorf(format, args...) }
func (l *logrusLogger) Debugf(format string, args ...interface{}) { l.l.Debugf(format, args...) }
