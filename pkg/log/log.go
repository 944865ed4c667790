// Package log provides the small logging front used across the module.
// The default implementation is backed by logrus; components take the
// Logger interface so tests can silence them with NewNullLogger.
package log

import (
	"os"

	"github.com/sirupsen/logrus"
)

type Logger interface {
	Infof(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Debugf(format string, args ...interface{})
}

type logger struct {
	l *logrus.Logger
}

// New returns a Logger writing to stderr.
func New() Logger {
	return &logger{l: newLogrus(logrus.InfoLevel)}
}

// NewVerbose returns a Logger that also emits debug-level output.
func NewVerbose() Logger {
	return &logger{l: newLogrus(logrus.DebugLevel)}
}

func newLogrus(level logrus.Level) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetLevel(level)
	l.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	return l
}

func (l *logger) Infof(format string, args ...interface{}) {
	l.l.Infof(format, args...)
}

func (l *logger) Errorf(format string, args ...interface{}) {
	l.l.Errorf(format, args...)
}

func (l *logger) Debugf(format string, args ...interface{}) {
	l.l.Debugf(format, args...)
}
