// Package log is a thin wrapper around logrus, in the style of
// denisvmedia-inventario/internal/log/log.go: a package-level logger
// variable callers can swap out, plus free functions for the handful
// of levels this module actually emits at (spec.md calls for logging
// at exactly two points: mode-stack underflow and opportunistic
// buffer-prefix compaction).
package log

import "github.com/sirupsen/logrus"

// Fields is re-exported so callers building structured log entries
// don't need to import logrus directly.
type Fields = logrus.Fields

var log = logrus.StandardLogger()

// SetLogger replaces the package-level logger, e.g. to redirect this
// module's diagnostics into a host application's own logrus instance.
func SetLogger(l *logrus.Logger) {
	log = l
}

func Debugf(format string, args ...any) {
	log.Debugf(format, args...)
}

func Warnf(format string, args ...any) {
	log.Warnf(format, args...)
}

func WithFields(fields Fields) *logrus.Entry {
	return log.WithFields(fields)
}
