// Package logger provides a small logging interface for crossdeploy
// components. Packages log through it without being coupled to a concrete
// implementation, which keeps command execution and deploy steps testable.
package logger

import (
	"log"
	"os"
	"sync/atomic"
)

// Logger is the printf-style logging surface components depend on.
type Logger interface {
	Debug(format string, args ...any)
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}

// debugEnabled is flipped by the --verbose flag. The CROSSDEPLOY_DEBUG
// environment variable is an alternative switch for non-interactive use.
var debugEnabled atomic.Bool

// EnableDebug turns on debug output for all environment loggers.
func EnableDebug() {
	debugEnabled.Store(true)
}

// DebugEnabled reports whether debug output is active, either via
// EnableDebug or the CROSSDEPLOY_DEBUG environment variable.
func DebugEnabled() bool {
	return debugEnabled.Load() || os.Getenv("CROSSDEPLOY_DEBUG") != ""
}

// envLogger writes through the standard log package with a fixed prefix.
// Debug messages are suppressed unless debug output is active.
type envLogger struct {
	prefix string
}

// NewEnvLogger creates a logger whose debug output is gated by DebugEnabled.
// The prefix is prepended to every message (e.g., "[exec]").
func NewEnvLogger(prefix string) Logger {
	return &envLogger{prefix: prefix}
}

func (l *envLogger) printf(tag, format string, args ...any) {
	log.Printf(l.prefix+tag+format, args...)
}

func (l *envLogger) Debug(format string, args ...any) {
	if DebugEnabled() {
		l.printf(" ", format, args...)
	}
}

func (l *envLogger) Info(format string, args ...any) {
	l.printf(" ", format, args...)
}

func (l *envLogger) Warn(format string, args ...any) {
	l.printf(" WARN: ", format, args...)
}

func (l *envLogger) Error(format string, args ...any) {
	l.printf(" ERROR: ", format, args...)
}
