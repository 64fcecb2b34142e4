// Package logging contains the zap-backed loggers used by the path tooling.
package logging

import (
	"context"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// Logger writes leveled log lines to a set of appenders. The C-prefixed debug methods also log when
// their context carries debug mode, whatever the logger's level.
type Logger interface {
	CDebugf(ctx context.Context, template string, args ...interface{})
	CDebugw(ctx context.Context, msg string, keysAndValues ...interface{})

	Infof(template string, args ...interface{})
	Infow(msg string, keysAndValues ...interface{})

	SetLevel(level Level)
	AddAppender(appender Appender)
}

// NewLogger returns a logger that writes Info+ lines to stdout with UTC timestamps.
func NewLogger(name string) Logger {
	return &impl{name: name, level: NewAtomicLevelAt(INFO), inUTC: true, appenders: []Appender{NewStdoutAppender()}}
}

// NewTestLogger returns a logger that writes Debug+ lines to the test's log.
func NewTestLogger(tb testing.TB) Logger {
	logger, _ := NewObservedTestLogger(tb)
	return logger
}

// NewObservedTestLogger is NewTestLogger that also records every entry for inspection.
func NewObservedTestLogger(tb testing.TB) (Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zap.LevelEnablerFunc(zapcore.DebugLevel.Enabled))
	logger := &impl{level: NewAtomicLevelAt(DEBUG), appenders: []Appender{NewTestAppender(tb), core}}
	return logger, logs
}
