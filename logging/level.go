package logging

import (
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/atomic"
	"go.uber.org/zap/zapcore"
)

// Level is the least severe kind of line a logger writes.
type Level int

// INFO is the zero value.
const (
	DEBUG Level = iota - 1
	INFO
	WARN
)

// LevelFromString parses "debug", "info" or "warn", ignoring case.
func LevelFromString(s string) (Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return DEBUG, nil
	case "info":
		return INFO, nil
	case "warn", "warning":
		return WARN, nil
	}
	return INFO, errors.Errorf("unknown log level %q", s)
}

// AsZap converts the Level to a zapcore.Level.
func (level Level) AsZap() zapcore.Level {
	switch level {
	case DEBUG:
		return zapcore.DebugLevel
	case WARN:
		return zapcore.WarnLevel
	default:
		return zapcore.InfoLevel
	}
}

// AtomicLevel is a Level that is safe to read and change concurrently.
type AtomicLevel struct {
	val *atomic.Int32
}

// NewAtomicLevelAt returns an AtomicLevel set to level.
func NewAtomicLevelAt(level Level) AtomicLevel {
	return AtomicLevel{val: atomic.NewInt32(int32(level))}
}

// Set changes the level.
func (level AtomicLevel) Set(newLevel Level) {
	level.val.Store(int32(newLevel))
}

// Get returns the level.
func (level AtomicLevel) Get() Level {
	return Level(level.val.Load())
}

// Enabled reports whether a line at l would be written.
func (level AtomicLevel) Enabled(l Level) bool {
	return l >= level.Get()
}
