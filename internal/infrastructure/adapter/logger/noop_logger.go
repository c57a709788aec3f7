package logger

import (
	"sync/atomic"

	"github.com/amirhossein-jamali/transform-studio/internal/domain/port/core"
)

// NoopLogger discards every entry. It backs tests and the gorm logger when SQL tracing is off.
type NoopLogger struct {
	level atomic.Int32
}

// NewNoopLogger creates a new no-op logger
func NewNoopLogger() core.Logger {
	l := &NoopLogger{}
	l.level.Store(int32(core.LogLevelInfo))
	return l
}

// SetLevel records the level so GetLevel reflects it
func (l *NoopLogger) SetLevel(level core.LogLevel) {
	l.level.Store(int32(level))
}

// GetLevel gets the current log level
func (l *NoopLogger) GetLevel() core.LogLevel {
	return core.LogLevel(l.level.Load())
}

func (l *NoopLogger) Debug(string, map[string]any) {}

func (l *NoopLogger) Info(string, map[string]any) {}

func (l *NoopLogger) Warn(string, map[string]any) {}

func (l *NoopLogger) Error(string, map[string]any) {}

// Flush has nothing to write
func (l *NoopLogger) Flush() error {
	return nil
}
