package observability

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

type testLoggerCore struct {
	mu      sync.Mutex
	entries []LogEntry

	entriesLogged  atomic.Int64
	flushCount     atomic.Int64
	lastFlushNanos atomic.Int64
}

// TestLogger is an in-memory logger implementation for deterministic unit tests.
//
// Derived loggers (via With* calls) share the same underlying core.
type TestLogger struct {
	core   *testLoggerCore
	fields map[string]any
	closed *atomic.Bool
}

var _ StructuredLogger = (*TestLogger)(nil)

func NewTestLogger() *TestLogger {
	return &TestLogger{
		core:   &testLoggerCore{},
		fields: map[string]any{},
		closed: &atomic.Bool{},
	}
}

func (l *TestLogger) Entries() []LogEntry {
	if l == nil || l.core == nil {
		return nil
	}
	l.core.mu.Lock()
	defer l.core.mu.Unlock()
	out := make([]LogEntry, len(l.core.entries))
	copy(out, l.core.entries)
	return out
}

// EntriesAt returns the entries recorded at level.
func (l *TestLogger) EntriesAt(level string) []LogEntry {
	var out []LogEntry
	for _, entry := range l.Entries() {
		if entry.Level == level {
			out = append(out, entry)
		}
	}
	return out
}

func (l *TestLogger) Debug(message string, fields ...map[string]any) {
	l.log("debug", message, fields...)
}
func (l *TestLogger) Info(message string, fields ...map[string]any) {
	l.log("info", message, fields...)
}
func (l *TestLogger) Warn(message string, fields ...map[string]any) {
	l.log("warn", message, fields...)
}
func (l *TestLogger) Error(message string, fields ...map[string]any) {
	l.log("error", message, fields...)
}

func (l *TestLogger) WithField(key string, value any) StructuredLogger {
	return l.WithFields(map[string]any{key: value})
}

func (l *TestLogger) WithFields(fields map[string]any) StructuredLogger {
	if l == nil {
		return NewTestLogger().WithFields(fields)
	}
	return &TestLogger{
		core:   l.core,
		fields: mergeFields(l.fields, fields),
		closed: l.closed,
	}
}

func (l *TestLogger) Flush(ctx context.Context) error {
	if l == nil || l.core == nil {
		return nil
	}
	if ctx == nil {
		ctx = context.Background()
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}
	l.core.flushCount.Add(1)
	l.core.lastFlushNanos.Store(time.Now().UnixNano())
	return nil
}

func (l *TestLogger) Close() error {
	if l == nil {
		return nil
	}
	l.closed.Store(true)
	return nil
}

func (l *TestLogger) IsHealthy() bool {
	return l != nil && l.core != nil && !l.closed.Load()
}

func (l *TestLogger) GetStats() LoggerStats {
	if l == nil || l.core == nil {
		return LoggerStats{}
	}
	return LoggerStats{
		LastFlush:     time.Unix(0, l.core.lastFlushNanos.Load()),
		EntriesLogged: l.core.entriesLogged.Load(),
		FlushCount:    l.core.flushCount.Load(),
	}
}

func (l *TestLogger) log(level string, message string, fields ...map[string]any) {
	if l == nil || l.core == nil || l.closed.Load() {
		return
	}

	entry := LogEntry{
		Timestamp: time.Now(),
		Level:     level,
		Message:   message,
		Fields:    mergeFields(l.fields, fields...),
	}

	l.core.entriesLogged.Add(1)

	l.core.mu.Lock()
	l.core.entries = append(l.core.entries, entry)
	l.core.mu.Unlock()
}
