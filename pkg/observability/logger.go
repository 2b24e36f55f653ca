package observability

import (
	"context"
	"time"
)

// LogEntry represents a structured log entry.
type LogEntry struct {
	Timestamp time.Time      `json:"timestamp"`
	Level     string         `json:"level"`
	Message   string         `json:"message"`
	Fields    map[string]any `json:"fields,omitempty"`
}

// StructuredLogger is the logging surface used across tagid: a message plus map fields.
type StructuredLogger interface {
	Debug(message string, fields ...map[string]any)
	Info(message string, fields ...map[string]any)
	Warn(message string, fields ...map[string]any)
	Error(message string, fields ...map[string]any)

	WithField(key string, value any) StructuredLogger
	WithFields(fields map[string]any) StructuredLogger

	Flush(ctx context.Context) error
	Close() error
	IsHealthy() bool
	GetStats() LoggerStats
}

type LoggerStats struct {
	LastFlush     time.Time `json:"last_flush"`
	LastError     string    `json:"last_error,omitempty"`
	EntriesLogged int64     `json:"entries_logged"`
	FlushCount    int64     `json:"flush_count"`
	ErrorCount    int64     `json:"error_count"`
}

// LoggerConfig configures logger implementations.
type LoggerConfig struct {
	Format       string `json:"format"`
	Level        string `json:"level"`
	EnableStack  bool   `json:"enable_stack"`
	EnableCaller bool   `json:"enable_caller"`
}

func mergeFields(base map[string]any, sets ...map[string]any) map[string]any {
	out := make(map[string]any, len(base))
	for k, v := range base {
		out[k] = v
	}
	for _, set := range sets {
		for k, v := range set {
			out[k] = v
		}
	}
	return out
}
