package zap

import (
	"context"
	"errors"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	ubzap "go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/kotohiko/tagid/pkg/observability"
)

const (
	levelDebug = "debug"
	levelInfo  = "info"
	levelWarn  = "warn"
	levelError = "error"
)

var (
	errUnsupportedFormat = errors.New("observability/zap: unsupported log format")
	errUnsupportedLevel  = errors.New("observability/zap: unsupported log level")
)

type Option func(*loggerOptions)

type loggerOptions struct {
	zapLogger *ubzap.Logger
	output    zapcore.WriteSyncer
}

// WithZapLogger uses logger as-is and ignores the format and level in the config.
func WithZapLogger(logger *ubzap.Logger) Option {
	return func(opts *loggerOptions) {
		opts.zapLogger = logger
	}
}

// WithOutput redirects encoded entries. Defaults to stderr so stdout stays free for IDs.
func WithOutput(w zapcore.WriteSyncer) Option {
	return func(opts *loggerOptions) {
		opts.output = w
	}
}

type zapCore struct {
	logger *ubzap.Logger

	closeOnce sync.Once
	closed    atomic.Bool

	entriesLogged  atomic.Int64
	flushCount     atomic.Int64
	errorCount     atomic.Int64
	lastFlushNanos atomic.Int64
	lastError      atomic.Value
}

type Logger struct {
	core   *zapCore
	log    *ubzap.Logger
	fields map[string]any
}

var _ observability.StructuredLogger = (*Logger)(nil)

func NewZapLogger(config observability.LoggerConfig, options ...Option) (observability.StructuredLogger, error) {
	cfg := normalizeLoggerConfig(config)

	opts := &loggerOptions{
		zapLogger: nil,
		output:    zapcore.Lock(os.Stderr),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(opts)
	}

	base := opts.zapLogger
	if base == nil {
		level, err := parseZapLevel(cfg.Level)
		if err != nil {
			return nil, err
		}

		enc := zapEncoderConfig(cfg.EnableCaller)
		var encoder zapcore.Encoder
		switch strings.ToLower(strings.TrimSpace(cfg.Format)) {
		case "console":
			encoder = zapcore.NewConsoleEncoder(enc)
		case "json":
			encoder = zapcore.NewJSONEncoder(enc)
		default:
			return nil, errUnsupportedFormat
		}

		base = ubzap.New(zapcore.NewCore(encoder, opts.output, level))
		if cfg.EnableCaller {
			base = base.WithOptions(ubzap.AddCaller(), ubzap.AddCallerSkip(2))
		}
		if cfg.EnableStack {
			base = base.WithOptions(ubzap.AddStacktrace(zapcore.ErrorLevel))
		}
	}

	zcore := &zapCore{logger: base}
	zcore.lastError.Store("")

	return &Logger{
		core:   zcore,
		log:    base,
		fields: map[string]any{},
	}, nil
}

func normalizeLoggerConfig(config observability.LoggerConfig) observability.LoggerConfig {
	cfg := config
	if strings.TrimSpace(cfg.Format) == "" {
		cfg.Format = "json"
	}
	if strings.TrimSpace(cfg.Level) == "" {
		cfg.Level = levelInfo
	}
	return cfg
}

func parseZapLevel(level string) (zapcore.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case levelDebug:
		return zapcore.DebugLevel, nil
	case levelInfo, "":
		return zapcore.InfoLevel, nil
	case levelWarn, "warning":
		return zapcore.WarnLevel, nil
	case levelError:
		return zapcore.ErrorLevel, nil
	default:
		return 0, errUnsupportedLevel
	}
}

func zapEncoderConfig(enableCaller bool) zapcore.EncoderConfig {
	enc := zapcore.EncoderConfig{
		TimeKey:        "timestamp",
		LevelKey:       "level",
		MessageKey:     "message",
		EncodeTime:     zapcore.RFC3339TimeEncoder,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeDuration: zapcore.StringDurationEncoder,
	}
	if enableCaller {
		enc.CallerKey = "caller"
		enc.EncodeCaller = zapcore.ShortCallerEncoder
	}
	return enc
}

func (l *Logger) Debug(message string, fields ...map[string]any) {
	l.logEntry(levelDebug, message, fields...)
}
func (l *Logger) Info(message string, fields ...map[string]any) {
	l.logEntry(levelInfo, message, fields...)
}
func (l *Logger) Warn(message string, fields ...map[string]any) {
	l.logEntry(levelWarn, message, fields...)
}
func (l *Logger) Error(message string, fields ...map[string]any) {
	l.logEntry(levelError, message, fields...)
}

func (l *Logger) WithField(key string, value any) observability.StructuredLogger {
	return l.WithFields(map[string]any{key: value})
}

func (l *Logger) WithFields(fields map[string]any) observability.StructuredLogger {
	if l == nil || l.core == nil {
		return &Logger{}
	}
	next := &Logger{
		core:   l.core,
		log:    l.log.With(anyFields(fields)...),
		fields: make(map[string]any, len(l.fields)+len(fields)),
	}
	for k, v := range l.fields {
		next.fields[k] = v
	}
	for k, v := range fields {
		next.fields[k] = v
	}
	return next
}

func (l *Logger) Flush(ctx context.Context) error {
	if l == nil || l.core == nil {
		return nil
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	l.core.flushCount.Add(1)
	err := l.core.logger.Sync()
	if err != nil && !isIgnorableSyncError(err) {
		l.core.recordError(err)
	} else {
		err = nil
	}
	l.core.lastFlushNanos.Store(time.Now().UnixNano())
	return err
}

func (l *Logger) Close() error {
	if l == nil || l.core == nil {
		return nil
	}
	var err error
	l.core.closeOnce.Do(func() {
		l.core.closed.Store(true)
		err = l.core.logger.Sync()
		if err != nil && isIgnorableSyncError(err) {
			err = nil
		}
		if err != nil {
			l.core.recordError(err)
		}
	})
	return err
}

func (l *Logger) IsHealthy() bool {
	if l == nil || l.core == nil || l.core.closed.Load() {
		return false
	}
	return l.core.lastErrorString() == ""
}

func (l *Logger) GetStats() observability.LoggerStats {
	if l == nil || l.core == nil {
		return observability.LoggerStats{}
	}
	return observability.LoggerStats{
		LastFlush:     time.Unix(0, l.core.lastFlushNanos.Load()),
		LastError:     l.core.lastErrorString(),
		EntriesLogged: l.core.entriesLogged.Load(),
		FlushCount:    l.core.flushCount.Load(),
		ErrorCount:    l.core.errorCount.Load(),
	}
}

func (l *Logger) logEntry(level string, message string, fields ...map[string]any) {
	if l == nil || l.core == nil || l.log == nil || l.core.closed.Load() {
		return
	}

	var zfields []ubzap.Field
	for _, set := range fields {
		zfields = append(zfields, anyFields(set)...)
	}

	switch level {
	case levelDebug:
		l.log.Debug(message, zfields...)
	case levelWarn:
		l.log.Warn(message, zfields...)
	case levelError:
		l.log.Error(message, zfields...)
	default:
		l.log.Info(message, zfields...)
	}
	l.core.entriesLogged.Add(1)
}

func anyFields(fields map[string]any) []ubzap.Field {
	if len(fields) == 0 {
		return nil
	}
	out := make([]ubzap.Field, 0, len(fields))
	for k, v := range fields {
		out = append(out, ubzap.Any(k, v))
	}
	return out
}

// Syncing a terminal or pipe reports EINVAL/ENOTTY on some platforms.
func isIgnorableSyncError(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "invalid argument") || strings.Contains(msg, "inappropriate ioctl")
}

func (c *zapCore) recordError(err error) {
	c.errorCount.Add(1)
	c.lastError.Store(err.Error())
}

func (c *zapCore) lastErrorString() string {
	if c == nil {
		return ""
	}
	lastError, ok := c.lastError.Load().(string)
	if !ok {
		return ""
	}
	return lastError
}
