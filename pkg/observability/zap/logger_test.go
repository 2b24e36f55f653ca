package zap

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	ubzap "go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/kotohiko/tagid/pkg/observability"
)

func TestZapLogger_WritesFieldsToCore(t *testing.T) {
	core, observed := observer.New(zapcore.DebugLevel)

	logger, err := NewZapLogger(observability.LoggerConfig{}, WithZapLogger(ubzap.New(core)))
	require.NoError(t, err)

	logger.WithField("kind", "char").Debug("tag id generated", map[string]any{"id": "1001"})

	entries := observed.All()
	require.Len(t, entries, 1)
	require.Equal(t, "tag id generated", entries[0].Message)
	require.Equal(t, zapcore.DebugLevel, entries[0].Level)
	ctx := entries[0].ContextMap()
	require.Equal(t, "char", ctx["kind"])
	require.Equal(t, "1001", ctx["id"])
	require.EqualValues(t, 1, logger.GetStats().EntriesLogged)
}

func TestZapLogger_LevelsRouteToMatchingZapLevel(t *testing.T) {
	core, observed := observer.New(zapcore.DebugLevel)
	logger, err := NewZapLogger(observability.LoggerConfig{}, WithZapLogger(ubzap.New(core)))
	require.NoError(t, err)

	logger.Debug("d")
	logger.Info("i")
	logger.Warn("w")
	logger.Error("e")

	var levels []zapcore.Level
	for _, entry := range observed.All() {
		levels = append(levels, entry.Level)
	}
	require.Equal(t, []zapcore.Level{zapcore.DebugLevel, zapcore.InfoLevel, zapcore.WarnLevel, zapcore.ErrorLevel}, levels)
}

func TestZapLogger_JSONOutputRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewZapLogger(observability.LoggerConfig{Format: "json", Level: "warn"}, WithOutput(zapcore.AddSync(&buf)))
	require.NoError(t, err)

	logger.Info("skipped")
	logger.Warn("kept", map[string]any{"kind": "ip"})
	require.NoError(t, logger.Flush(context.Background()))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &decoded))
	require.Equal(t, "kept", decoded["message"])
	require.Equal(t, "warn", decoded["level"])
	require.Equal(t, "ip", decoded["kind"])
	require.Contains(t, decoded, "timestamp")
}

func TestZapLogger_ConsoleFormat(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewZapLogger(observability.LoggerConfig{Format: "console", Level: "debug"}, WithOutput(zapcore.AddSync(&buf)))
	require.NoError(t, err)

	logger.Debug("hello")
	require.Contains(t, buf.String(), "hello")
	require.Contains(t, buf.String(), "debug")
}

func TestNewZapLogger_RejectsUnknownOptions(t *testing.T) {
	_, err := NewZapLogger(observability.LoggerConfig{Format: "xml"})
	require.ErrorIs(t, err, errUnsupportedFormat)

	_, err = NewZapLogger(observability.LoggerConfig{Level: "loud"})
	require.ErrorIs(t, err, errUnsupportedLevel)
}

func TestZapLogger_CloseStopsLogging(t *testing.T) {
	core, observed := observer.New(zapcore.DebugLevel)
	logger, err := NewZapLogger(observability.LoggerConfig{}, WithZapLogger(ubzap.New(core)))
	require.NoError(t, err)

	require.True(t, logger.IsHealthy())
	require.NoError(t, logger.Close())
	require.NoError(t, logger.Close())
	require.False(t, logger.IsHealthy())

	logger.Error("after close")
	require.Zero(t, observed.Len())
}

func TestZapLogger_FlushCanceledContext(t *testing.T) {
	logger, err := NewZapLogger(observability.LoggerConfig{}, WithOutput(zapcore.AddSync(&bytes.Buffer{})))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.ErrorIs(t, logger.Flush(ctx), context.Canceled)
}
