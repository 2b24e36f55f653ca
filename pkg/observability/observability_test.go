package observability

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewNoOpLogger(t *testing.T) {
	logger := NewNoOpLogger()
	require.NotNil(t, logger)
	require.True(t, logger.IsHealthy())
	require.NoError(t, logger.Flush(context.Background()))
	require.NoError(t, logger.Close())
	require.Equal(t, LoggerStats{}, logger.GetStats())
	require.Same(t, logger, logger.WithField("k", "v"))
}

func TestTestLogger_Basics(t *testing.T) {
	logger := NewTestLogger()
	require.True(t, logger.IsHealthy())

	scoped := logger.WithField("kind", "ip")
	scoped.Info("hello", map[string]any{"id": "7"})
	scoped.Debug("drawn")

	entries := logger.Entries()
	require.Len(t, entries, 2)
	require.Equal(t, "info", entries[0].Level)
	require.Equal(t, "hello", entries[0].Message)
	require.Equal(t, map[string]any{"kind": "ip", "id": "7"}, entries[0].Fields)
	require.Len(t, logger.EntriesAt("debug"), 1)

	require.NoError(t, logger.Flush(context.Background()))
	stats := logger.GetStats()
	require.EqualValues(t, 2, stats.EntriesLogged)
	require.EqualValues(t, 1, stats.FlushCount)
}

func TestTestLogger_DerivedFieldsDoNotLeak(t *testing.T) {
	logger := NewTestLogger()
	_ = logger.WithField("a", 1)
	logger.Warn("plain")

	entries := logger.Entries()
	require.Len(t, entries, 1)
	require.Empty(t, entries[0].Fields)
}

func TestTestLogger_CloseStopsRecording(t *testing.T) {
	logger := NewTestLogger()
	derived := logger.WithField("k", "v")
	require.NoError(t, logger.Close())
	require.False(t, logger.IsHealthy())

	derived.Error("dropped")
	require.Empty(t, logger.Entries())
}

func TestTestLogger_FlushHonorsCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.ErrorIs(t, NewTestLogger().Flush(ctx), context.Canceled)
}
