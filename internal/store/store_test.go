package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestMemory(t *testing.T) {
	ctx := context.Background()

	t.Run("missing key", func(t *testing.T) {
		m := NewMemory()
		_, ok, err := m.Get(ctx, "drift-mood-2024-03-04")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("set then get", func(t *testing.T) {
		m := NewMemory()
		require.NoError(t, m.Set(ctx, "k", `{"x":0.1,"y":0.2}`))
		v, ok, err := m.Get(ctx, "k")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, `{"x":0.1,"y":0.2}`, v)
	})

	t.Run("overwrite", func(t *testing.T) {
		m := NewMemory()
		require.NoError(t, m.Set(ctx, "k", "a"))
		require.NoError(t, m.Set(ctx, "k", "b"))
		v, _, _ := m.Get(ctx, "k")
		assert.Equal(t, "b", v)
		assert.Equal(t, 1, m.Len())
	})

	t.Run("quota", func(t *testing.T) {
		m := NewMemoryWithQuota(1)
		require.NoError(t, m.Set(ctx, "a", "1"))
		require.NoError(t, m.Set(ctx, "a", "2"))
		err := m.Set(ctx, "b", "1")
		assert.True(t, errors.Is(err, ErrQuotaExceeded))
	})

	t.Run("cancelled context", func(t *testing.T) {
		m := NewMemory()
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		assert.Error(t, m.Set(cctx, "a", "1"))
		_, _, err := m.Get(cctx, "a")
		assert.Error(t, err)
	})
}

func TestLogging(t *testing.T) {
	ctx := context.Background()

	t.Run("records operations at debug", func(t *testing.T) {
		core, logs := observer.New(zapcore.DebugLevel)
		kv := NewLogging(NewMemory(), zap.New(core))

		require.NoError(t, kv.Set(ctx, "k", "v"))
		v, ok, err := kv.Get(ctx, "k")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "v", v)

		entries := logs.FilterMessage("kv operation completed").All()
		require.Len(t, entries, 2)
		assert.Equal(t, "set", entries[0].ContextMap()["operation"])
		assert.Equal(t, "get", entries[1].ContextMap()["operation"])
		assert.Equal(t, true, entries[1].ContextMap()["found"])
	})

	t.Run("passes errors through", func(t *testing.T) {
		core, logs := observer.New(zapcore.DebugLevel)
		kv := NewLogging(NewMemoryWithQuota(1), zap.New(core))
		require.NoError(t, kv.Set(ctx, "a", "1"))

		err := kv.Set(ctx, "b", "1")
		assert.ErrorIs(t, err, ErrQuotaExceeded)
		assert.Equal(t, 1, logs.FilterMessage("kv operation failed").Len())
	})

	t.Run("slow operations warn", func(t *testing.T) {
		core, logs := observer.New(zapcore.WarnLevel)
		kv := NewLogging(slowKV{delay: 5 * time.Millisecond}, zap.New(core))
		kv.SlowThreshold = time.Millisecond

		_, _, err := kv.Get(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, 1, logs.FilterMessage("slow kv operation completed").Len())
	})
}

type slowKV struct {
	delay time.Duration
}

func (s slowKV) Get(ctx context.Context, key string) (string, bool, error) {
	time.Sleep(s.delay)
	return "", false, nil
}

func (s slowKV) Set(ctx context.Context, key, value string) error {
	time.Sleep(s.delay)
	return nil
}

func (s slowKV) Close(ctx context.Context) error {
	return nil
}
