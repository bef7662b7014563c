package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"drift/internal/config"
	"drift/internal/mood"
	"drift/internal/persist"
	"drift/internal/store"
)

func TestPrintMoods(t *testing.T) {
	ctx := context.Background()
	clock := func() time.Time { return time.Date(2024, time.March, 4, 12, 0, 0, 0, time.Local) }

	t.Run("nothing recorded", func(t *testing.T) {
		var out bytes.Buffer
		adapter := persist.New(store.NewMemory(), zap.NewNop())
		require.NoError(t, printMoods(ctx, &out, adapter, mood.DefaultPrefix, clock))

		lines := strings.Split(strings.TrimSpace(out.String()), "\n")
		require.Len(t, lines, 2)
		assert.Equal(t, "Today", lines[0])
		assert.Contains(t, lines[1], "Floating")
		assert.Contains(t, lines[1], "(not recorded)")
	})

	t.Run("today and yesterday", func(t *testing.T) {
		var out bytes.Buffer
		kv := store.NewMemory()
		require.NoError(t, kv.Set(ctx, "drift-mood-2024-03-04", `{"x":0.9,"y":0.1}`))
		require.NoError(t, kv.Set(ctx, "drift-mood-2024-03-03", `{"x":0.1,"y":0.9}`))
		require.NoError(t, printMoods(ctx, &out, persist.New(kv, nil), mood.DefaultPrefix, clock))

		text := out.String()
		assert.Contains(t, text, "Bright")
		assert.Contains(t, text, "Yesterday:")
		assert.Contains(t, text, "Heavy")
		assert.NotContains(t, text, "not recorded")
	})
}

func TestRunInit(t *testing.T) {
	t.Run("writes loadable defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "drift.yaml")
		require.NoError(t, runInit(path, store.DriverSQLite, ""))

		cfg, err := config.LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, *config.Default(), *cfg)
	})

	t.Run("refuses to overwrite", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "drift.yaml")
		require.NoError(t, os.WriteFile(path, []byte("version: 1\n"), 0o600))
		assert.Error(t, runInit(path, store.DriverMemory, ""))
	})

	t.Run("rejects invalid settings", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "drift.yaml")
		assert.Error(t, runInit(path, store.DriverPostgres, ""))
		_, err := os.Stat(path)
		assert.True(t, os.IsNotExist(err))
	})
}

func TestOpenStore(t *testing.T) {
	ctx := context.Background()
	cfg := config.Default()
	cfg.Storage.DSN = "sqlite://" + filepath.Join(t.TempDir(), "drift.db")

	kv, err := openStore(ctx, cfg)
	require.NoError(t, err)
	defer kv.Close(ctx)

	adapter := persist.New(kv, nil)
	adapter.Save(ctx, "drift-mood-2024-03-04", mood.Coords{X: 0.2, Y: 0.3})
	got, ok := adapter.Load(ctx, "drift-mood-2024-03-04")
	require.True(t, ok)
	assert.Equal(t, mood.Coords{X: 0.2, Y: 0.3}, got)
}

func TestLoadConfigFallsBackToDefaults(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(wd) })

	configPath = defaultConfigPath
	cfg, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, *config.Default(), *cfg)

	configPath = filepath.Join(dir, "explicit.yaml")
	t.Cleanup(func() { configPath = defaultConfigPath })
	_, err = loadConfig()
	assert.Error(t, err)
}
