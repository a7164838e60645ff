package backend_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-storage/internal/infrastructure/backend"
	"github.com/jhoicas/inventario-storage/pkg/config"
	"github.com/jhoicas/inventario-storage/pkg/logger"
)

func cfgFor(driver string) *config.Config {
	return &config.Config{Storage: config.StorageConfig{Driver: driver, Key: "inventarioApp"}}
}

func roundTrip(t *testing.T, cfg *config.Config) {
	t.Helper()
	ctx := context.Background()
	store, closeFn, err := backend.Open(ctx, cfg, logger.Nop())
	require.NoError(t, err)
	defer func() { assert.NoError(t, closeFn()) }()

	require.NoError(t, store.Put(ctx, cfg.Storage.Key, []byte(`{"ok":true}`)))
	got, err := store.Get(ctx, cfg.Storage.Key)
	require.NoError(t, err)
	assert.Equal(t, `{"ok":true}`, string(got))
}

func TestOpen_Memory(t *testing.T) {
	roundTrip(t, cfgFor(config.DriverMemory))
}

func TestOpen_File(t *testing.T) {
	cfg := cfgFor(config.DriverFile)
	cfg.Storage.Dir = t.TempDir()
	roundTrip(t, cfg)
	assert.FileExists(t, filepath.Join(cfg.Storage.Dir, "inventarioApp.json"))
}

func TestOpen_SQLite(t *testing.T) {
	cfg := cfgFor(config.DriverSQLite)
	cfg.Storage.SQLitePath = filepath.Join(t.TempDir(), "inventario.db")
	roundTrip(t, cfg)
}

func TestOpen_Redis(t *testing.T) {
	mr := miniredis.RunT(t)
	cfg := cfgFor(config.DriverRedis)
	cfg.Storage.RedisURL = "redis://" + mr.Addr()
	roundTrip(t, cfg)
}

func TestOpen_DriverDesconocido(t *testing.T) {
	_, _, err := backend.Open(context.Background(), cfgFor("localstorage"), logger.Nop())
	assert.Error(t, err)
}
