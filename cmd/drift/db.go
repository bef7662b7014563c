package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"go.uber.org/zap"

	"drift/internal/config"
	"drift/internal/logging"
	"drift/internal/persist"
	"drift/internal/store"
	"drift/internal/store/postgres"
	"drift/internal/store/sqlite"
)

const defaultConfigPath = "drift.yaml"

var configPath string

// loadConfig reads the --config file. A missing file at the default path
// falls back to built-in defaults; an explicit path must exist.
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadConfig(configPath)
	if err == nil {
		return cfg, nil
	}
	if configPath == defaultConfigPath && errors.Is(err, fs.ErrNotExist) {
		return config.Default(), nil
	}
	return nil, err
}

func openStore(ctx context.Context, cfg *config.Config) (store.KV, error) {
	switch cfg.Storage.Driver {
	case store.DriverMemory:
		return store.NewMemory(), nil
	case store.DriverSQLite:
		c, err := sqlite.New(ctx, cfg.Storage.DSN)
		if err != nil {
			return nil, err
		}
		if err := c.EnsureSchema(ctx); err != nil {
			c.Close(ctx)
			return nil, err
		}
		return c, nil
	case store.DriverPostgres:
		c, err := postgres.New(ctx, cfg.Storage.DSN)
		if err != nil {
			return nil, err
		}
		if err := c.EnsureSchema(ctx); err != nil {
			c.Close(ctx)
			return nil, err
		}
		return c, nil
	}
	return nil, fmt.Errorf("unknown storage driver: %q", cfg.Storage.Driver)
}

// session bundles what every subcommand needs. Close releases the store and
// flushes the logger.
type session struct {
	cfg    *config.Config
	logger *zap.Logger
	kv     store.KV
	store  *persist.Adapter
}

func openSession(ctx context.Context) (*session, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	logger, err := logging.New(cfg)
	if err != nil {
		return nil, err
	}
	kv, err := openStore(ctx, cfg)
	if err != nil {
		_ = logger.Sync()
		return nil, err
	}
	kv = store.NewLogging(kv, logger)
	return &session{
		cfg:    cfg,
		logger: logger,
		kv:     kv,
		store:  persist.New(kv, logger),
	}, nil
}

func (s *session) Close(ctx context.Context) {
	if err := s.kv.Close(ctx); err != nil {
		s.logger.Warn("closing store", zap.Error(err))
	}
	_ = s.logger.Sync()
}
