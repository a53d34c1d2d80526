package main

import (
	"context"

	"github.com/nikmy/palettes/internal/simpledb"
	"github.com/nikmy/palettes/internal/storage"
	"github.com/nikmy/palettes/pkg/errors"
	"github.com/nikmy/palettes/pkg/logger"
)

type backend interface {
	simpledb.Backend
	Close(ctx context.Context) error
}

func openBackend(ctx context.Context, cfg StorageConfig, log logger.Logger) (backend, error) {
	b, err := openDriver(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	if cfg.Cache.TTL > 0 {
		log.Infof("caching %s storage reads for %s", cfg.Driver, cfg.Cache.TTL)
		return storage.NewCached(b, cfg.Cache.TTL), nil
	}
	return b, nil
}

func openDriver(ctx context.Context, cfg StorageConfig, log logger.Logger) (backend, error) {
	switch cfg.Driver {
	case driverMemory:
		log.Warnf("memory storage selected, nothing survives a restart")
		return storage.NewMemory(), nil
	case driverFile:
		return storage.NewFileStorage(cfg.File.Path, log)
	case driverLevel:
		return storage.NewLevelDB(cfg.LevelDB, log)
	case driverMongo:
		return storage.NewMongo(ctx, cfg.Mongo, log)
	default:
		return nil, errors.Errorf("unknown storage driver %q", cfg.Driver)
	}
}
