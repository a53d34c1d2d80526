package storage

import (
	"context"

	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/opt"

	"github.com/nikmy/palettes/pkg/errors"
	"github.com/nikmy/palettes/pkg/logger"
)

type LevelDBConfig struct {
	Path string `yaml:"path"`
	// Sync fsyncs every write.
	Sync bool `yaml:"sync"`
}

// LevelDB keeps keys in an embedded leveldb database.
type LevelDB struct {
	db     *leveldb.DB
	write  *opt.WriteOptions
	logger logger.Logger
}

func NewLevelDB(cfg LevelDBConfig, log logger.Logger) (*LevelDB, error) {
	options := &opt.Options{
		ErrorIfExist:   false,
		ErrorIfMissing: false,
	}

	db, err := leveldb.OpenFile(cfg.Path, options)
	if err != nil {
		return nil, errors.WrapFailf(err, "open leveldb at %s", cfg.Path)
	}

	return &LevelDB{
		db:     db,
		write:  &opt.WriteOptions{Sync: cfg.Sync},
		logger: log.With("leveldb_storage"),
	}, nil
}

func (l *LevelDB) Get(_ context.Context, key string) ([]byte, error) {
	value, err := l.db.Get([]byte(key), nil)
	if errors.Is(err, leveldb.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.WrapFailf(err, "get %q", key)
	}
	return value, nil
}

func (l *LevelDB) Set(_ context.Context, key string, value []byte) error {
	if err := l.db.Put([]byte(key), value, l.write); err != nil {
		return errors.WrapFailf(err, "put %q", key)
	}

	l.logger.Debugf("stored %d bytes under %q", len(value), key)
	return nil
}

func (l *LevelDB) Close(context.Context) error {
	return errors.WrapFail(l.db.Close(), "close leveldb")
}
