package storage

import (
	"context"
	"net/url"
	"os"
	"path/filepath"

	"github.com/nikmy/palettes/pkg/errors"
	"github.com/nikmy/palettes/pkg/logger"
)

// FileStorage keeps every key in its own file under dir. Writes go to a
// temporary file that is renamed over the old one, so a crash mid-write
// leaves the previous value intact.
type FileStorage struct {
	dir    string
	logger logger.Logger
}

func NewFileStorage(dir string, log logger.Logger) (*FileStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.WrapFailf(err, "create storage dir %s", dir)
	}

	return &FileStorage{
		dir:    dir,
		logger: log.With("file_storage"),
	}, nil
}

func (s *FileStorage) Get(_ context.Context, key string) ([]byte, error) {
	fileName := s.fileName(key)

	data, err := os.ReadFile(fileName)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.WrapFailf(err, "read %s", fileName)
	}

	return data, nil
}

func (s *FileStorage) Set(_ context.Context, key string, value []byte) error {
	fileName := s.fileName(key)
	s.logger.Debugf("saving %d bytes to %s", len(value), fileName)

	tmp, err := os.CreateTemp(s.dir, ".tmp-*")
	if err != nil {
		return errors.WrapFail(err, "create temp file")
	}
	defer func() {
		_ = os.Remove(tmp.Name())
	}()

	if _, err := tmp.Write(value); err != nil {
		_ = tmp.Close()
		return errors.WrapFailf(err, "write %s", tmp.Name())
	}

	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return errors.WrapFailf(err, "sync %s", tmp.Name())
	}

	if err := tmp.Close(); err != nil {
		return errors.WrapFailf(err, "close %s", tmp.Name())
	}

	if err := os.Rename(tmp.Name(), fileName); err != nil {
		return errors.WrapFailf(err, "replace %s", fileName)
	}

	return nil
}

func (s *FileStorage) Close(context.Context) error {
	return nil
}

func (s *FileStorage) fileName(key string) string {
	return filepath.Join(s.dir, url.PathEscape(key)+".bin")
}
