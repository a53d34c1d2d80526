package storage

import (
	"context"
	"slices"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/nikmy/palettes/pkg/errors"
)

type source interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Close(ctx context.Context) error
}

// Cached serves reads from memory for ttl after the value was last read or
// written through it. Writes made to the underlying backend by anyone else
// stay invisible until the entry expires.
type Cached struct {
	next  source
	cache *cache.Cache
}

func NewCached(next source, ttl time.Duration) *Cached {
	return &Cached{
		next:  next,
		cache: cache.New(ttl, 2*ttl),
	}
}

func (c *Cached) Get(ctx context.Context, key string) ([]byte, error) {
	if v, found := c.cache.Get(key); found {
		return slices.Clone(v.([]byte)), nil
	}

	value, err := c.next.Get(ctx, key)
	if err != nil {
		return nil, err
	}

	c.cache.SetDefault(key, slices.Clone(value))
	return value, nil
}

func (c *Cached) Set(ctx context.Context, key string, value []byte) error {
	if err := c.next.Set(ctx, key, value); err != nil {
		// the write may or may not have landed
		c.cache.Delete(key)
		return err
	}

	c.cache.SetDefault(key, slices.Clone(value))
	return nil
}

func (c *Cached) Close(ctx context.Context) error {
	c.cache.Flush()
	return errors.WrapFail(c.next.Close(ctx), "close cached storage")
}
