package memkv

import (
	"context"

	"github.com/patrickmn/go-cache"
)

// MemKV keeps values in process memory; entries never expire.
type MemKV struct {
	c *cache.Cache
}

func NewMemKV() *MemKV {
	return &MemKV{
		c: cache.New(cache.NoExpiration, 0),
	}
}

func (impl *MemKV) Get(_ context.Context, key string) (value []byte, exists bool, err error) {
	i, ok := impl.c.Get(key)
	if !ok {
		return
	}

	d, ok := i.([]byte)
	if !ok {
		return
	}

	value = append([]byte{}, d...)
	exists = true

	return
}

func (impl *MemKV) Set(_ context.Context, key string, value []byte) error {
	impl.c.Set(key, append([]byte{}, value...), cache.NoExpiration)

	return nil
}

func (impl *MemKV) Delete(_ context.Context, key string) error {
	impl.c.Delete(key)

	return nil
}

func (impl *MemKV) Keys() []string {
	items := impl.c.Items()

	keys := make([]string, 0, len(items))
	for k := range items {
		keys = append(keys, k)
	}

	return keys
}

func (impl *MemKV) Close() error {
	impl.c.Flush()

	return nil
}
