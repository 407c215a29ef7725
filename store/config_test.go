package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/sgostarter/i/commerr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.yaml")

	require.NoError(t, os.WriteFile(path, []byte("type: redis\nredisDSN: redis://:@127.0.0.1:6379\nkeyPrefix: hs\n"), 0600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, TypeRedis, cfg.Type)
	assert.Equal(t, "redis://:@127.0.0.1:6379", cfg.RedisDSN)
	assert.Equal(t, "hs", cfg.KeyPrefix)
	assert.Equal(t, defaultFile, cfg.File)
}

func TestLoadConfigDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.yaml")

	require.NoError(t, os.WriteFile(path, []byte("root: /tmp\n"), 0600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, TypeMemory, cfg.Type)
	assert.Equal(t, "/tmp", cfg.Root)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.NotNil(t, err)
}

func TestNewKV(t *testing.T) {
	ctx := context.Background()

	kv, err := NewKV(nil, nil)
	require.NoError(t, err)
	require.NoError(t, kv.Set(ctx, "k", []byte("v")))

	d, exists, err := kv.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, exists)
	assert.Equal(t, "v", string(d))
	assert.Nil(t, kv.Close())

	kv, err = NewKV(&Config{Type: TypeBadger, InMemory: true}, nil)
	require.NoError(t, err)
	require.NoError(t, kv.Set(ctx, "k", []byte("v")))
	assert.Nil(t, kv.Close())

	kv, err = NewKV(&Config{Type: TypeFile, Root: t.TempDir()}, nil)
	require.NoError(t, err)
	require.NoError(t, kv.Set(ctx, "k", []byte("v")))
	assert.Nil(t, kv.Close())
}

func TestNewKVErrors(t *testing.T) {
	_, err := NewKV(&Config{Type: "etcd"}, nil)
	assert.True(t, errors.Is(err, ErrUnknownType))

	_, err = NewKV(&Config{Type: TypeRedis}, nil)
	assert.True(t, errors.Is(err, commerr.ErrInvalidArgument))

	_, err = NewKV(&Config{Type: TypeBadger}, nil)
	assert.True(t, errors.Is(err, commerr.ErrInvalidArgument))
}
