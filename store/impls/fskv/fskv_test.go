package fskv

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFSKV(t *testing.T) {
	file := filepath.Join(t.TempDir(), "histories.json")
	ctx := context.Background()

	kv := NewFSKV(file, nil)

	_, exists, err := kv.Get(ctx, "a")
	assert.Nil(t, err)
	assert.False(t, exists)

	assert.Nil(t, kv.Set(ctx, "a", []byte("kind: object\n")))
	assert.Nil(t, kv.Set(ctx, "b", []byte("kind: label\n")))

	d, exists, err := kv.Get(ctx, "a")
	assert.Nil(t, err)
	assert.True(t, exists)
	assert.Equal(t, "kind: object\n", string(d))

	assert.Nil(t, kv.Delete(ctx, "b"))

	_, exists, _ = kv.Get(ctx, "b")
	assert.False(t, exists)

	reopened := NewFSKV(file, nil)

	d, exists, err = reopened.Get(ctx, "a")
	assert.Nil(t, err)
	assert.True(t, exists)
	assert.Equal(t, "kind: object\n", string(d))

	assert.Nil(t, reopened.Close())
}
