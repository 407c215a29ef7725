package rediskv

import (
	"context"
	"testing"

	"github.com/sgostarter/i/l"
	"github.com/sgostarter/libconfig/ut"
	"github.com/stretchr/testify/assert"
)

func utRedisKV(t *testing.T) *RedisKV {
	cfg := ut.SetupUTConfig4Redis(t)

	kv, err := Dial(cfg.RedisDSN, "ut-libhistory", l.NewConsoleLoggerWrapper())
	if err != nil {
		t.Skipf("redis not available: %v", err)
	}

	return kv
}

func TestRedisKV(t *testing.T) {
	kv := utRedisKV(t)
	defer func() {
		_ = kv.Close()
	}()

	ctx := context.Background()

	_ = kv.Delete(ctx, "h_0_0")

	_, exists, err := kv.Get(ctx, "h_0_0")
	assert.Nil(t, err)
	assert.False(t, exists)

	err = kv.Set(ctx, "h_0_0", []byte("kind: label\n"))
	assert.Nil(t, err)

	d, exists, err := kv.Get(ctx, "h_0_0")
	assert.Nil(t, err)
	assert.True(t, exists)
	assert.Equal(t, "kind: label\n", string(d))

	assert.Nil(t, kv.Delete(ctx, "h_0_0"))
}

func TestRedisKey(t *testing.T) {
	kv := &RedisKV{redisKeyPre: "x"}
	assert.Equal(t, "x:h_1", kv.redisKey("h_1"))

	kv.redisKeyPre = ""
	assert.Equal(t, "h_1", kv.redisKey("h_1"))
}
