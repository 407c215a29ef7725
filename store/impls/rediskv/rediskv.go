package rediskv

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/sgostarter/i/l"
)

func NewRedisKV(redisCli *redis.Client, redisKeyPre string, logger l.Wrapper) *RedisKV {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	logger = logger.WithFields(l.StringField(l.ClsKey, "redisKV"))

	if redisCli == nil {
		logger.Fatal("no redis client")
	}

	return &RedisKV{
		logger:      logger,
		redisCli:    redisCli,
		redisKeyPre: redisKeyPre,
	}
}

// Dial connects to dsn (redis://<user>:<password>@<host>:<port>/<db_number>)
// and checks the server answers a ping.
func Dial(dsn string, redisKeyPre string, logger l.Wrapper) (kv *RedisKV, err error) {
	options, err := redis.ParseURL(dsn)
	if err != nil {
		return
	}

	cli := redis.NewClient(options)

	ctx, cf := context.WithTimeout(context.Background(), 3*time.Second)
	defer cf()

	if err = cli.Ping(ctx).Err(); err != nil {
		_ = cli.Close()

		return
	}

	kv = NewRedisKV(cli, redisKeyPre, logger)

	return
}

type RedisKV struct {
	logger      l.Wrapper
	redisCli    *redis.Client
	redisKeyPre string
}

func (impl *RedisKV) Get(ctx context.Context, key string) (value []byte, exists bool, err error) {
	value, err = impl.redisCli.Get(ctx, impl.redisKey(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		value, err = nil, nil

		return
	}

	if err != nil {
		impl.logger.WithFields(l.ErrorField(err), l.StringField("key", key)).Error("redis get failed")

		return
	}

	exists = true

	return
}

func (impl *RedisKV) Set(ctx context.Context, key string, value []byte) error {
	return impl.redisCli.Set(ctx, impl.redisKey(key), value, 0).Err()
}

func (impl *RedisKV) Delete(ctx context.Context, key string) error {
	return impl.redisCli.Del(ctx, impl.redisKey(key)).Err()
}

func (impl *RedisKV) Close() error {
	return impl.redisCli.Close()
}

func (impl *RedisKV) redisKey(key string) string {
	if impl.redisKeyPre == "" {
		return key
	}

	return impl.redisKeyPre + ":" + key
}
