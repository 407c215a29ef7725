package store

import "context"

// KV is a byte-oriented key/value backend. Get reports a missing key with
// exists == false and a nil error.
type KV interface {
	Get(ctx context.Context, key string) (value []byte, exists bool, err error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}

type Codec[T any] interface {
	Marshal(obj T) ([]byte, error)
	Unmarshal(d []byte) (T, error)
}
