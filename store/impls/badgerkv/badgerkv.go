package badgerkv

import (
	"context"
	"errors"

	"github.com/dgraph-io/badger/v4"
)

type BadgerKV struct {
	db *badger.DB
}

func NewBadgerKV(db *badger.DB) *BadgerKV {
	return &BadgerKV{db: db}
}

// Open opens a badger database at path, or an in-memory one when inMemory
// is set (path is then ignored).
func Open(path string, inMemory bool) (*BadgerKV, error) {
	var opts badger.Options
	if inMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		opts = badger.DefaultOptions(path)
	}

	opts = opts.WithLogger(nil)

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}

	return NewBadgerKV(db), nil
}

func (b *BadgerKV) Get(_ context.Context, key string) (value []byte, exists bool, err error) {
	err = b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return nil
			}

			return err
		}

		value, err = item.ValueCopy(nil)
		exists = err == nil

		return err
	})

	return
}

func (b *BadgerKV) Set(_ context.Context, key string, value []byte) error {
	return b.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), value)
	})
}

func (b *BadgerKV) Delete(_ context.Context, key string) error {
	return b.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key))
	})
}

func (b *BadgerKV) Close() error {
	return b.db.Close()
}
