package fskv

import (
	"context"
	"sync"

	"github.com/sgostarter/i/stg"
	"github.com/sgostarter/libeasygo/stg/fs/rawfs"
	"github.com/sgostarter/libeasygo/stg/mwf"
)

func NewFSKV(file string, storage stg.FileStorage) *FSKV {
	if storage == nil {
		storage = rawfs.NewFSStorage("")
	}

	return &FSKV{
		d: mwf.NewMemWithFile[map[string]string, mwf.Serial, mwf.Lock](
			make(map[string]string), &mwf.JSONSerial{}, &sync.RWMutex{}, file, storage),
	}
}

// FSKV mirrors a string map into one JSON file; every Set rewrites it.
type FSKV struct {
	d *mwf.MemWithFile[map[string]string, mwf.Serial, mwf.Lock]
}

func (impl *FSKV) Get(_ context.Context, key string) (value []byte, exists bool, err error) {
	impl.d.Read(func(m map[string]string) {
		var v string

		v, exists = m[key]
		if exists {
			value = []byte(v)
		}
	})

	return
}

func (impl *FSKV) Set(_ context.Context, key string, value []byte) error {
	return impl.d.Change(func(oldM map[string]string) (newM map[string]string, err error) {
		newM = oldM
		if newM == nil {
			newM = make(map[string]string)
		}

		newM[key] = string(value)

		return
	})
}

func (impl *FSKV) Delete(_ context.Context, key string) error {
	return impl.d.Change(func(oldM map[string]string) (newM map[string]string, err error) {
		newM = oldM

		delete(newM, key)

		return
	})
}

func (impl *FSKV) Close() error {
	return nil
}
