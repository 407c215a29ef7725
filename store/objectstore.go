package store

import (
	"context"
	"fmt"

	"github.com/sgostarter/i/commerr"
	"github.com/sgostarter/i/l"
	"gopkg.in/yaml.v3"
)

const (
	kindObject = "object"
	kindLabel  = "label"
)

type record struct {
	Kind  string `yaml:"kind"`
	Title string `yaml:"title,omitempty"`
	Data  string `yaml:"data,omitempty"`
}

// ObjectStore keeps accumulators and shape labels in a KV backend. Every Get
// decodes a fresh instance, so callers own what they receive.
type ObjectStore[T any] struct {
	logger l.Wrapper
	kv     KV
	codec  Codec[T]
}

func NewObjectStore[T any](kv KV, codec Codec[T], logger l.Wrapper) *ObjectStore[T] {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	logger = logger.WithFields(l.StringField(l.ClsKey, "objectStore"))

	if kv == nil || codec == nil {
		logger.Fatal("no kv or codec")
	}

	return &ObjectStore[T]{
		logger: logger,
		kv:     kv,
		codec:  codec,
	}
}

func (impl *ObjectStore[T]) Get(ctx context.Context, name string) (obj T, err error) {
	r, err := impl.read(ctx, name, kindObject)
	if err != nil {
		return
	}

	obj, err = impl.codec.Unmarshal([]byte(r.Data))
	if err != nil {
		impl.logger.WithFields(l.ErrorField(err), l.StringField("name", name)).Error("decode object failed")
	}

	return
}

func (impl *ObjectStore[T]) Write(ctx context.Context, name string, obj T) error {
	d, err := impl.codec.Marshal(obj)
	if err != nil {
		impl.logger.WithFields(l.ErrorField(err), l.StringField("name", name)).Error("encode object failed")

		return err
	}

	return impl.write(ctx, name, &record{
		Kind: kindObject,
		Data: string(d),
	})
}

func (impl *ObjectStore[T]) GetLabel(ctx context.Context, name string) (title string, err error) {
	r, err := impl.read(ctx, name, kindLabel)
	if err != nil {
		return
	}

	title = r.Title

	return
}

func (impl *ObjectStore[T]) WriteLabel(ctx context.Context, name, title string) error {
	return impl.write(ctx, name, &record{
		Kind:  kindLabel,
		Title: title,
	})
}

func (impl *ObjectStore[T]) Delete(ctx context.Context, name string) error {
	return impl.kv.Delete(ctx, name)
}

func (impl *ObjectStore[T]) Close() error {
	return impl.kv.Close()
}

func (impl *ObjectStore[T]) read(ctx context.Context, name, kind string) (r *record, err error) {
	d, exists, err := impl.kv.Get(ctx, name)
	if err != nil {
		return
	}

	if !exists {
		err = fmt.Errorf("%s: %w", name, commerr.ErrNotFound)

		return
	}

	r = &record{}

	if err = yaml.Unmarshal(d, r); err != nil {
		return
	}

	if r.Kind != kind {
		err = fmt.Errorf("%s is %q, want %q: %w", name, r.Kind, kind, ErrWrongKind)
	}

	return
}

func (impl *ObjectStore[T]) write(ctx context.Context, name string, r *record) error {
	d, err := yaml.Marshal(r)
	if err != nil {
		return err
	}

	return impl.kv.Set(ctx, name, d)
}
