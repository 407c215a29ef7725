package history

import "context"

// Accumulator is the surface History needs from one slot. Implementations
// own their bin contents; History never looks inside.
type Accumulator[T any] interface {
	Add(other T, c float64)
	Scale(c float64)
	Multiply(other T)
	Divide(other T)
	Clone(name string) T
	Reset()
	// Content is the representative scalar of the accumulator, its first
	// in-range bin.
	Content() float64
	SetName(name string)
	GetName() string
}

type Booker[T any] interface {
	Book(name, ordinate string) T
}

// Store persists accumulators and shape labels by name. Writes overwrite.
// Missing names yield an error matching commerr.ErrNotFound.
type Store[T any] interface {
	Get(ctx context.Context, name string) (T, error)
	Write(ctx context.Context, name string, obj T) error

	GetLabel(ctx context.Context, name string) (title string, err error)
	WriteLabel(ctx context.Context, name, title string) error
}
