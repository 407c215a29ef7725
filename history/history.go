package history

import (
	"github.com/sgostarter/i/l"
	"github.com/sgostarter/libhistory/index"
	"github.com/sgostarter/libhistory/multival"
)

// History is an N-dimensional array of accumulators kept in one flat slice,
// axis 0 varying fastest. It is not safe for concurrent use.
type History[T Accumulator[T]] struct {
	logger l.Wrapper

	tag      string
	ordinate string

	dims  int64
	size  int64
	shape []int64

	booker Booker[T]
	slots  []T
}

// New books one accumulator per slot, named tag_i0_i1_... Only an untyped nil
// booker is rejected; a nil pointer wrapped in the interface panics in Book.
func New[T Accumulator[T]](tag, ordinate string, booker Booker[T], shape []int64, options ...Option) (*History[T], error) {
	if booker == nil {
		return nil, ErrNoBooker
	}

	h, err := newBare[T](tag, ordinate, shape, optionNew(options...).logger)
	if err != nil {
		return nil, err
	}

	h.booker = booker

	for i := int64(0); i < h.size; i++ {
		h.slots[i] = booker.Book(SlotName(h.tag, h.IndicesFor(i)), h.ordinate)
	}

	return h, nil
}

func NewFromMultival[T Accumulator[T]](tag, ordinate string, booker Booker[T], mv *multival.Multival,
	options ...Option) (*History[T], error) {
	return New[T](tag, ordinate, booker, mv.Shape(), options...)
}

func newBare[T Accumulator[T]](tag, ordinate string, shape []int64, logger l.Wrapper) (*History[T], error) {
	if !index.ValidShape(shape) {
		return nil, ErrBadShape
	}

	shape = append([]int64{}, shape...)
	size := index.Size(shape)

	return &History[T]{
		logger:   logger,
		tag:      tag,
		ordinate: ordinate,
		dims:     int64(len(shape)),
		size:     size,
		shape:    shape,
		slots:    make([]T, size),
	}, nil
}

// Copy clones every accumulator; the copy's tag and slot names gain
// prefix + "_" in front.
func (h *History[T]) Copy(prefix string) *History[T] {
	c := &History[T]{
		logger:   h.logger,
		tag:      prefix + "_" + h.tag,
		ordinate: h.ordinate,
		dims:     h.dims,
		size:     h.size,
		shape:    append([]int64{}, h.shape...),
		booker:   h.booker,
		slots:    make([]T, 0, len(h.slots)),
	}

	for _, slot := range h.slots {
		name := prefix + "_" + slot.GetName()

		clone := slot.Clone(name)
		clone.SetName(name)

		c.slots = append(c.slots, clone)
	}

	return c
}

func (h *History[T]) IndexFor(indices []int64) int64 {
	return index.Flatten(h.shape, indices)
}

func (h *History[T]) IndicesFor(flat int64) []int64 {
	return index.Unflatten(h.shape, flat)
}

func (h *History[T]) At(flat int64) T {
	return h.slots[flat]
}

func (h *History[T]) AtIndices(indices []int64) T {
	return h.slots[h.IndexFor(indices)]
}

func (h *History[T]) Set(flat int64, acc T) {
	h.slots[flat] = acc
}

func (h *History[T]) SetIndices(indices []int64, acc T) {
	h.slots[h.IndexFor(indices)] = acc
}

func (h *History[T]) Apply(f func(acc T)) {
	for _, slot := range h.slots {
		f(slot)
	}
}

func (h *History[T]) ApplyIndexed(f func(acc T, flat int64)) {
	for i, slot := range h.slots {
		f(slot, int64(i))
	}
}

func (h *History[T]) Tag() string {
	return h.tag
}

func (h *History[T]) Ordinate() string {
	return h.ordinate
}

func (h *History[T]) Dims() int64 {
	return h.dims
}

func (h *History[T]) Size() int64 {
	return h.size
}

func (h *History[T]) Shape() []int64 {
	return append([]int64{}, h.shape...)
}

func (h *History[T]) Booker() Booker[T] {
	return h.booker
}

// Rename is RenameReplace with an empty replacement.
func (h *History[T]) Rename(prefix string) {
	h.RenameReplace("", prefix)
}

// RenameReplace sets the tag to prefix_replace (prefix_tag when replace is
// empty) and substitutes the new tag for the old one in every slot name.
func (h *History[T]) RenameReplace(replace, prefix string) {
	original := h.tag

	if replace == "" {
		replace = h.tag
	}

	h.tag = prefix + "_" + replace

	for _, slot := range h.slots {
		slot.SetName(replaceFirst(slot.GetName(), original, h.tag))
	}
}

func (h *History[T]) Prepend(prefix string) {
	h.Rename(prefix)
}
