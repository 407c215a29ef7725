package history

import (
	"sort"

	"github.com/sgostarter/i/l"
)

// Add accumulates c*other into every slot. Shapes must match.
func (h *History[T]) Add(other *History[T], c float64) {
	for i := int64(0); i < h.size; i++ {
		h.slots[i].Add(other.slots[i], c)
	}
}

func (h *History[T]) Plus(other *History[T]) {
	h.Add(other, 1)
}

func (h *History[T]) Minus(other *History[T]) {
	h.Add(other, -1)
}

func (h *History[T]) Scale(c float64) {
	for _, slot := range h.slots {
		slot.Scale(c)
	}
}

// ScaleInverse scales by 1/c; c == 0 is passed through to the accumulators.
func (h *History[T]) ScaleInverse(c float64) {
	h.Scale(1. / c)
}

func (h *History[T]) MultiplyBy(acc T) {
	h.Apply(func(slot T) {
		slot.Multiply(acc)
	})
}

func (h *History[T]) DivideBy(acc T) {
	h.Apply(func(slot T) {
		slot.Divide(acc)
	})
}

// Multiply scales h by other, broadcasting over the trailing axes h has
// beyond other's rank. The leading axes must match other's shape exactly,
// otherwise ErrIncompatible is returned and h is left untouched.
func (h *History[T]) Multiply(other *History[T]) error {
	axes, err := h.trailingAxes(other)
	if err != nil {
		return err
	}

	return h.MultiplyAlong(other, axes)
}

func (h *History[T]) Divide(other *History[T]) error {
	axes, err := h.trailingAxes(other)
	if err != nil {
		return err
	}

	return h.DivideAlong(other, axes)
}

// MultiplyAlong scales every slot of h by the content of the slot of other
// that matches it on all axes not listed in axes.
func (h *History[T]) MultiplyAlong(other *History[T], axes []int64) error {
	return h.scaleAlong(other, axes, func(content float64) float64 {
		return content
	})
}

// DivideAlong is MultiplyAlong with the reciprocal content; a zero content
// scales by zero.
func (h *History[T]) DivideAlong(other *History[T], axes []int64) error {
	return h.scaleAlong(other, axes, func(content float64) float64 {
		if content == 0 {
			return 0
		}

		return 1. / content
	})
}

func (h *History[T]) compatible(other *History[T]) bool {
	if h.dims < other.dims {
		return false
	}

	for a := int64(0); a < other.dims; a++ {
		if h.shape[a] != other.shape[a] {
			return false
		}
	}

	return true
}

func (h *History[T]) trailingAxes(other *History[T]) (axes []int64, err error) {
	if !h.compatible(other) {
		h.logger.WithFields(l.StringField("tag", h.tag), l.StringField("other", other.tag)).
			Error("incompatible broadcast operand")

		err = ErrIncompatible

		return
	}

	axes = make([]int64, 0, h.dims-other.dims)
	for a := other.dims; a < h.dims; a++ {
		axes = append(axes, a)
	}

	return
}

func (h *History[T]) scaleAlong(other *History[T], axes []int64, factor func(content float64) float64) error {
	axes = append([]int64{}, axes...)
	sort.Slice(axes, func(i, j int) bool {
		return axes[i] < axes[j]
	})

	if !h.broadcastable(other, axes) {
		return ErrIncompatible
	}

	for j := int64(0); j < other.size; j++ {
		indices := other.IndicesFor(j)
		for _, axis := range axes {
			indices = insertAt(indices, axis, 0)
		}

		scale := factor(other.slots[j].Content())

		h.permute(func(indices []int64) {
			h.AtIndices(indices).Scale(scale)
		}, indices, axes, 0)
	}

	return nil
}

func (h *History[T]) broadcastable(other *History[T], axes []int64) bool {
	if int64(len(axes))+other.dims != h.dims {
		return false
	}

	listed := make(map[int64]bool, len(axes))

	for _, axis := range axes {
		if axis < 0 || axis >= h.dims || listed[axis] {
			return false
		}

		listed[axis] = true
	}

	a := int64(0)

	for axis := int64(0); axis < h.dims; axis++ {
		if listed[axis] {
			continue
		}

		if h.shape[axis] != other.shape[a] {
			return false
		}

		a++
	}

	return true
}

// permute visits every combination of the broadcast axes, filling one
// coordinate per level and calling fn at the leaf.
func (h *History[T]) permute(fn func(indices []int64), indices []int64, axes []int64, level int) {
	if level == len(axes) {
		fn(indices)

		return
	}

	axis := axes[level]
	for i := int64(0); i < h.shape[axis]; i++ {
		indices[axis] = i
		h.permute(fn, indices, axes, level+1)
	}
}

func insertAt(indices []int64, pos int64, v int64) []int64 {
	indices = append(indices, 0)
	copy(indices[pos+1:], indices[pos:])
	indices[pos] = v

	return indices
}
