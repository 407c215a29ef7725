package history

import (
	"fmt"
	"strconv"

	"github.com/sgostarter/libhistory/index"
)

// SumSlot adds up every slot along axis at the fixed coordinates of the other
// axes. The value of indices[axis] is ignored.
func (h *History[T]) SumSlot(indices []int64, axis int64) T {
	return h.sumSlot(indices, axis, 0, h.shape[axis], "")
}

// SumSlotRange is SumSlot restricted to [start, end) along axis.
func (h *History[T]) SumSlotRange(indices []int64, axis, start, end int64) T {
	return h.sumSlot(indices, axis, start, end, "_"+strconv.FormatInt(start, 10)+"_"+strconv.FormatInt(end, 10))
}

func (h *History[T]) sumSlot(indices []int64, axis, start, end int64, suffix string) T {
	indices = append([]int64{}, indices...)

	retained := make([]int64, 0, len(indices))
	retained = append(retained, indices[:axis]...)
	retained = append(retained, indices[axis+1:]...)

	name := h.tag + "_sum" + strconv.FormatInt(axis, 10) + suffix + stub(retained)

	indices[axis] = start

	sum := h.AtIndices(indices).Clone(name)
	sum.SetName(name)
	sum.Reset()

	for i := start; i < end; i++ {
		indices[axis] = i
		sum.Add(h.AtIndices(indices), 1)
	}

	return sum
}

// Sum reduces the axes one after another, left to right. Each axis number
// refers to the shape left by the previous reductions.
func (h *History[T]) Sum(axis int64, axes ...int64) (*History[T], error) {
	result, err := h.sumAxis(axis)
	if err != nil {
		return nil, err
	}

	for _, a := range axes {
		result, err = result.sumAxis(a)
		if err != nil {
			return nil, err
		}
	}

	return result, nil
}

func (h *History[T]) sumAxis(axis int64) (*History[T], error) {
	if axis < 0 || axis >= h.dims {
		return nil, fmt.Errorf("axis %d of %d: %w", axis, h.dims, ErrNoAxis)
	}

	shape := make([]int64, 0, h.dims-1)
	shape = append(shape, h.shape[:axis]...)
	shape = append(shape, h.shape[axis+1:]...)

	result, err := newBare[T](h.tag+"_sum"+strconv.FormatInt(axis, 10), h.ordinate, shape, h.logger)
	if err != nil {
		return nil, err
	}

	result.booker = h.booker

	for i := int64(0); i < result.size; i++ {
		indices := insertAt(result.IndicesFor(i), axis, 0)
		result.slots[i] = h.SumSlot(indices, axis)
	}

	return result, nil
}

// Shrink returns a cloned window of h: shape[a] slots starting at offset[a]
// on every axis. Surviving slots keep their relative order and are renamed
// after their position in the new shape under the tag prefix_<h's tag>.
func (h *History[T]) Shrink(prefix string, shape, offset []int64) (*History[T], error) {
	if !h.fits(shape, offset) {
		return nil, ErrBadShape
	}

	result := h.Copy(prefix)

	kept := result.slots[:0]

	for i := int64(0); i < h.size; i++ {
		if inWindow(h.IndicesFor(i), shape, offset) {
			kept = append(kept, result.slots[i])
		}
	}

	result.slots = kept
	result.shape = append([]int64{}, shape...)
	result.size = index.Size(shape)

	result.ApplyIndexed(func(acc T, flat int64) {
		acc.SetName(SlotName(result.tag, result.IndicesFor(flat)))
	})

	return result, nil
}

func (h *History[T]) fits(shape, offset []int64) bool {
	if int64(len(shape)) != h.dims || int64(len(offset)) != h.dims || !index.ValidShape(shape) {
		return false
	}

	for a := int64(0); a < h.dims; a++ {
		if offset[a] < 0 || offset[a]+shape[a] > h.shape[a] {
			return false
		}
	}

	return true
}

func inWindow(indices, shape, offset []int64) bool {
	for a := range indices {
		if indices[a] < offset[a] || indices[a] >= offset[a]+shape[a] {
			return false
		}
	}

	return true
}
