package multival

import (
	"github.com/sgostarter/libhistory/index"
	"github.com/sgostarter/libhistory/interval"
)

// Multival is the coordinate space of a multidimensional array: one
// Interval per axis, flattened with the same layout the containers use.
type Multival struct {
	intervals []*interval.Interval
	shape     []int64
	size      int64
}

func New(intervals ...*interval.Interval) *Multival {
	shape := make([]int64, 0, len(intervals))
	for _, iv := range intervals {
		shape = append(shape, iv.Size())
	}

	return &Multival{
		intervals: append([]*interval.Interval(nil), intervals...),
		shape:     shape,
		size:      index.Size(shape),
	}
}

func (mv *Multival) IndicesFor(values []float64) []int64 {
	indices := make([]int64, 0, len(mv.intervals))

	for a, iv := range mv.intervals {
		indices = append(indices, iv.IndexFor(values[a]))
	}

	return indices
}

// IndexFor flattens an integral bin tuple; use IndexForValues for
// real-valued coordinates.
func (mv *Multival) IndexFor(indices []int64) int64 {
	return index.Flatten(mv.shape, indices)
}

func (mv *Multival) IndexForValues(values []float64) int64 {
	return mv.IndexFor(mv.IndicesFor(values))
}

func (mv *Multival) IndicesForIndex(flat int64) []int64 {
	return index.Unflatten(mv.shape, flat)
}

func (mv *Multival) Axis(i int) *interval.Interval {
	return mv.intervals[i]
}

func (mv *Multival) Dims() int64 {
	return int64(len(mv.shape))
}

func (mv *Multival) Shape() []int64 {
	return append([]int64(nil), mv.shape...)
}

func (mv *Multival) Size() int64 {
	return mv.size
}
