package memory

import (
	"github.com/sgostarter/libhistory/history"
	"github.com/sgostarter/libhistory/multival"
)

// Memory is a History whose axes carry real-valued binnings, so slots can
// be addressed by coordinates as well as by indices. The Multival is shared,
// never copied.
type Memory[T history.Accumulator[T]] struct {
	*history.History[T]

	intervals *multival.Multival
}

func New[T history.Accumulator[T]](tag, ordinate string, booker history.Booker[T], intervals *multival.Multival,
	options ...history.Option) (*Memory[T], error) {
	h, err := history.NewFromMultival[T](tag, ordinate, booker, intervals, options...)
	if err != nil {
		return nil, err
	}

	return Wrap(h, intervals), nil
}

// Wrap adopts h; its shape is expected to match intervals.
func Wrap[T history.Accumulator[T]](h *history.History[T], intervals *multival.Multival) *Memory[T] {
	return &Memory[T]{
		History:   h,
		intervals: intervals,
	}
}

func (m *Memory[T]) Copy(prefix string) *Memory[T] {
	return Wrap(m.History.Copy(prefix), m.intervals)
}

func (m *Memory[T]) Intervals() *multival.Multival {
	return m.intervals
}

func (m *Memory[T]) IndicesForValues(values []float64) []int64 {
	return m.intervals.IndicesFor(values)
}

func (m *Memory[T]) IndexForValues(values []float64) int64 {
	return m.IndexFor(m.IndicesForValues(values))
}

func (m *Memory[T]) AtValues(values []float64) T {
	return m.At(m.IndexForValues(values))
}

func (m *Memory[T]) SetValues(values []float64, acc T) {
	m.Set(m.IndexForValues(values), acc)
}
