package interval

import "sort"

// Interval is one axis of bin edges. Bin i is the half-open range
// [edges[i], edges[i+1]).
type Interval struct {
	abscissa string
	size     int64
	edges    []float64
}

func New(abscissa string, number int64, min, max float64) (*Interval, error) {
	if number < 1 {
		return nil, ErrBadSize
	}

	if max < min {
		return nil, ErrBadEdges
	}

	edges := make([]float64, number+1)
	width := (max - min) / float64(number)

	for k := range edges {
		edges[k] = min + float64(k)*width
	}

	return &Interval{
		abscissa: abscissa,
		size:     number,
		edges:    edges,
	}, nil
}

func NewUniform(number int64, min, max float64) (*Interval, error) {
	return New("", number, min, max)
}

func FromEdges(abscissa string, edges []float64) (*Interval, error) {
	if len(edges) < 2 {
		return nil, ErrBadSize
	}

	for i := 1; i < len(edges); i++ {
		if edges[i] < edges[i-1] {
			return nil, ErrBadEdges
		}
	}

	return &Interval{
		abscissa: abscissa,
		size:     int64(len(edges) - 1),
		edges:    append([]float64(nil), edges...),
	}, nil
}

// IndexFor returns size minus the number of edges strictly above value.
// Values below the first edge give -1 and values at or above the last edge
// give size; clamping is left to the caller.
func (iv *Interval) IndexFor(value float64) int64 {
	above := len(iv.edges) - sort.Search(len(iv.edges), func(i int) bool {
		return iv.edges[i] > value
	})

	return iv.size - int64(above)
}

func (iv *Interval) Edges(index int64) [2]float64 {
	return [2]float64{iv.edges[index], iv.edges[index+1]}
}

func (iv *Interval) At(k int64) float64 {
	return iv.edges[k]
}

func (iv *Interval) AllEdges() []float64 {
	return append([]float64(nil), iv.edges...)
}

func (iv *Interval) Abscissa() string {
	return iv.abscissa
}

func (iv *Interval) Size() int64 {
	return iv.size
}

func (iv *Interval) Low() float64 {
	return iv.edges[0]
}

func (iv *Interval) High() float64 {
	return iv.edges[iv.size]
}
