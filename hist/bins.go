package hist

// bins holds per-bin sums of weights and squared weights, including the
// under- and overflow bins, for H1 and H2 alike.
type bins struct {
	contents []float64
	sumw2    []float64
	entries  float64
}

func newBins(n int) bins {
	return bins{
		contents: make([]float64, n),
		sumw2:    make([]float64, n),
	}
}

func (b *bins) fill(bin int, w float64) {
	b.contents[bin] += w
	b.sumw2[bin] += w * w
	b.entries++
}

func (b *bins) same(o *bins) bool {
	return len(b.contents) == len(o.contents)
}

func (b *bins) add(o *bins, c float64) {
	if !b.same(o) {
		return
	}

	for i := range b.contents {
		b.contents[i] += c * o.contents[i]
		b.sumw2[i] += c * c * o.sumw2[i]
	}

	b.entries += o.entries
}

func (b *bins) scale(c float64) {
	for i := range b.contents {
		b.contents[i] *= c
		b.sumw2[i] *= c * c
	}
}

func (b *bins) multiply(o *bins) {
	if !b.same(o) {
		return
	}

	for i := range b.contents {
		x, y := b.contents[i], o.contents[i]

		b.contents[i] = x * y
		b.sumw2[i] = b.sumw2[i]*y*y + o.sumw2[i]*x*x
	}
}

// divide leaves a zero in every bin whose divisor is zero.
func (b *bins) divide(o *bins) {
	if !b.same(o) {
		return
	}

	for i := range b.contents {
		x, y := b.contents[i], o.contents[i]

		if y == 0 {
			b.contents[i] = 0
			b.sumw2[i] = 0

			continue
		}

		b.contents[i] = x / y
		b.sumw2[i] = (b.sumw2[i]*y*y + o.sumw2[i]*x*x) / (y * y * y * y)
	}
}

func (b *bins) reset() {
	for i := range b.contents {
		b.contents[i] = 0
		b.sumw2[i] = 0
	}

	b.entries = 0
}

func (b *bins) clone() bins {
	return bins{
		contents: append([]float64{}, b.contents...),
		sumw2:    append([]float64{}, b.sumw2...),
		entries:  b.entries,
	}
}

func (b *bins) sum(from, to int) (s float64) {
	for i := from; i < to; i++ {
		s += b.contents[i]
	}

	return
}
