package hist

import (
	"math"

	"github.com/sgostarter/libhistory/interval"
)

// H1 is a one-dimensional weighted histogram. Bin 0 is the underflow,
// bins 1..n follow the axis and bin n+1 is the overflow.
type H1 struct {
	bins

	name  string
	title string
	axis  *interval.Interval
}

func NewH1(name, title string, axis *interval.Interval) *H1 {
	return &H1{
		bins:  newBins(int(axis.Size()) + 2),
		name:  name,
		title: title,
		axis:  axis,
	}
}

func (h *H1) FindBin(x float64) int {
	return int(h.axis.IndexFor(x)) + 1
}

func (h *H1) Fill(x float64) {
	h.FillWeight(x, 1)
}

func (h *H1) FillWeight(x, w float64) {
	h.fill(h.FindBin(x), w)
}

func (h *H1) NBins() int {
	return int(h.axis.Size())
}

func (h *H1) BinContent(bin int) float64 {
	return h.contents[bin]
}

func (h *H1) SetBinContent(bin int, v float64) {
	h.contents[bin] = v
}

func (h *H1) BinError(bin int) float64 {
	return math.Sqrt(h.sumw2[bin])
}

// Integral sums the in-range bins.
func (h *H1) Integral() float64 {
	return h.sum(1, h.NBins()+1)
}

func (h *H1) Entries() float64 {
	return h.entries
}

func (h *H1) Axis() *interval.Interval {
	return h.axis
}

func (h *H1) Title() string {
	return h.title
}

func (h *H1) Add(other *H1, c float64) {
	h.add(&other.bins, c)
}

func (h *H1) Scale(c float64) {
	h.scale(c)
}

func (h *H1) Multiply(other *H1) {
	h.multiply(&other.bins)
}

func (h *H1) Divide(other *H1) {
	h.divide(&other.bins)
}

func (h *H1) Clone(name string) *H1 {
	return &H1{
		bins:  h.clone(),
		name:  name,
		title: h.title,
		axis:  h.axis,
	}
}

func (h *H1) Reset() {
	h.reset()
}

func (h *H1) Content() float64 {
	return h.contents[1]
}

func (h *H1) SetName(name string) {
	h.name = name
}

func (h *H1) GetName() string {
	return h.name
}
