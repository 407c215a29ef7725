package hist

import (
	"math"

	"github.com/sgostarter/libhistory/interval"
)

// H2 is a two-dimensional weighted histogram; bins are laid out x-fastest
// with under- and overflow on both axes.
type H2 struct {
	bins

	name  string
	title string
	xAxis *interval.Interval
	yAxis *interval.Interval
}

func NewH2(name, title string, xAxis, yAxis *interval.Interval) *H2 {
	return &H2{
		bins:  newBins((int(xAxis.Size()) + 2) * (int(yAxis.Size()) + 2)),
		name:  name,
		title: title,
		xAxis: xAxis,
		yAxis: yAxis,
	}
}

func (h *H2) Bin(bx, by int) int {
	return bx + (int(h.xAxis.Size())+2)*by
}

func (h *H2) FindBin(x, y float64) int {
	return h.Bin(int(h.xAxis.IndexFor(x))+1, int(h.yAxis.IndexFor(y))+1)
}

func (h *H2) Fill(x, y float64) {
	h.FillWeight(x, y, 1)
}

func (h *H2) FillWeight(x, y, w float64) {
	h.fill(h.FindBin(x, y), w)
}

func (h *H2) BinContent(bx, by int) float64 {
	return h.contents[h.Bin(bx, by)]
}

func (h *H2) SetBinContent(bx, by int, v float64) {
	h.contents[h.Bin(bx, by)] = v
}

func (h *H2) BinError(bx, by int) float64 {
	return math.Sqrt(h.sumw2[h.Bin(bx, by)])
}

func (h *H2) Integral() (s float64) {
	for by := 1; by <= int(h.yAxis.Size()); by++ {
		s += h.sum(h.Bin(1, by), h.Bin(int(h.xAxis.Size())+1, by))
	}

	return
}

func (h *H2) Entries() float64 {
	return h.entries
}

func (h *H2) XAxis() *interval.Interval {
	return h.xAxis
}

func (h *H2) YAxis() *interval.Interval {
	return h.yAxis
}

func (h *H2) Title() string {
	return h.title
}

func (h *H2) Add(other *H2, c float64) {
	h.add(&other.bins, c)
}

func (h *H2) Scale(c float64) {
	h.scale(c)
}

func (h *H2) Multiply(other *H2) {
	h.multiply(&other.bins)
}

func (h *H2) Divide(other *H2) {
	h.divide(&other.bins)
}

func (h *H2) Clone(name string) *H2 {
	return &H2{
		bins:  h.clone(),
		name:  name,
		title: h.title,
		xAxis: h.xAxis,
		yAxis: h.yAxis,
	}
}

func (h *H2) Reset() {
	h.reset()
}

func (h *H2) Content() float64 {
	return h.contents[h.Bin(1, 1)]
}

func (h *H2) SetName(name string) {
	h.name = name
}

func (h *H2) GetName() string {
	return h.name
}
