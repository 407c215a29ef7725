package hist

import (
	"github.com/sgostarter/libhistory/interval"
	"github.com/sgostarter/libhistory/multival"
)

type H1Booker struct {
	axis *interval.Interval
}

func NewH1Booker(axis *interval.Interval) *H1Booker {
	return &H1Booker{
		axis: axis,
	}
}

// NewH1BookerFromMultival books along the first axis of mv.
func NewH1BookerFromMultival(mv *multival.Multival) *H1Booker {
	return NewH1Booker(mv.Axis(0))
}

func (b *H1Booker) Book(name, ordinate string) *H1 {
	return NewH1(name, ";"+b.axis.Abscissa()+";"+ordinate, b.axis)
}

type H2Booker struct {
	xAxis *interval.Interval
	yAxis *interval.Interval
}

// NewH2Booker books over the first two axes of mv.
func NewH2Booker(mv *multival.Multival) *H2Booker {
	return &H2Booker{
		xAxis: mv.Axis(0),
		yAxis: mv.Axis(1),
	}
}

func (b *H2Booker) Book(name, _ string) *H2 {
	return NewH2(name, ";"+b.xAxis.Abscissa()+";"+b.yAxis.Abscissa(), b.xAxis, b.yAxis)
}
