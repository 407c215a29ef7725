package hist

import (
	"fmt"

	"github.com/sgostarter/libhistory/interval"
	"gopkg.in/yaml.v3"
)

type axisData struct {
	Abscissa string    `yaml:"abscissa,omitempty"`
	Edges    []float64 `yaml:"edges"`
}

type binsData struct {
	Contents []float64 `yaml:"contents"`
	SumW2    []float64 `yaml:"sumw2"`
	Entries  float64   `yaml:"entries"`
}

type h1Data struct {
	Name  string   `yaml:"name"`
	Title string   `yaml:"title,omitempty"`
	X     axisData `yaml:"x"`
	Bins  binsData `yaml:"bins"`
}

type h2Data struct {
	Name  string   `yaml:"name"`
	Title string   `yaml:"title,omitempty"`
	X     axisData `yaml:"x"`
	Y     axisData `yaml:"y"`
	Bins  binsData `yaml:"bins"`
}

func axisToData(iv *interval.Interval) axisData {
	return axisData{
		Abscissa: iv.Abscissa(),
		Edges:    iv.AllEdges(),
	}
}

func binsToData(b *bins) binsData {
	return binsData{
		Contents: b.contents,
		SumW2:    b.sumw2,
		Entries:  b.entries,
	}
}

func binsFromData(d binsData, n int) (b bins, err error) {
	if len(d.Contents) != n || len(d.SumW2) != n {
		err = fmt.Errorf("want %d bins, got %d/%d: %w", n, len(d.Contents), len(d.SumW2), ErrBadData)

		return
	}

	b = bins{
		contents: d.Contents,
		sumw2:    d.SumW2,
		entries:  d.Entries,
	}

	return
}

type H1Codec struct{}

func (H1Codec) Marshal(h *H1) ([]byte, error) {
	return yaml.Marshal(&h1Data{
		Name:  h.name,
		Title: h.title,
		X:     axisToData(h.axis),
		Bins:  binsToData(&h.bins),
	})
}

func (H1Codec) Unmarshal(d []byte) (h *H1, err error) {
	var data h1Data

	if err = yaml.Unmarshal(d, &data); err != nil {
		return
	}

	axis, err := interval.FromEdges(data.X.Abscissa, data.X.Edges)
	if err != nil {
		return
	}

	b, err := binsFromData(data.Bins, int(axis.Size())+2)
	if err != nil {
		return
	}

	h = &H1{
		bins:  b,
		name:  data.Name,
		title: data.Title,
		axis:  axis,
	}

	return
}

type H2Codec struct{}

func (H2Codec) Marshal(h *H2) ([]byte, error) {
	return yaml.Marshal(&h2Data{
		Name:  h.name,
		Title: h.title,
		X:     axisToData(h.xAxis),
		Y:     axisToData(h.yAxis),
		Bins:  binsToData(&h.bins),
	})
}

func (H2Codec) Unmarshal(d []byte) (h *H2, err error) {
	var data h2Data

	if err = yaml.Unmarshal(d, &data); err != nil {
		return
	}

	xAxis, err := interval.FromEdges(data.X.Abscissa, data.X.Edges)
	if err != nil {
		return
	}

	yAxis, err := interval.FromEdges(data.Y.Abscissa, data.Y.Edges)
	if err != nil {
		return
	}

	b, err := binsFromData(data.Bins, (int(xAxis.Size())+2)*(int(yAxis.Size())+2))
	if err != nil {
		return
	}

	h = &H2{
		bins:  b,
		name:  data.Name,
		title: data.Title,
		xAxis: xAxis,
		yAxis: yAxis,
	}

	return
}
