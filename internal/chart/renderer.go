// Package chart renders per-metric response distributions as a clustered bar
// chart: one cluster per metric, one bar per response value.
package chart

import (
	"bytes"
	"fmt"
	"strconv"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/godilite/likert-reports/internal/survey"
)

// Options controls the fixed rendering style. Zero fields take the defaults.
type Options struct {
	Width     int
	Height    int
	DPI       float64
	BarWidth  float64
	WrapWidth int
	Palette   Palette
}

// DefaultOptions renders a 7x4 inch chart at 300 DPI.
func DefaultOptions() Options {
	return Options{
		Width:     2100,
		Height:    1200,
		DPI:       300,
		BarWidth:  0.15,
		WrapWidth: 13,
		Palette:   LikertPalette(),
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.Width <= 0 {
		o.Width = d.Width
	}
	if o.Height <= 0 {
		o.Height = d.Height
	}
	if o.DPI <= 0 {
		o.DPI = d.DPI
	}
	if o.BarWidth <= 0 {
		o.BarWidth = d.BarWidth
	}
	if o.WrapWidth <= 0 {
		o.WrapWidth = d.WrapWidth
	}
	if o.Palette == nil {
		o.Palette = d.Palette
	}
	return o
}

// Renderer draws clustered bar charts for a fixed scale.
type Renderer struct {
	scale survey.Scale
	opts  Options
}

// NewRenderer creates a Renderer for the given scale.
func NewRenderer(scale survey.Scale, opts Options) *Renderer {
	return &Renderer{scale: scale, opts: opts.withDefaults()}
}

// Render returns the chart as PNG bytes. Identical input renders identical bytes.
func (r *Renderer) Render(subject, axisLabel string, ds survey.Distributions) ([]byte, error) {
	c := r.Chart(subject, axisLabel, ds)

	var buf bytes.Buffer
	if err := c.Render(gochart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render chart for %q: %w", subject, err)
	}
	return buf.Bytes(), nil
}

// px scales a pixel length laid out for 300 DPI to the configured DPI.
func (r *Renderer) px(v int) int {
	return int(float64(v) * r.opts.DPI / 300)
}

// Series returns one bar series per scale value, in scale order.
func (r *Renderer) Series(ds survey.Distributions) []BarSeries {
	n := len(r.scale)
	out := make([]BarSeries, n)

	for v, resp := range r.scale {
		color := r.opts.Palette.Color(resp)
		s := BarSeries{
			Name:      string(resp),
			Style:     gochart.Style{StrokeColor: color, StrokeWidth: 12},
			Positions: make([]float64, len(ds)),
			Values:    make([]float64, len(ds)),
			Width:     r.opts.BarWidth,
		}
		for m, d := range ds {
			s.Positions[m] = BarOffset(m, v, n, r.opts.BarWidth)
			s.Values[m] = float64(d.Counts[resp])
		}
		out[v] = s
	}
	return out
}

// Chart builds the go-chart definition without rendering it.
func (r *Renderer) Chart(subject, axisLabel string, ds survey.Distributions) gochart.Chart {
	maxCount := 0
	for _, d := range ds {
		for _, c := range d.Counts {
			if c > maxCount {
				maxCount = c
			}
		}
	}

	yTicks := countTicks(maxCount)
	ticks := make([]gochart.Tick, len(yTicks))
	grid := make([]gochart.GridLine, len(yTicks))
	for i, v := range yTicks {
		ticks[i] = gochart.Tick{Value: float64(v), Label: strconv.Itoa(v)}
		grid[i] = gochart.GridLine{Value: float64(v)}
	}

	clusters := len(ds)
	if clusters == 0 {
		clusters = 1
	}
	// Labels sit between boundary ticks so each one is centred under its cluster.
	xTicks := []gochart.Tick{{Value: -0.5}}
	for m, d := range ds {
		xTicks = append(xTicks, gochart.Tick{Value: float64(m) + 0.5, Label: WrapLabel(d.Metric, r.opts.WrapWidth)})
	}
	if len(ds) == 0 {
		xTicks = append(xTicks, gochart.Tick{Value: 0.5})
	}

	series := make([]gochart.Series, 0, len(r.scale))
	for _, s := range r.Series(ds) {
		series = append(series, s)
	}

	c := gochart.Chart{
		Title:      subject + " - Likert Scale Response Distribution",
		TitleStyle: gochart.Style{FontSize: 12},
		Width:      r.opts.Width,
		Height:     r.opts.Height,
		DPI:        r.opts.DPI,
		Background: gochart.Style{
			FillColor: drawing.ColorWhite,
			Padding:   gochart.Box{Top: r.px(150), Left: r.px(40), Right: r.px(60), Bottom: r.px(170)},
		},
		XAxis: gochart.XAxis{
			Name:         axisLabel,
			NameStyle:    gochart.Style{FontSize: 10},
			Range:        &gochart.ContinuousRange{Min: -0.5, Max: float64(clusters) - 0.5},
			Ticks:        xTicks,
			TickPosition: gochart.TickPositionBetweenTicks,
			TickStyle:    gochart.Style{FontSize: 8, TextWrap: gochart.TextWrapWord},
		},
		YAxis: gochart.YAxis{
			Name:      "Count",
			NameStyle: gochart.Style{FontSize: 10},
			Range:     &gochart.ContinuousRange{Min: 0, Max: float64(yTicks[len(yTicks)-1])},
			Ticks:     ticks,
			TickStyle: gochart.Style{FontSize: 8},
			GridLines: grid,
			GridMajorStyle: gochart.Style{
				StrokeColor:     drawing.ColorFromHex("b3b3b3"),
				StrokeWidth:     1,
				StrokeDashArray: []float64{6, 6},
			},
		},
		Series: series,
	}
	c.Elements = []gochart.Renderable{gochart.Legend(&c, gochart.Style{FontSize: 8})}
	return c
}
