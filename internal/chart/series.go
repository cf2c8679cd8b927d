package chart

import (
	"fmt"

	gochart "github.com/wcharczuk/go-chart/v2"
)

// BarSeries draws one bar per position, all in the colour of one response
// value. A clustered chart holds one BarSeries per scale value.
type BarSeries struct {
	Name      string
	Style     gochart.Style
	Positions []float64
	Values    []float64
	Width     float64
}

func (s BarSeries) GetName() string { return s.Name }

func (s BarSeries) GetYAxis() gochart.YAxisType { return gochart.YAxisPrimary }

// GetStyle is the legend style: a thick stroke in the bar colour.
func (s BarSeries) GetStyle() gochart.Style { return s.Style }

func (s BarSeries) Validate() error {
	if len(s.Positions) != len(s.Values) {
		return fmt.Errorf("bar series %q: %d positions for %d values", s.Name, len(s.Positions), len(s.Values))
	}
	if s.Width <= 0 {
		return fmt.Errorf("bar series %q: width must be positive", s.Name)
	}
	return nil
}

// Render draws the bars from the x-axis up to their value.
func (s BarSeries) Render(r gochart.Renderer, canvasBox gochart.Box, xrange, yrange gochart.Range, _ gochart.Style) {
	bar := gochart.Style{
		FillColor:   s.Style.StrokeColor,
		StrokeColor: s.Style.StrokeColor,
		StrokeWidth: 1,
	}
	half := s.Width / 2

	for i, x := range s.Positions {
		if s.Values[i] <= 0 {
			continue
		}
		box := gochart.Box{
			Top:    canvasBox.Bottom - yrange.Translate(s.Values[i]),
			Left:   canvasBox.Left + xrange.Translate(x-half),
			Right:  canvasBox.Left + xrange.Translate(x+half),
			Bottom: canvasBox.Bottom,
		}
		gochart.Draw.Box(r, box, bar)
	}
}
