package chart

import (
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/godilite/likert-reports/internal/survey"
)

// Palette assigns a fixed colour to each response value.
type Palette map[survey.Response]drawing.Color

var fallbackColor = drawing.ColorFromHex("9e9e9e")

// LikertPalette maps positive to negative sentiment onto green to red. Every
// report variant uses it so charts stay comparable.
func LikertPalette() Palette {
	return Palette{
		survey.StronglyAgree:    drawing.ColorFromHex("1a9641"),
		survey.Agree:            drawing.ColorFromHex("a6d96a"),
		survey.Neutral:          drawing.ColorFromHex("ffff42"),
		survey.Disagree:         drawing.ColorFromHex("fdae61"),
		survey.StronglyDisagree: drawing.ColorFromHex("d7191c"),
	}
}

// Color returns the colour of r, or a neutral grey for values outside the palette.
func (p Palette) Color(r survey.Response) drawing.Color {
	if c, ok := p[r]; ok {
		return c
	}
	return fallbackColor
}
