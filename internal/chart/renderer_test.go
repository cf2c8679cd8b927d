package chart

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/godilite/likert-reports/internal/survey"
)

func sampleDistributions() survey.Distributions {
	return survey.Distributions{
		{Metric: "Communication", Counts: survey.Distribution{survey.StronglyAgree: 2, survey.Agree: 1, survey.Neutral: 0, survey.Disagree: 0, survey.StronglyDisagree: 0}},
		{Metric: "Useful Reflection Sessions", Counts: survey.Distribution{survey.StronglyAgree: 0, survey.Agree: 3, survey.Neutral: 1, survey.Disagree: 2, survey.StronglyDisagree: 1}},
	}
}

func smallOptions() Options {
	return Options{Width: 700, Height: 400, DPI: 100}
}

func TestBarOffset(t *testing.T) {
	const w = 0.15

	assert.InDelta(t, -0.3, BarOffset(0, 0, 5, w), 1e-9)
	assert.InDelta(t, 0.0, BarOffset(0, 2, 5, w), 1e-9, "middle bar is centred on the cluster")
	assert.InDelta(t, 0.3, BarOffset(0, 4, 5, w), 1e-9)
	assert.InDelta(t, 1.3, BarOffset(1, 4, 5, w), 1e-9)

	for v := 1; v < 5; v++ {
		gap := BarOffset(3, v, 5, w) - BarOffset(3, v-1, 5, w)
		assert.InDelta(t, w, gap, 1e-9, "adjacent bars touch but never overlap")
	}
}

func TestWrapLabel(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Communication", "Communication"},
		{"Useful Reflection Sessions", "Useful\nReflection\nSessions"},
		{"Accessible & Responsive", "Accessible &\nResponsive"},
		{"Supercalifragilistic", "Supercalifrag\nilistic"},
		{"  spaced   out  ", "spaced out"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, WrapLabel(tt.in, 13), "input %q", tt.in)
	}
}

func TestCountTicks(t *testing.T) {
	assert.Equal(t, []int{0, 1}, countTicks(0))
	assert.Equal(t, []int{0, 1, 2, 3}, countTicks(2))

	ticks := countTicks(100)
	assert.Equal(t, 0, ticks[0])
	assert.GreaterOrEqual(t, ticks[len(ticks)-1], 100)
	assert.LessOrEqual(t, len(ticks), 11)
}

func TestRendererSeries(t *testing.T) {
	r := NewRenderer(survey.LikertScale, smallOptions())
	ds := sampleDistributions()

	series := r.Series(ds)

	require.Len(t, series, len(survey.LikertScale))
	palette := LikertPalette()
	for v, s := range series {
		resp := survey.LikertScale[v]
		assert.Equal(t, string(resp), s.Name, "scale order is kept left to right")
		assert.Equal(t, palette.Color(resp), s.Style.StrokeColor)
		require.NoError(t, s.Validate())
		for m := range ds {
			assert.InDelta(t, BarOffset(m, v, len(survey.LikertScale), 0.15), s.Positions[m], 1e-9)
			assert.Equal(t, float64(ds[m].Counts[resp]), s.Values[m])
		}
	}
}

func TestPaletteFallback(t *testing.T) {
	p := LikertPalette()
	assert.Equal(t, fallbackColor, p.Color(survey.Response("Maybe")))
	assert.NotEqual(t, p.Color(survey.StronglyAgree), p.Color(survey.StronglyDisagree))
}

func TestRender(t *testing.T) {
	r := NewRenderer(survey.LikertScale, smallOptions())

	t.Run("produces a png of the configured size", func(t *testing.T) {
		img, err := r.Render("Alice", "Skill Metrics", sampleDistributions())
		require.NoError(t, err)

		cfg, err := png.DecodeConfig(bytes.NewReader(img))
		require.NoError(t, err)
		assert.Equal(t, 700, cfg.Width)
		assert.Equal(t, 400, cfg.Height)
	})

	t.Run("is deterministic", func(t *testing.T) {
		first, err := r.Render("Alice", "Skill Metrics", sampleDistributions())
		require.NoError(t, err)
		second, err := r.Render("Alice", "Skill Metrics", sampleDistributions())
		require.NoError(t, err)

		assert.True(t, bytes.Equal(first, second))
	})

	t.Run("renders with no metrics", func(t *testing.T) {
		img, err := r.Render("Nobody", "Skill Metrics", nil)
		require.NoError(t, err)
		assert.NotEmpty(t, img)
	})
}

func TestChartDefinition(t *testing.T) {
	r := NewRenderer(survey.LikertScale, Options{})
	c := r.Chart("Alice", "Skill Metrics", sampleDistributions())

	assert.Equal(t, "Alice - Likert Scale Response Distribution", c.Title)
	assert.Equal(t, 2100, c.Width)
	assert.Equal(t, 1200, c.Height)
	assert.Len(t, c.Series, 5)
	require.Len(t, c.XAxis.Ticks, 3)
	assert.Equal(t, "Useful\nReflection\nSessions", c.XAxis.Ticks[2].Label)
	assert.Equal(t, "Count", c.YAxis.Name)
}
