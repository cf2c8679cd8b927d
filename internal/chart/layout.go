package chart

import (
	"strings"
	"unicode/utf8"
)

// BarOffset returns the x position of the bar for value index v inside the
// cluster of metric index m, for a scale of n values and bars of the given
// width. The cluster is centred on m and bars never overlap.
func BarOffset(m, v, n int, width float64) float64 {
	return float64(m) + float64(v)*width - float64(n)/2*width + width/2
}

// WrapLabel breaks label into lines of at most width characters, splitting on
// whitespace. Words longer than width are split across lines.
func WrapLabel(label string, width int) string {
	words := strings.Fields(label)
	if width <= 0 {
		return strings.Join(words, " ")
	}

	var lines []string
	line := ""
	for _, w := range words {
		if line != "" && utf8.RuneCountInString(line)+1+utf8.RuneCountInString(w) <= width {
			line += " " + w
			continue
		}
		if line != "" {
			lines = append(lines, line)
			line = ""
		}
		for utf8.RuneCountInString(w) > width {
			r := []rune(w)
			lines = append(lines, string(r[:width]))
			w = string(r[width:])
		}
		line = w
	}
	if line != "" {
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

// countTicks returns the y-axis tick values for counts up to max: integer
// steps from 1, 2, 5, 10, 20, 50... chosen so there are at most ten
// intervals, with headroom above the tallest bar for the legend.
func countTicks(max int) []int {
	top := max + max*2/5 + 1
	step := 1
	for mult := 1; top/step > 10; {
		for _, s := range []int{1, 2, 5} {
			step = s * mult
			if top/step <= 10 {
				break
			}
		}
		mult *= 10
	}
	if top%step != 0 {
		top += step - top%step
	}

	ticks := make([]int, 0, top/step+1)
	for v := 0; v <= top; v += step {
		ticks = append(ticks, v)
	}
	return ticks
}
