package ui

import "strings"

// sparkRamp holds the nine intensity levels for sparklines, lowest to
// highest. Level 0 is a blank so an idle metric reads as an empty track.
var sparkRamp = []rune(" ▁▂▃▄▅▆▇█")

// Sparkline renders a sequence of percentage values as one glyph per value.
// Values are clamped to [0, 100] and mapped onto the nine-level ramp. When
// width is positive and the input is longer, only the trailing width values
// (the most recent history) are rendered; width <= 0 renders everything.
// Coloring is left to the caller.
func Sparkline(values []float64, width int) string {
	if len(values) == 0 {
		return ""
	}
	if width > 0 && len(values) > width {
		values = values[len(values)-width:]
	}

	var b strings.Builder
	b.Grow(len(values) * 3) // block glyphs are 3 bytes in UTF-8

	levels := len(sparkRamp)
	for _, v := range values {
		if v < 0 {
			v = 0
		} else if v > 100 {
			v = 100
		}
		idx := int(v / 100 * float64(levels-1))
		b.WriteRune(sparkRamp[idx])
	}
	return b.String()
}
