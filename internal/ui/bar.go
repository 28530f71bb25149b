package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// emptyCellStyle renders the unfilled portion of a gradient bar.
var emptyCellStyle = lipgloss.NewStyle().Faint(true)

// GradientBar renders a horizontal bar for a percentage with a smooth
// per-cell color gradient. The filled portion is floor(percent/100 * width)
// cells; cell i is colored by interpolating between low and high at
// t = i / max(width-1, 1), so cell 0 is exactly low and a full bar ends in
// exactly high. The remainder renders as a dim empty track.
func GradientBar(percent float64, width int, low, high lipgloss.Color) string {
	if width < 1 {
		width = 1
	}
	if percent < 0 {
		percent = 0
	} else if percent > 100 {
		percent = 100
	}

	filled := int(percent / 100 * float64(width))
	if filled > width {
		filled = width
	}

	lo, okLo := parseRGB(low)
	hi, okHi := parseRGB(high)

	denom := width - 1
	if denom < 1 {
		denom = 1
	}

	var b strings.Builder
	for i := 0; i < filled; i++ {
		cell := low
		if okLo && okHi {
			t := float64(i) / float64(denom)
			cell = lerpRGB(lo, hi, t)
		}
		b.WriteString(lipgloss.NewStyle().Foreground(cell).Render("█"))
	}
	if filled < width {
		b.WriteString(emptyCellStyle.Render(strings.Repeat("░", width-filled)))
	}
	return b.String()
}

// parseRGB parses a hex theme color into a colorful.Color.
func parseRGB(c lipgloss.Color) (colorful.Color, bool) {
	parsed, err := colorful.Hex(string(c))
	if err != nil {
		return colorful.Color{}, false
	}
	return parsed, true
}

// lerpRGB interpolates two colors component-wise in RGB space, truncating
// each component to an integer, and returns the result as a hex color.
func lerpRGB(lo, hi colorful.Color, t float64) lipgloss.Color {
	r1, g1, b1 := lo.RGB255()
	r2, g2, b2 := hi.RGB255()
	r := int(float64(r1) + (float64(r2)-float64(r1))*t)
	g := int(float64(g1) + (float64(g2)-float64(g1))*t)
	b := int(float64(b1) + (float64(b2)-float64(b1))*t)
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", r, g, b))
}
