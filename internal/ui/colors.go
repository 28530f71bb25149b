package ui

import "github.com/charmbracelet/lipgloss"

// Band breakpoints for percentage metrics. The bands are fixed; only the
// colors assigned to them vary by theme.
const (
	BandLowMax = 50.0
	BandMidMax = 80.0
)

// BandColor selects the low, mid, or high color for a percentage:
// below 50 is low, below 80 is mid, everything else is high.
func BandColor(percent float64, low, mid, high lipgloss.Color) lipgloss.Color {
	switch {
	case percent < BandLowMax:
		return low
	case percent < BandMidMax:
		return mid
	default:
		return high
	}
}
