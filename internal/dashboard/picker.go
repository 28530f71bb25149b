package dashboard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rileyhilliard/ktop/internal/theme"
	"github.com/rileyhilliard/ktop/internal/ui"
)

// pickerCols is the number of theme columns in the picker grid. Vertical
// cursor moves jump by this much.
const pickerCols = 3

// Picker is the theme selection overlay state. The cursor hovers a theme in
// a row-major grid; commit applies and persists it, cancel discards the
// hover entirely.
type Picker struct {
	registry  *theme.Registry
	cursor    int
	scroll    int
	committed int
}

// NewPicker creates a picker over the registry with nothing hovered.
func NewPicker(registry *theme.Registry) *Picker {
	return &Picker{registry: registry}
}

// Open positions the cursor on the currently active theme.
func (p *Picker) Open(activeName string) {
	idx := p.registry.Index(activeName)
	if idx < 0 {
		idx = 0
	}
	p.cursor = idx
	p.committed = idx
}

// Cursor returns the hovered theme index.
func (p *Picker) Cursor() int { return p.cursor }

// Hovered returns the theme under the cursor.
func (p *Picker) Hovered() theme.Theme {
	return p.registry.At(p.cursor)
}

// Commit marks the hovered theme as the committed selection and returns it.
func (p *Picker) Commit() theme.Theme {
	p.committed = p.cursor
	return p.Hovered()
}

// MoveUp moves the cursor one grid row up, clamped to the first theme.
func (p *Picker) MoveUp() {
	p.cursor -= pickerCols
	if p.cursor < 0 {
		p.cursor = 0
	}
}

// MoveDown moves the cursor one grid row down, clamped to the last theme.
func (p *Picker) MoveDown() {
	p.cursor += pickerCols
	if max := p.registry.Len() - 1; p.cursor > max {
		p.cursor = max
	}
}

// MoveLeft moves the cursor one cell left, clamped to the first theme.
func (p *Picker) MoveLeft() {
	if p.cursor > 0 {
		p.cursor--
	}
}

// MoveRight moves the cursor one cell right, clamped to the last theme.
func (p *Picker) MoveRight() {
	if p.cursor < p.registry.Len()-1 {
		p.cursor++
	}
}

// ensureVisible adjusts the scroll offset so the cursor row stays inside
// the visible window.
func (p *Picker) ensureVisible(visibleRows int) {
	if visibleRows < 1 {
		visibleRows = 1
	}
	cursorRow := p.cursor / pickerCols
	if cursorRow < p.scroll {
		p.scroll = cursorRow
	} else if cursorRow >= p.scroll+visibleRows {
		p.scroll = cursorRow - visibleRows + 1
	}
}

// View renders the full-screen picker: the scrollable grid, a preview of
// the hovered theme, and a key hint line.
func (p *Picker) View(width, height int) string {
	if width < 30 {
		width = 30
	}
	if height < 12 {
		height = 12
	}

	// One hint line at the bottom; the rest is the bordered picker box.
	boxHeight := height - 1
	innerHeight := boxHeight - 2

	// Preview takes a fixed 6 lines at the bottom of the box; the grid gets
	// whatever is left, recomputed every render so resizes never strand the
	// cursor off screen.
	previewHeight := 6
	gridHeight := innerHeight - previewHeight
	if gridHeight < 1 {
		gridHeight = 1
	}
	p.ensureVisible(gridHeight)

	innerWidth := width - 4
	cellWidth := innerWidth / pickerCols

	var body []string
	totalRows := (p.registry.Len() + pickerCols - 1) / pickerCols
	for row := p.scroll; row < p.scroll+gridHeight; row++ {
		if row >= totalRows {
			body = append(body, "")
			continue
		}
		var cells []string
		for col := 0; col < pickerCols; col++ {
			cells = append(cells, p.renderCell(row*pickerCols+col, cellWidth))
		}
		body = append(body, strings.Join(cells, ""))
	}

	body = append(body, p.previewLines(innerWidth)...)

	hint := " " + boldStyle.Render("UP/DOWN/LEFT/RIGHT") + dimStyle.Render(" Navigate  ") +
		boldStyle.Render("ENTER") + dimStyle.Render(" Select  ") +
		boldStyle.Render("ESC") + dimStyle.Render(" Cancel")

	box := panel("Select Theme", "", body, width, boxHeight, lipgloss.Color("#ffffff"))
	return box + "\n" + hint
}

// renderCell renders one grid cell: marker, theme name, and a right-aligned
// strip of role swatches.
func (p *Picker) renderCell(idx, cellWidth int) string {
	if idx >= p.registry.Len() {
		return strings.Repeat(" ", cellWidth)
	}
	th := p.registry.At(idx)

	nameStyle := lipgloss.NewStyle().Foreground(th.GPU)
	var label string
	switch {
	case idx == p.cursor:
		label = boldStyle.Render("> ") + nameStyle.Bold(true).Reverse(true).Render(th.Name)
	case idx == p.committed:
		label = "  " + nameStyle.Bold(true).Render(th.Name) + dimStyle.Render(" *")
	default:
		label = "  " + nameStyle.Render(th.Name)
	}

	swatch := swatches(th)
	padding := cellWidth - lipgloss.Width(label) - lipgloss.Width(swatch) - 1
	if padding < 1 {
		padding = 1
	}
	return label + strings.Repeat(" ", padding) + swatch + " "
}

// swatches renders the five role color chips for a theme.
func swatches(th theme.Theme) string {
	chip := func(c lipgloss.Color) string {
		return lipgloss.NewStyle().Background(c).Render("  ")
	}
	return chip(th.GPU) + " " + chip(th.Net) + " " + chip(th.CPU) + " " + chip(th.Mem) + " " + chip(th.BarMid)
}

// previewLines renders the hovered theme's preview block.
func (p *Picker) previewLines(width int) []string {
	th := p.Hovered()
	strip := func(c lipgloss.Color) string {
		return lipgloss.NewStyle().Foreground(c).Render(strings.Repeat("━", 6))
	}

	roles := fmt.Sprintf("  GPU %s  Net %s  CPU %s  Mem %s",
		strip(th.GPU), strip(th.Net), strip(th.CPU), strip(th.Mem))
	bar := "  Bar: " + ui.GradientBar(65, 20, th.BarLow, th.BarHigh)

	border := lipgloss.NewStyle().Foreground(lipgloss.Color("#aaaaaa"))
	rule := border.Render(strings.Repeat("─", width))
	return []string{
		"",
		rule,
		boldStyle.Render("Preview:") + " " + th.Name,
		roles,
		bar,
	}
}
