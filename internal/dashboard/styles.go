package dashboard

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	dimStyle    = lipgloss.NewStyle().Faint(true)
	boldStyle   = lipgloss.NewStyle().Bold(true)
	italicStyle = lipgloss.NewStyle().Faint(true).Italic(true)
)

// panelTop renders the top border with an embedded title.
// Format: ╭─ Title ──────────────────────────────╮
func panelTop(title string, width int, border lipgloss.Color) string {
	if width < 10 {
		width = 10
	}

	borderStyle := lipgloss.NewStyle().Foreground(border)
	titleStyle := lipgloss.NewStyle().Foreground(border).Bold(true)

	leftWidth := 3 + lipgloss.Width(title) + 1
	fillWidth := width - leftWidth - 1
	if fillWidth < 1 {
		fillWidth = 1
	}

	return borderStyle.Render("╭─ ") +
		titleStyle.Render(title) +
		borderStyle.Render(" "+strings.Repeat("─", fillWidth)+"╮")
}

// panelBottom renders the bottom border, optionally with a dim label.
// Format: ╰─ label ──────────────────────────────╯
func panelBottom(label string, width int, border lipgloss.Color) string {
	if width < 4 {
		width = 4
	}

	borderStyle := lipgloss.NewStyle().Foreground(border)
	if label == "" {
		return borderStyle.Render("╰" + strings.Repeat("─", width-2) + "╯")
	}

	leftWidth := 3 + lipgloss.Width(label) + 1
	fillWidth := width - leftWidth - 1
	if fillWidth < 1 {
		fillWidth = 1
	}
	return borderStyle.Render("╰─ ") +
		dimStyle.Render(label) +
		borderStyle.Render(" "+strings.Repeat("─", fillWidth)+"╯")
}

// panelLine renders one bordered content line padded to the panel width.
// Content wider than the panel is kept as-is rather than clipped; panel
// bodies are built to fit.
func panelLine(content string, width int, border lipgloss.Color) string {
	if width < 4 {
		width = 4
	}

	borderStyle := lipgloss.NewStyle().Foreground(border)
	padding := width - 4 - lipgloss.Width(content)
	if padding < 0 {
		padding = 0
	}
	return borderStyle.Render("│") + " " + content + strings.Repeat(" ", padding) + " " + borderStyle.Render("│")
}

// panel renders a bordered box of exactly height terminal rows. The body is
// padded with blank lines or truncated to fit.
func panel(title, footer string, body []string, width, height int, border lipgloss.Color) string {
	if height < 3 {
		height = 3
	}

	inner := height - 2
	lines := make([]string, 0, height)
	lines = append(lines, panelTop(title, width, border))
	for i := 0; i < inner; i++ {
		content := ""
		if i < len(body) {
			content = body[i]
		}
		lines = append(lines, panelLine(content, width, border))
	}
	lines = append(lines, panelBottom(footer, width, border))
	return strings.Join(lines, "\n")
}
