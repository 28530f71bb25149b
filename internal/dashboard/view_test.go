package dashboard

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rileyhilliard/ktop/internal/metrics"
)

func TestDashboardViewPanels(t *testing.T) {
	m := testModel(t, nil, nil)
	out := m.View()

	require.NotEmpty(t, out)
	assert.Contains(t, out, "CPU")
	assert.Contains(t, out, "Network")
	assert.Contains(t, out, "Memory")
	assert.Contains(t, out, "Top Processes by Memory")
	assert.Contains(t, out, "Top Processes by CPU")
	assert.Contains(t, out, "Cores: 8")
	assert.Contains(t, out, "2400 MHz")
}

func TestDashboardViewZeroGPUs(t *testing.T) {
	m := testModel(t, nil, nil)
	out := m.View()

	assert.Contains(t, out, "No GPUs detected")
}

func TestDashboardViewGPUPanels(t *testing.T) {
	gpus := []metrics.GPURecord{
		{Index: 0, Name: "RTX 4090", UtilPercent: 75, MemUsed: 12 << 30, MemTotal: 24 << 30, MemPercent: 50},
		{Index: 1, Name: "RTX 4090", UtilPercent: 20, MemUsed: 2 << 30, MemTotal: 24 << 30, MemPercent: 8.3},
	}
	m := testModel(t, nil, gpus)
	out := m.View()

	assert.Contains(t, out, "GPU 0")
	assert.Contains(t, out, "GPU 1")
	assert.Contains(t, out, "RTX 4090")
	assert.Contains(t, out, "Util")
	assert.NotContains(t, out, "No GPUs detected")
}

func TestDashboardViewProcessRows(t *testing.T) {
	m := testModel(t, nil, nil)
	out := m.View()

	assert.Contains(t, out, "model-server")
	assert.Contains(t, out, "editor")
	assert.Contains(t, out, "123")
	assert.Contains(t, out, "Shared")
}

func TestDashboardViewStatusBar(t *testing.T) {
	m := testModel(t, nil, nil)
	out := m.View()

	lines := strings.Split(out, "\n")
	status := lines[len(lines)-1]
	assert.Contains(t, status, "Quit")
	assert.Contains(t, status, "Theme ("+m.Theme().Name+")")
}

func TestDashboardViewSmallTerminal(t *testing.T) {
	m := testModel(t, nil, nil)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 40, Height: 12})
	m = updated.(Model)

	// Width floors keep every panel renderable; this must not panic.
	out := m.View()
	assert.NotEmpty(t, out)
}

func TestTruncateName(t *testing.T) {
	assert.Equal(t, "short", truncateName("short", 10))
	assert.Equal(t, "exactly-te", truncateName("exactly-ten-plus", 10))
	assert.Equal(t, "ünïcødé", truncateName("ünïcødé", 10))
}

func TestPanelHasExactHeight(t *testing.T) {
	out := panel("Title", "", []string{"a", "b"}, 30, 8, "#ff00ff")
	assert.Equal(t, 8, len(strings.Split(out, "\n")))

	// Body longer than the panel truncates instead of overflowing.
	long := []string{"1", "2", "3", "4", "5", "6", "7", "8", "9"}
	out = panel("Title", "", long, 30, 5, "#ff00ff")
	assert.Equal(t, 5, len(strings.Split(out, "\n")))
}
