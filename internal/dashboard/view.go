package dashboard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rileyhilliard/ktop/internal/metrics"
	"github.com/rileyhilliard/ktop/internal/ui"
)

// procRows is how many processes each table shows.
const procRows = 10

// maxProcName caps process names so rows never collide with the columns.
const maxProcName = 28

func fg(c lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(c)
}

// renderDashboard lays out the full dashboard: GPU row, net/cpu/mem row,
// two process tables, and a one-line status bar. Row heights follow a
// 2:2:3 ratio of the space above the status bar.
func (m Model) renderDashboard() string {
	avail := m.height - 1
	unit := avail / 7
	gpuH := max(3, 2*unit)
	midH := max(3, 2*unit)
	botH := max(3, avail-gpuH-midH)

	thirdW := m.width / 3
	lastThirdW := m.width - 2*thirdW
	halfW := m.width / 2
	lastHalfW := m.width - halfW

	gpuRow := m.renderGPURow(gpuH)
	midRow := lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderNetPanel(thirdW, midH),
		m.renderCPUPanel(thirdW, midH),
		m.renderMemPanel(lastThirdW, midH),
	)
	botRow := lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderProcTable(true, halfW, botH),
		m.renderProcTable(false, lastHalfW, botH),
	)

	return gpuRow + "\n" + midRow + "\n" + botRow + "\n" + m.renderStatusBar()
}

// panelInnerWidth is the usable width of a one-third panel: border, padding
// and a little slack off a third of the terminal.
func (m Model) panelInnerWidth() int {
	return max(20, m.width/3-6)
}

func (m Model) renderGPURow(height int) string {
	th := m.theme
	gpus := m.snapshot.GPUs
	if len(gpus) == 0 {
		body := []string{italicStyle.Render("No GPUs detected (nvidia-smi not available)")}
		return panel("GPU", "", body, m.width, height, th.GPU)
	}

	sparkW := max(10, m.width/len(gpus)-13)
	panelW := m.width / len(gpus)
	lastW := m.width - panelW*(len(gpus)-1)

	var panels []string
	for i, g := range gpus {
		w := panelW
		if i == len(gpus)-1 {
			w = lastW
		}

		uc := fg(ui.BandColor(g.UtilPercent, th.BarLow, th.BarMid, th.BarHigh))
		mc := fg(ui.BandColor(g.MemPercent, th.BarLow, th.BarMid, th.BarHigh))
		sparkU := ui.Sparkline(m.sampler.GPUUtilHistory(g.Index).Snapshot(sparkW), sparkW)
		sparkM := ui.Sparkline(m.sampler.GPUMemHistory(g.Index).Snapshot(sparkW), sparkW)

		body := []string{
			boldStyle.Render("Util") + " " + ui.GradientBar(g.UtilPercent, 15, th.BarLow, th.BarHigh) +
				" " + uc.Render(fmt.Sprintf("%5.1f%%", g.UtilPercent)),
			"     " + uc.Render(sparkU),
			"",
			boldStyle.Render("Mem ") + " " + ui.GradientBar(g.MemPercent, 15, th.BarLow, th.BarHigh) +
				" " + mc.Render(fmt.Sprintf("%5.1f%%", g.MemPercent)),
			fmt.Sprintf("     %.1f/%.1f GB",
				float64(g.MemUsed)/(1024*1024*1024), float64(g.MemTotal)/(1024*1024*1024)),
			"     " + mc.Render(sparkM),
		}
		panels = append(panels, panel(fmt.Sprintf("GPU %d", g.Index), g.Name, body, w, height, th.GPU))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, panels...)
}

func (m Model) renderCPUPanel(width, height int) string {
	th := m.theme
	pct := m.snapshot.CPUPercent
	c := fg(ui.BandColor(pct, th.BarLow, th.BarMid, th.BarHigh))

	panelW := m.panelInnerWidth()
	// "Overall  " is 9 wide, " 42.3%" is 7.
	barW := max(5, panelW-9-7)
	sparkW := max(10, panelW-9)
	spark := ui.Sparkline(m.sampler.CPUHistory().Snapshot(sparkW), sparkW)

	freq := "N/A"
	if m.snapshot.CPUFreqMHz > 0 {
		freq = fmt.Sprintf("%.0f MHz", m.snapshot.CPUFreqMHz)
	}

	body := []string{
		boldStyle.Render("Overall") + "  " + ui.GradientBar(pct, barW, th.BarLow, th.BarHigh) +
			" " + c.Render(fmt.Sprintf("%5.1f%%", pct)),
		dimStyle.Render(fmt.Sprintf("Cores: %d  Freq: %s", m.snapshot.CPUCount, freq)),
		"",
		boldStyle.Render("History"),
		"         " + c.Render(spark),
	}
	return panel("CPU", "", body, width, height, th.CPU)
}

func (m Model) renderNetPanel(width, height int) string {
	th := m.theme
	scale := m.sampler.NetCeiling()
	up, down := m.snapshot.NetUp, m.snapshot.NetDown
	nc := fg(th.Net)

	panelW := m.panelInnerWidth()
	// "Up   " is 5 wide, the right-aligned speed column is 11.
	barW := max(5, panelW-5-11)
	sparkW := max(10, panelW-5)
	sparkUp := ui.Sparkline(scale.NormalizeAll(m.sampler.NetUpHistory().Snapshot(sparkW)), sparkW)
	sparkDn := ui.Sparkline(scale.NormalizeAll(m.sampler.NetDownHistory().Snapshot(sparkW)), sparkW)

	body := []string{
		boldStyle.Render("Up  ") + " " + ui.GradientBar(scale.Normalize(up), barW, th.BarLow, th.BarHigh) +
			" " + nc.Render(fmt.Sprintf("%10s", ui.FormatSpeed(up))),
		"     " + nc.Render(sparkUp),
		"",
		boldStyle.Render("Down") + " " + ui.GradientBar(scale.Normalize(down), barW, th.BarLow, th.BarHigh) +
			" " + nc.Render(fmt.Sprintf("%10s", ui.FormatSpeed(down))),
		"     " + nc.Render(sparkDn),
		"",
		dimStyle.Render("Peak: " + ui.FormatSpeed(scale.Ceiling())),
	}
	return panel("Network", "", body, width, height, th.Net)
}

func (m Model) renderMemPanel(width, height int) string {
	th := m.theme
	vm := m.snapshot.Memory
	sw := m.snapshot.Swap
	c := fg(ui.BandColor(vm.Percent, th.BarLow, th.BarMid, th.BarHigh))

	panelW := m.panelInnerWidth()
	// "RAM  " / "Swap " is 5 wide, " 42.3%" is 7.
	barW := max(5, panelW-5-7)

	body := []string{
		boldStyle.Render("RAM") + "  " + ui.GradientBar(vm.Percent, barW, th.BarLow, th.BarHigh) +
			" " + c.Render(fmt.Sprintf("%5.1f%%", vm.Percent)),
		fmt.Sprintf("  %s used / %s", ui.FormatBytes(float64(vm.Used)), ui.FormatBytes(float64(vm.Total))),
		"",
		boldStyle.Render("Swap") + " " + ui.GradientBar(sw.Percent, barW, th.BarLow, th.BarHigh) +
			" " + dimStyle.Render(fmt.Sprintf("%5.1f%%", sw.Percent)),
		fmt.Sprintf("  %s used / %s", ui.FormatBytes(float64(sw.Used)), ui.FormatBytes(float64(sw.Total))),
	}
	return panel("Memory", "", body, width, height, th.Mem)
}

// renderProcTable renders one of the two process tables: top consumers by
// memory (with resident/shared breakdown) or by CPU.
func (m Model) renderProcTable(byMem bool, width, height int) string {
	th := m.theme
	border := th.ProcCPU
	title := "Top Processes by CPU"
	procs := metrics.TopByCPU(m.snapshot.Procs, procRows)
	if byMem {
		border = th.ProcMem
		title = "Top Processes by Memory"
		procs = metrics.TopByMemory(m.snapshot.Procs, procRows)
	}

	innerW := width - 4
	var nameW int
	if byMem {
		// PID(8) Used(10) Shared(10) Mem%(7) plus four 2-space gaps.
		nameW = innerW - 8 - 10 - 10 - 7 - 8
	} else {
		// PID(8) CPU%(8) Mem%(8) plus three 2-space gaps.
		nameW = innerW - 8 - 8 - 8 - 6
	}
	nameW = min(maxProcName, max(8, nameW))

	var body []string
	if byMem {
		body = append(body, dimStyle.Render(
			fmt.Sprintf("%8s  %-*s  %10s  %10s  %7s", "PID", nameW, "Name", "Used", "Shared", "Mem %")))
		for _, p := range procs {
			used, shared := "N/A", "N/A"
			if p.HasMemInfo {
				resident := int64(p.RSS) - int64(p.Shared)
				if resident < 0 {
					resident = 0
				}
				used = ui.FormatBytes(float64(resident))
				shared = ui.FormatBytes(float64(p.Shared))
			}
			body = append(body, fmt.Sprintf("%8d  %-*s  %10s  %10s  %6.1f%%",
				p.PID, nameW, truncateName(p.Name, nameW), used, shared, p.MemPercent))
		}
	} else {
		body = append(body, dimStyle.Render(
			fmt.Sprintf("%8s  %-*s  %8s  %8s", "PID", nameW, "Name", "CPU %", "Mem %")))
		for _, p := range procs {
			body = append(body, fmt.Sprintf("%8d  %-*s  %7.1f%%  %7.1f%%",
				p.PID, nameW, truncateName(p.Name, nameW), p.CPUPercent, p.MemPercent))
		}
	}

	return panel(title, "", body, width, height, border)
}

func truncateName(name string, width int) string {
	r := []rune(name)
	if len(r) > width {
		return string(r[:width])
	}
	return name
}

func (m Model) renderStatusBar() string {
	th := m.theme
	cpuKey := fg(th.CPU).Bold(true)
	gpuKey := fg(th.GPU).Bold(true)

	var b strings.Builder
	b.WriteString(" ")
	b.WriteString(cpuKey.Render("q"))
	b.WriteString(dimStyle.Render("/"))
	b.WriteString(cpuKey.Render("ESC"))
	b.WriteString(dimStyle.Render(" Quit  "))
	b.WriteString(" ")
	b.WriteString(gpuKey.Render("t"))
	b.WriteString(dimStyle.Render(fmt.Sprintf(" Theme (%s)  ", th.Name)))
	return b.String()
}
