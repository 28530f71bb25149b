package dashboard

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rileyhilliard/ktop/internal/logger"
	"github.com/rileyhilliard/ktop/internal/metrics"
	"github.com/rileyhilliard/ktop/internal/theme"
)

// Mode is the current display mode.
type Mode int

const (
	ModeDashboard Mode = iota
	ModePicker
)

// ThemeStore persists the committed theme choice.
type ThemeStore interface {
	SaveTheme(name string) error
}

// Model is the Bubble Tea model for the dashboard. All state lives on the
// model and is mutated only inside Update; sampling happens only on the
// refresh tick, never on keypresses.
type Model struct {
	sampler  *metrics.Sampler
	registry *theme.Registry
	store    ThemeStore
	log      logger.Logger

	theme    theme.Theme
	picker   *Picker
	mode     Mode
	snapshot metrics.Snapshot

	width    int
	height   int
	interval time.Duration
	quitting bool
}

// tickMsg signals a periodic refresh.
type tickMsg time.Time

// NewModel creates the dashboard model with the given refresh interval and
// initial theme name (resolved against the registry).
func NewModel(sampler *metrics.Sampler, registry *theme.Registry, store ThemeStore, themeName string, interval time.Duration, log logger.Logger) Model {
	if log == nil {
		log = logger.Noop()
	}
	if interval <= 0 {
		interval = time.Second
	}

	return Model{
		sampler:  sampler,
		registry: registry,
		store:    store,
		log:      log,
		theme:    registry.Resolve(themeName),
		picker:   NewPicker(registry),
		interval: interval,
	}
}

// Theme returns the active theme.
func (m Model) Theme() theme.Theme { return m.theme }

// Mode returns the current display mode.
func (m Model) Mode() Mode { return m.mode }

// Init takes the first sample immediately so the dashboard never shows an
// empty frame.
func (m Model) Init() tea.Cmd {
	return func() tea.Msg {
		return tickMsg(time.Now())
	}
}

// Update handles messages. A tick samples, re-arms the timer and triggers a
// render; a keypress triggers a render only, leaving the timer alone.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		handled, cmd := m.HandleKeyMsg(msg)
		if handled {
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tickMsg:
		m.snapshot = m.sampler.Sample()
		return m, m.tickCmd()
	}

	return m, nil
}

// View renders the active mode.
func (m Model) View() string {
	if m.quitting || m.width < 1 || m.height < 1 {
		return ""
	}
	if m.mode == ModePicker {
		return m.picker.View(m.width, m.height)
	}
	return m.renderDashboard()
}

// tickCmd returns a command that sends a tick after the refresh interval.
func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// applyTheme commits the picker's hovered theme and persists the choice.
// A persistence failure keeps the theme for this session and logs.
func (m *Model) applyTheme() {
	th := m.picker.Commit()
	m.theme = th
	if m.store != nil {
		if err := m.store.SaveTheme(th.Name); err != nil {
			m.log.Warn("saving theme: %v", err)
		}
	}
}
