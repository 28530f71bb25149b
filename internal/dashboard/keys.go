package dashboard

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// dashboardKeyMap binds the keys active on the main dashboard.
type dashboardKeyMap struct {
	Quit  key.Binding
	Theme key.Binding
}

// pickerKeyMap binds the keys active inside the theme picker. Esc cancels
// the picker instead of quitting; only ctrl+c force-quits from there.
type pickerKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Confirm key.Binding
	Cancel  key.Binding
	Quit    key.Binding
}

var dashKeys = dashboardKeyMap{
	Quit:  key.NewBinding(key.WithKeys("q", "Q", "esc", "ctrl+c")),
	Theme: key.NewBinding(key.WithKeys("t", "T")),
}

var pickerKeys = pickerKeyMap{
	Up:      key.NewBinding(key.WithKeys("up")),
	Down:    key.NewBinding(key.WithKeys("down")),
	Left:    key.NewBinding(key.WithKeys("left")),
	Right:   key.NewBinding(key.WithKeys("right")),
	Confirm: key.NewBinding(key.WithKeys("enter")),
	Cancel:  key.NewBinding(key.WithKeys("esc")),
	Quit:    key.NewBinding(key.WithKeys("ctrl+c")),
}

// HandleKeyMsg routes a keypress to the active mode and returns updated
// state and command. Returns true if the key was handled.
func (m *Model) HandleKeyMsg(msg tea.KeyMsg) (bool, tea.Cmd) {
	if m.mode == ModePicker {
		return m.handlePickerKey(msg)
	}
	return m.handleDashboardKey(msg)
}

func (m *Model) handleDashboardKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch {
	case key.Matches(msg, dashKeys.Quit):
		m.quitting = true
		return true, tea.Quit

	case key.Matches(msg, dashKeys.Theme):
		m.picker.Open(m.theme.Name)
		m.mode = ModePicker
		return true, nil
	}
	return false, nil
}

func (m *Model) handlePickerKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	switch {
	case key.Matches(msg, pickerKeys.Quit):
		m.quitting = true
		return true, tea.Quit

	case key.Matches(msg, pickerKeys.Cancel):
		// Cancel: the hover never touches the active theme.
		m.mode = ModeDashboard
		return true, nil

	case key.Matches(msg, pickerKeys.Confirm):
		m.applyTheme()
		m.mode = ModeDashboard
		return true, nil

	case key.Matches(msg, pickerKeys.Up):
		m.picker.MoveUp()
		return true, nil

	case key.Matches(msg, pickerKeys.Down):
		m.picker.MoveDown()
		return true, nil

	case key.Matches(msg, pickerKeys.Left):
		m.picker.MoveLeft()
		return true, nil

	case key.Matches(msg, pickerKeys.Right):
		m.picker.MoveRight()
		return true, nil
	}
	return false, nil
}
