package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rileyhilliard/ktop/internal/theme"
)

func newTestPicker() *Picker {
	p := NewPicker(theme.Builtin())
	p.Open(theme.FallbackName) // first theme, index 0
	return p
}

func TestPickerOpenPositionsCursor(t *testing.T) {
	reg := theme.Builtin()
	p := NewPicker(reg)

	p.Open("Dracula")
	assert.Equal(t, reg.Index("Dracula"), p.Cursor())
	assert.Equal(t, "Dracula", p.Hovered().Name)

	// Unknown active theme lands on the first entry.
	p.Open("No Such Theme")
	assert.Equal(t, 0, p.Cursor())
}

func TestPickerVerticalMovesJumpAColumn(t *testing.T) {
	p := newTestPicker()

	p.MoveDown()
	assert.Equal(t, pickerCols, p.Cursor())
	p.MoveDown()
	assert.Equal(t, 2*pickerCols, p.Cursor())
	p.MoveUp()
	assert.Equal(t, pickerCols, p.Cursor())
}

func TestPickerHorizontalMoves(t *testing.T) {
	p := newTestPicker()

	p.MoveRight()
	assert.Equal(t, 1, p.Cursor())
	p.MoveLeft()
	assert.Equal(t, 0, p.Cursor())
}

func TestPickerCursorClamping(t *testing.T) {
	p := newTestPicker()
	last := p.registry.Len() - 1

	// Never below zero.
	p.MoveUp()
	assert.Equal(t, 0, p.Cursor())
	p.MoveLeft()
	assert.Equal(t, 0, p.Cursor())

	// Never past the last theme.
	p.cursor = last
	p.MoveDown()
	assert.Equal(t, last, p.Cursor())
	p.MoveRight()
	assert.Equal(t, last, p.Cursor())

	// A vertical jump from the last row clamps instead of wrapping.
	p.cursor = last - 1
	p.MoveDown()
	assert.Equal(t, last, p.Cursor())
}

func TestPickerCommitMarksCommitted(t *testing.T) {
	p := newTestPicker()
	p.MoveRight()
	p.MoveRight()

	th := p.Commit()
	assert.Equal(t, p.registry.At(2).Name, th.Name)
	assert.Equal(t, 2, p.committed)
}

func TestPickerScrollFollowsCursor(t *testing.T) {
	p := newTestPicker()

	// Cursor far below the window pulls the scroll down.
	p.cursor = 10 * pickerCols
	p.ensureVisible(4)
	assert.Equal(t, 7, p.scroll)

	// Cursor above the window snaps the scroll back up.
	p.cursor = 2 * pickerCols
	p.ensureVisible(4)
	assert.Equal(t, 2, p.scroll)

	// Inside the window leaves the scroll alone.
	p.cursor = 3 * pickerCols
	p.ensureVisible(4)
	assert.Equal(t, 2, p.scroll)
}

func TestPickerViewShowsMarkers(t *testing.T) {
	p := newTestPicker()
	p.MoveRight() // hover the second theme, committed stays on the first

	out := p.View(120, 40)

	require.NotEmpty(t, out)
	assert.Contains(t, out, "Select Theme")
	assert.Contains(t, out, "> ")
	assert.Contains(t, out, " *")
	assert.Contains(t, out, "Preview:")
	assert.Contains(t, out, p.Hovered().Name)
	assert.Contains(t, out, "ENTER")
	assert.Contains(t, out, "ESC")
}

func TestPickerViewTinyTerminal(t *testing.T) {
	p := newTestPicker()
	p.cursor = p.registry.Len() - 1

	// Must not panic or strand the cursor when almost nothing fits.
	out := p.View(10, 5)
	assert.NotEmpty(t, out)
}
