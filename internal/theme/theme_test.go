package theme

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinRegistry(t *testing.T) {
	r := Builtin()

	assert.Equal(t, 50, r.Len())

	// The session default and the unknown-name fallback must both exist.
	_, ok := r.Lookup(DefaultName)
	assert.True(t, ok)
	_, ok = r.Lookup(FallbackName)
	assert.True(t, ok)

	// The fallback is the first theme in picker order.
	assert.Equal(t, FallbackName, r.Names()[0])
}

func TestBuiltinNamesUnique(t *testing.T) {
	r := Builtin()
	seen := make(map[string]bool)
	for _, name := range r.Names() {
		assert.False(t, seen[name], "duplicate theme %q", name)
		seen[name] = true
	}
}

func TestBuiltinAllRolesSet(t *testing.T) {
	r := Builtin()
	for _, name := range r.Names() {
		th, ok := r.Lookup(name)
		require.True(t, ok)

		roles := map[string]lipgloss.Color{
			"gpu": th.GPU, "cpu": th.CPU, "mem": th.Mem,
			"procMem": th.ProcMem, "procCPU": th.ProcCPU,
			"barLow": th.BarLow, "barMid": th.BarMid, "barHigh": th.BarHigh,
			"net": th.Net,
		}
		for role, c := range roles {
			assert.NotEmpty(t, string(c), "%s: role %s is unset", name, role)
			assert.True(t, strings.HasPrefix(string(c), "#"),
				"%s: role %s is not a hex color: %q", name, role, c)
		}
	}
}

func TestRegistryIndexAndAt(t *testing.T) {
	r := Builtin()

	idx := r.Index(DefaultName)
	require.GreaterOrEqual(t, idx, 0)
	assert.Equal(t, DefaultName, r.At(idx).Name)

	assert.Equal(t, -1, r.Index("No Such Theme"))
}

func TestRegistryResolve(t *testing.T) {
	r := Builtin()

	tests := []struct {
		name    string
		request string
		want    string
	}{
		{"empty uses default", "", DefaultName},
		{"known name", "Dracula", "Dracula"},
		{"unknown falls back", "Chartreuse Dreams", FallbackName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Resolve(tt.request).Name)
		})
	}
}

func TestNewRegistryKeepsFirstDuplicate(t *testing.T) {
	a := Theme{Name: "Dup", GPU: lipgloss.Color("#111111")}
	b := Theme{Name: "Dup", GPU: lipgloss.Color("#222222")}

	r := NewRegistry([]Theme{a, b})
	assert.Equal(t, 1, r.Len())

	got, ok := r.Lookup("Dup")
	require.True(t, ok)
	assert.Equal(t, lipgloss.Color("#111111"), got.GPU)
}

func TestNetDefaultsToCPUColor(t *testing.T) {
	r := Builtin()
	th, ok := r.Lookup("Dracula")
	require.True(t, ok)
	assert.Equal(t, th.CPU, th.Net)
}
