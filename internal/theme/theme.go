// Package theme defines the color themes used by the dashboard and the
// registry they are looked up in. A theme assigns a color to each of nine
// semantic roles; every visual element draws its color from one of them.
package theme

import "github.com/charmbracelet/lipgloss"

// Names of the themes used when nothing better is available.
const (
	// DefaultName is the theme used when no selection has been persisted.
	DefaultName = "Vaporwave"
	// FallbackName is the theme used when a requested name is unknown.
	FallbackName = "Default"
)

// Theme maps the nine semantic color roles to concrete colors.
// Immutable once constructed; every role is always set.
type Theme struct {
	Name string

	GPU     lipgloss.Color // GPU panel borders, titles, utilization accents
	CPU     lipgloss.Color // CPU panel borders, titles
	Mem     lipgloss.Color // memory panel borders, titles
	ProcMem lipgloss.Color // top-processes-by-memory accent
	ProcCPU lipgloss.Color // top-processes-by-CPU accent
	BarLow  lipgloss.Color // gradient bar start, <50% band
	BarMid  lipgloss.Color // 50-80% band
	BarHigh lipgloss.Color // gradient bar end, >=80% band
	Net     lipgloss.Color // network panel accent
}

// Registry is an immutable, ordered collection of themes. It is built once
// at startup and passed into the dashboard; nothing mutates it afterwards.
type Registry struct {
	names  []string
	byName map[string]Theme
}

// NewRegistry builds a registry from a slice of themes, preserving order.
// A duplicate name keeps the first occurrence.
func NewRegistry(themes []Theme) *Registry {
	r := &Registry{
		names:  make([]string, 0, len(themes)),
		byName: make(map[string]Theme, len(themes)),
	}
	for _, t := range themes {
		if _, exists := r.byName[t.Name]; exists {
			continue
		}
		r.names = append(r.names, t.Name)
		r.byName[t.Name] = t
	}
	return r
}

// Len returns the number of themes.
func (r *Registry) Len() int {
	return len(r.names)
}

// Names returns the theme names in registry order.
// The returned slice is a copy; callers may not mutate registry state.
func (r *Registry) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// Lookup returns the theme with the given name.
func (r *Registry) Lookup(name string) (Theme, bool) {
	t, ok := r.byName[name]
	return t, ok
}

// Index returns the position of the named theme, or -1 if unknown.
func (r *Registry) Index(name string) int {
	for i, n := range r.names {
		if n == name {
			return i
		}
	}
	return -1
}

// At returns the theme at position i. i must be in [0, Len).
func (r *Registry) At(i int) Theme {
	return r.byName[r.names[i]]
}

// Resolve maps a requested theme name to a theme that is guaranteed to
// exist: the request itself if known, DefaultName for an empty request,
// FallbackName for an unknown one, and finally the first registered theme.
func (r *Registry) Resolve(name string) Theme {
	if name == "" {
		name = DefaultName
	}
	if t, ok := r.byName[name]; ok {
		return t
	}
	if t, ok := r.byName[FallbackName]; ok {
		return t
	}
	return r.At(0)
}
