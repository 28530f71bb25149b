package theme

import "github.com/charmbracelet/lipgloss"

// Builtin returns the registry of built-in themes.
// Role order in each entry: gpu, cpu, mem, procMem, procCPU, barLow, barMid,
// barHigh. The network accent defaults to the cpu role.
func Builtin() *Registry {
	var themes []Theme

	add := func(name, gpu, cpu, mem, procMem, procCPU, low, mid, high string) {
		themes = append(themes, Theme{
			Name:    name,
			GPU:     lipgloss.Color(gpu),
			CPU:     lipgloss.Color(cpu),
			Mem:     lipgloss.Color(mem),
			ProcMem: lipgloss.Color(procMem),
			ProcCPU: lipgloss.Color(procCPU),
			BarLow:  lipgloss.Color(low),
			BarMid:  lipgloss.Color(mid),
			BarHigh: lipgloss.Color(high),
			Net:     lipgloss.Color(cpu),
		})
	}

	// Classic & editor themes
	add("Default", "#ff00ff", "#00ffff", "#00ff00", "#00ff00", "#00ffff", "#00ff00", "#ffff00", "#ff0000")
	add("Monokai", "#ff66ff", "#66ffff", "#66ff66", "#66ff66", "#66ffff", "#00ff00", "#ffff00", "#ff0000")
	add("Dracula", "#bd93f9", "#8be9fd", "#50fa7b", "#50fa7b", "#8be9fd", "#50fa7b", "#f1fa8c", "#ff5555")
	add("Nord", "#b48ead", "#88c0d0", "#a3be8c", "#a3be8c", "#88c0d0", "#a3be8c", "#ebcb8b", "#bf616a")
	add("Solarized", "#d33682", "#2aa198", "#859900", "#859900", "#2aa198", "#859900", "#b58900", "#dc322f")
	add("Gruvbox", "#d3869b", "#83a598", "#b8bb26", "#b8bb26", "#83a598", "#b8bb26", "#fabd2f", "#fb4934")
	add("One Dark", "#c678dd", "#56b6c2", "#98c379", "#98c379", "#56b6c2", "#98c379", "#e5c07b", "#e06c75")
	add("Tokyo Night", "#bb9af7", "#7dcfff", "#9ece6a", "#9ece6a", "#7dcfff", "#9ece6a", "#e0af68", "#f7768e")
	add("Catppuccin Mocha", "#cba6f7", "#89dceb", "#a6e3a1", "#a6e3a1", "#89dceb", "#a6e3a1", "#f9e2af", "#f38ba8")
	add("Catppuccin Latte", "#8839ef", "#04a5e5", "#40a02b", "#40a02b", "#04a5e5", "#40a02b", "#df8e1d", "#d20f39")
	add("Rosé Pine", "#c4a7e7", "#9ccfd8", "#31748f", "#31748f", "#9ccfd8", "#31748f", "#f6c177", "#eb6f92")
	add("Everforest", "#d699b6", "#7fbbb3", "#a7c080", "#a7c080", "#7fbbb3", "#a7c080", "#dbbc7f", "#e67e80")
	add("Kanagawa", "#957fb8", "#7e9cd8", "#98bb6c", "#98bb6c", "#7e9cd8", "#98bb6c", "#e6c384", "#c34043")

	// Monochrome / minimal
	add("Monochrome", "#ffffff", "#ffffff", "#ffffff", "#ffffff", "#ffffff", "#ffffff", "#cccccc", "#aaaaaa")
	add("Green Screen", "#00ff00", "#00ff00", "#00ff00", "#00ff00", "#00ff00", "#66ff66", "#00ff00", "#006400")
	add("Amber", "#ffbf00", "#ffbf00", "#ffbf00", "#ffbf00", "#ffbf00", "#ffd700", "#ffbf00", "#ff8c00")
	add("Phosphor", "#33ff00", "#33ff00", "#33ff00", "#33ff00", "#33ff00", "#66ff33", "#33ff00", "#009900")

	// Color themes
	add("Ocean", "#6c5ce7", "#0984e3", "#00b894", "#00b894", "#0984e3", "#00b894", "#fdcb6e", "#d63031")
	add("Sunset", "#e17055", "#fdcb6e", "#fab1a0", "#fab1a0", "#fdcb6e", "#ffeaa7", "#e17055", "#d63031")
	add("Forest", "#00b894", "#55efc4", "#00cec9", "#00cec9", "#55efc4", "#55efc4", "#ffeaa7", "#e17055")
	add("Lava", "#ff6348", "#ff4757", "#ff6b81", "#ff6b81", "#ff4757", "#ffa502", "#ff6348", "#ff3838")
	add("Arctic", "#dfe6e9", "#74b9ff", "#81ecec", "#81ecec", "#74b9ff", "#81ecec", "#74b9ff", "#a29bfe")
	add("Sakura", "#fd79a8", "#e84393", "#fab1a0", "#fab1a0", "#e84393", "#fab1a0", "#fd79a8", "#e84393")
	add("Mint", "#00b894", "#00cec9", "#55efc4", "#55efc4", "#00cec9", "#55efc4", "#81ecec", "#ff7675")
	add("Lavender", "#a29bfe", "#6c5ce7", "#dfe6e9", "#dfe6e9", "#6c5ce7", "#a29bfe", "#6c5ce7", "#fd79a8")
	add("Coral", "#ff7675", "#fab1a0", "#ffeaa7", "#ffeaa7", "#fab1a0", "#ffeaa7", "#ff7675", "#d63031")
	add("Cyberpunk", "#ff00ff", "#00ffff", "#ff00aa", "#ff00aa", "#00ffff", "#00ff00", "#ffff00", "#ff0000")
	add("Neon", "#ff6ec7", "#00ffff", "#39ff14", "#39ff14", "#00ffff", "#39ff14", "#ffff00", "#ff073a")
	add("Synthwave", "#f72585", "#4cc9f0", "#7209b7", "#7209b7", "#4cc9f0", "#4cc9f0", "#f72585", "#ff0a54")
	add("Vaporwave", "#ff71ce", "#01cdfe", "#05ffa1", "#05ffa1", "#01cdfe", "#05ffa1", "#b967ff", "#ff71ce")
	add("Matrix", "#00ff41", "#008f11", "#003b00", "#003b00", "#008f11", "#00ff41", "#008f11", "#003b00")

	// Pastel & soft
	add("Pastel", "#c39bd3", "#85c1e9", "#82e0aa", "#82e0aa", "#85c1e9", "#82e0aa", "#f9e79f", "#f1948a")
	add("Soft", "#bb8fce", "#76d7c4", "#7dcea0", "#7dcea0", "#76d7c4", "#7dcea0", "#f0b27a", "#ec7063")
	add("Cotton Candy", "#ffb3ba", "#bae1ff", "#baffc9", "#baffc9", "#bae1ff", "#baffc9", "#ffffba", "#ffb3ba")
	add("Ice Cream", "#ff9a9e", "#a1c4fd", "#c2e9fb", "#c2e9fb", "#a1c4fd", "#c2e9fb", "#ffecd2", "#ff9a9e")

	// Bold & vivid
	add("Electric", "#7b2ff7", "#00d4ff", "#00ff87", "#00ff87", "#00d4ff", "#00ff87", "#ffd000", "#ff0055")
	add("Inferno", "#ff4500", "#ff6a00", "#ff8c00", "#ff8c00", "#ff6a00", "#ffd700", "#ff8c00", "#ff0000")
	add("Glacier", "#e0f7fa", "#80deea", "#4dd0e1", "#4dd0e1", "#80deea", "#80deea", "#4dd0e1", "#00838f")
	add("Twilight", "#7c4dff", "#448aff", "#18ffff", "#18ffff", "#448aff", "#18ffff", "#7c4dff", "#ff1744")
	add("Autumn", "#d35400", "#e67e22", "#f39c12", "#f39c12", "#e67e22", "#f1c40f", "#e67e22", "#c0392b")
	add("Spring", "#e91e63", "#00bcd4", "#8bc34a", "#8bc34a", "#00bcd4", "#8bc34a", "#ffeb3b", "#f44336")
	add("Summer", "#ff9800", "#03a9f4", "#4caf50", "#4caf50", "#03a9f4", "#4caf50", "#ffeb3b", "#f44336")
	add("Winter", "#9c27b0", "#3f51b5", "#607d8b", "#607d8b", "#3f51b5", "#607d8b", "#9c27b0", "#e91e63")

	// High contrast / accessibility
	add("High Contrast", "#ff66ff", "#66ffff", "#66ff66", "#66ff66", "#66ffff", "#66ff66", "#ffff66", "#ff6666")
	add("Blueprint", "#4fc3f7", "#29b6f6", "#03a9f4", "#03a9f4", "#29b6f6", "#4fc3f7", "#0288d1", "#01579b")
	add("Redshift", "#ef5350", "#e53935", "#c62828", "#c62828", "#e53935", "#ef9a9a", "#ef5350", "#b71c1c")
	add("Emerald", "#66bb6a", "#43a047", "#2e7d32", "#2e7d32", "#43a047", "#a5d6a7", "#66bb6a", "#1b5e20")
	add("Royal", "#7e57c2", "#5c6bc0", "#42a5f5", "#42a5f5", "#5c6bc0", "#42a5f5", "#7e57c2", "#d32f2f")
	add("Bubblegum", "#ff77a9", "#ff99cc", "#ffb3d9", "#ffb3d9", "#ff99cc", "#ffb3d9", "#ff77a9", "#ff3385")
	add("Horizon", "#e95678", "#fab795", "#25b0bc", "#25b0bc", "#fab795", "#25b0bc", "#fab795", "#e95678")

	return NewRegistry(themes)
}
