package cli

import (
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/rileyhilliard/ktop/internal/config"
	"github.com/rileyhilliard/ktop/internal/dashboard"
	"github.com/rileyhilliard/ktop/internal/errors"
	"github.com/rileyhilliard/ktop/internal/logger"
	"github.com/rileyhilliard/ktop/internal/metrics"
	"github.com/rileyhilliard/ktop/internal/theme"
)

// runDashboard wires up the providers, sampler and model, then hands the
// terminal to Bubble Tea until the user quits.
func runDashboard(refresh float64, themeName string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New(errors.ErrTerminal,
			"Standard output is not a terminal",
			"ktop draws a full-screen dashboard; run it from an interactive terminal.")
	}
	if refresh <= 0 {
		return errors.New(errors.ErrConfig,
			"Refresh interval must be positive",
			"Use something like -r 1.0 for one sample per second.")
	}

	log := logger.NewEnvLogger("ktop")
	registry := theme.Builtin()

	var store *config.Store
	if path, err := config.DefaultPath(); err != nil {
		log.Warn("preferences unavailable: %v", err)
	} else {
		store = config.NewStore(path, log)
	}

	// Theme precedence: flag, then saved preference, then the default.
	name := themeName
	if name == "" && store != nil {
		name = store.Theme()
	}

	system := metrics.NewSystem()
	gpu := metrics.NewNvidiaSMI(log)
	defer gpu.Close()
	sampler := metrics.NewSampler(system, gpu, metrics.DefaultHistoryLen, log)

	var themeStore dashboard.ThemeStore
	if store != nil {
		themeStore = store
	}

	interval := time.Duration(refresh * float64(time.Second))
	model := dashboard.NewModel(sampler, registry, themeStore, name, interval, log)

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
