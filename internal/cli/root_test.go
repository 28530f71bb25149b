package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rileyhilliard/ktop/internal/errors"
)

func TestRootCommandFlags(t *testing.T) {
	refresh := rootCmd.Flags().Lookup("refresh")
	require.NotNil(t, refresh)
	assert.Equal(t, "1", refresh.DefValue)
	assert.Equal(t, "r", refresh.Shorthand)

	th := rootCmd.Flags().Lookup("theme")
	require.NotNil(t, th)
	assert.Equal(t, "", th.DefValue)
}

func TestRootCommandRegistersSubcommands(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	assert.True(t, names["version"])
	assert.True(t, names["completion"])
}

func TestRunDashboardRejectsNonPositiveRefresh(t *testing.T) {
	err := runDashboard(0, "")
	require.Error(t, err)

	// The terminal check fires first under go test; only a real terminal
	// reaches the interval validation.
	isExpected := errors.IsCode(err, errors.ErrConfig) || errors.IsCode(err, errors.ErrTerminal)
	assert.True(t, isExpected)
}

func TestRunDashboardRequiresTerminal(t *testing.T) {
	// Test processes have no tty on stdout.
	err := runDashboard(1.0, "")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrTerminal))
}
