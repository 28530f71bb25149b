package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	refreshFlag float64
	themeFlag   string
)

var rootCmd = &cobra.Command{
	Use:   "ktop",
	Short: "Terminal system resource monitor",
	Long: `ktop is a real-time terminal dashboard for a single machine.

It shows GPU utilization and memory (via nvidia-smi), network throughput
with an auto-scaling ceiling, CPU and memory usage with rolling sparkline
history, and the top processes by memory and CPU.

Keyboard shortcuts:
  q / Esc     Quit
  t           Open the theme picker

Examples:
  ktop
  ktop -r 0.5
  ktop --theme Dracula`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDashboard(refreshFlag, themeFlag)
	},
}

func init() {
	rootCmd.Flags().Float64VarP(&refreshFlag, "refresh", "r", 1.0, "refresh interval in seconds")
	rootCmd.Flags().StringVar(&themeFlag, "theme", "", "color theme (browse with the 't' key)")
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
