// Package cli implements the ktop command-line interface.
//
// The root command starts the dashboard directly; subcommands cover
// auxiliary operations like version info and shell completion. Commands
// stay thin and delegate to the dashboard, metrics and config packages.
package cli
