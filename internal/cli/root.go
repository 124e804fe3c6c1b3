// Package cli wires the leetup commands together.
//
// Commands return ExitError to signal their exit code; main translates.
// All output goes through the cobra command's writers so tests can
// capture it.
package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/roach88/leetup/internal/config"
)

// RootOptions holds global flags shared by all commands.
type RootOptions struct {
	Verbose    bool
	NoColor    bool
	ConfigPath string
}

// NewRootCommand creates the root command for the leetup CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "leetup",
		Short: "Browse the problem catalog from the terminal",
		Long: `leetup lists coding problems from the catalog API, with a compact
single-character query language for filtering and multi-key ordering.

Examples:
  leetup list                 # full catalog, ascending by id
  leetup list -q eD           # easy problems not yet done
  leetup list -q mdLs         # medium, done, unlocked, starred
  leetup list -o Di -k sum    # hardest first, then by id, titles containing "sum"`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logLevel := slog.LevelWarn
			if opts.Verbose {
				logLevel = slog.LevelDebug
			}
			handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: logLevel,
			})
			slog.SetDefault(slog.New(handler))
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().BoolVar(&opts.NoColor, "no-color", false, "disable ANSI colors")
	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", config.DefaultPath(), "path to config file")

	cmd.AddCommand(NewListCommand(opts))
	cmd.AddCommand(NewCacheCommand(opts))
	cmd.AddCommand(NewConfigCommand(opts))

	return cmd
}
