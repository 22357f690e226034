// Package cli provides the command-line interface for lintwire.
package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/lintwire-labs/lintwire/internal/cli/commands"
	"github.com/lintwire-labs/lintwire/internal/config"
)

var cfgFile string

// Version information (set at build time).
var (
	Version   = "0.1.0"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "lintwire",
		Short: "lintwire - editor annotations for external static analysis",
		Long: `lintwire turns static-analysis violations into editor annotations.

It connects the external analysis engine to editors: per file it picks the
rule sets matching the file's dialect, runs them against the current text,
and converts the violations into offset ranges, severities and suppression
quick-fixes. Rule sets, dialect versions and the engine endpoint are
configured in lintwire.yaml.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			cfg, err := config.Load(cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}

			logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: cfg.SlogLevel(),
			}))

			ctx := commands.WithConfig(cmd.Context(), cfg)
			ctx = commands.WithLogger(ctx, logger)
			cmd.SetContext(ctx)
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: lintwire.yaml upward from CWD)")
	rootCmd.PersistentFlags().String("log-level", "", "log level: debug, info, warn, error")

	rootCmd.AddCommand(commands.NewCheckCommand())
	rootCmd.AddCommand(commands.NewLSPCommand())
	rootCmd.AddCommand(commands.NewRuleSetsCommand())
	rootCmd.AddCommand(commands.NewVersionCommand(Version))

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}
