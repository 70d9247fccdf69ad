package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// rootOptions carries flag values shared by every subcommand.
type rootOptions struct {
	configPath string
	verbose    bool
}

// logger builds the CLI logger. Diagnostics go to stderr so stdout stays
// scriptable.
func (o *rootOptions) logger() *slog.Logger {
	level := slog.LevelWarn
	if o.verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:           "notigo",
		Short:         "Send Telegram notifications from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "Configuration file path (default notigo.yaml when present)")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(newSendCommand(opts))
	rootCmd.AddCommand(newHeartbeatCommand(opts))

	return rootCmd
}
