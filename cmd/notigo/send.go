package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

func newSendCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "send [text...]",
		Short: "Send a notification message",
		Long:  "Send a notification message. The text comes from the arguments, or from stdin when none are given.",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := messageText(cmd, args)
			if err != nil {
				return err
			}

			notifier, cleanup, err := newNotifier(opts)
			if err != nil {
				return err
			}
			defer cleanup()

			msg, err := notifier.Send(cmd.Context(), text, collectOverrides(cmd)...)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "sent message %d\n", msg.MessageID)
			return nil
		},
	}

	addOverrideFlags(cmd)
	return cmd
}

// messageText joins the arguments, or reads stdin when none are given.
func messageText(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return strings.TrimRight(string(data), "\n"), nil
}
