package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"

	"github.com/prilive-com/notigo/tg"
)

func newHeartbeatCommand(opts *rootOptions) *cobra.Command {
	var schedule string
	var text string

	cmd := &cobra.Command{
		Use:   "heartbeat --schedule <cron>",
		Short: "Send a recurring heartbeat message",
		Long:  "Send a recurring heartbeat message on a cron schedule until interrupted.",
		RunE: func(cmd *cobra.Command, args []string) error {
			notifier, cleanup, err := newNotifier(opts)
			if err != nil {
				return err
			}
			defer cleanup()

			logger := opts.logger()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			overrides := collectOverrides(cmd)
			beat := func() error {
				_, err := notifier.Send(ctx, text, overrides...)
				return err
			}

			parser := cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)
			c := cron.New(cron.WithParser(parser))
			if _, err := c.AddFunc(schedule, func() {
				if err := beat(); err != nil {
					logger.Error("heartbeat failed", "error", err)
				}
			}); err != nil {
				return tg.NewConfigError("schedule", fmt.Sprintf("invalid cron expression %q: %v", schedule, err))
			}

			// The first beat runs immediately so a bad message or chat
			// surfaces before the process parks on the schedule.
			if err := beat(); err != nil {
				var valErr *tg.ValidationError
				if errors.As(err, &valErr) {
					return err
				}
				logger.Error("heartbeat failed", "error", err)
			}

			c.Start()
			logger.Info("heartbeat started", "schedule", schedule)

			<-ctx.Done()
			<-c.Stop().Done()
			logger.Info("heartbeat stopped")
			return nil
		},
	}

	cmd.Flags().StringVar(&schedule, "schedule", "", "Cron expression for the heartbeat (e.g. \"*/5 * * * *\")")
	cmd.Flags().StringVar(&text, "text", "heartbeat: service alive", "Heartbeat message text")
	cmd.MarkFlagRequired("schedule")
	addOverrideFlags(cmd)

	return cmd
}
