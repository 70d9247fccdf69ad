package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/prilive-com/notigo"
	"github.com/prilive-com/notigo/tg"
)

func main() {
	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(exitCode(err))
	}
}

// exitCode maps an error to the process exit status: 2 for configuration
// and usage problems, 1 for deliveries that failed despite valid input.
func exitCode(err error) int {
	var cfgErr *tg.ConfigError
	var valErr *tg.ValidationError
	if errors.As(err, &cfgErr) || errors.As(err, &valErr) {
		return 2
	}
	var delErr *notigo.DeliveryError
	if errors.As(err, &delErr) || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return 1
	}
	return 2
}
