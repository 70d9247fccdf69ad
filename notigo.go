package notigo

import (
	"context"
	"sync"

	"github.com/prilive-com/notigo/tg"
)

var (
	defaultMu       sync.RWMutex
	defaultNotifier *Notifier
)

// Configure creates the package-level notifier used by the top-level Send,
// replacing any previously configured one.
func Configure(cfg Config, opts ...Option) error {
	n, err := New(cfg, opts...)
	if err != nil {
		return err
	}

	defaultMu.Lock()
	defaultNotifier = n
	defaultMu.Unlock()
	return nil
}

// Default returns the package-level notifier, or nil before Configure.
func Default() *Notifier {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultNotifier
}

// Send delivers text through the package-level notifier.
func Send(ctx context.Context, text string, overrides ...Override) (*tg.Message, error) {
	n := Default()
	if n == nil {
		return nil, tg.NewConfigError("notifier", "Configure has not been called")
	}
	return n.Send(ctx, text, overrides...)
}
