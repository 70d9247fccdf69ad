package notigo

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/prilive-com/notigo/tg"
	"github.com/prilive-com/notigo/transport"
)

// Transport performs a single sendMessage exchange with the Bot API.
// *transport.Client satisfies it; tests substitute scripted implementations.
type Transport interface {
	Deliver(ctx context.Context, d tg.Delivery) (*tg.Message, error)
}

// Sleeper abstracts the pause between retry attempts so tests can run
// without real delays.
type Sleeper interface {
	Sleep(ctx context.Context, d time.Duration) error
}

// realSleeper waits on the wall clock, honouring context cancellation.
type realSleeper struct{}

func (realSleeper) Sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Notifier delivers notification messages to a Telegram chat.
//
// A Notifier is safe for concurrent use: Send works from an immutable
// snapshot of the configuration and Configure swaps in a validated
// replacement without blocking in-flight sends.
type Notifier struct {
	config   atomic.Pointer[Config]
	configMu sync.Mutex // serializes Configure writers

	transport Transport
	logger    *slog.Logger
	sleeper   Sleeper

	ownedTransport *transport.Client // set when New built the transport itself
}

// Option configures the Notifier.
type Option func(*Notifier)

// WithTransport substitutes the delivery transport.
func WithTransport(t Transport) Option {
	return func(n *Notifier) {
		n.transport = t
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) Option {
	return func(n *Notifier) {
		n.logger = logger
	}
}

// WithSleeper sets a custom sleeper for retry timing (useful for testing).
func WithSleeper(s Sleeper) Option {
	return func(n *Notifier) {
		n.sleeper = s
	}
}

// New creates a Notifier with the given configuration.
func New(cfg Config, opts ...Option) (*Notifier, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	n := &Notifier{}
	for _, opt := range opts {
		opt(n)
	}

	if n.logger == nil {
		n.logger = slog.Default()
	}
	if n.sleeper == nil {
		n.sleeper = realSleeper{}
	}
	if n.transport == nil {
		client, err := transport.New(transport.WithLogger(n.logger))
		if err != nil {
			return nil, err
		}
		n.transport = client
		n.ownedTransport = client
	}

	n.config.Store(&cfg)
	return n, nil
}

// Config returns a snapshot of the current configuration.
func (n *Notifier) Config() Config {
	return *n.config.Load()
}

// Configure updates the configuration. The mutation receives a copy of the
// current config; the result replaces it only if it validates, so a failed
// Configure leaves the previous configuration in effect.
func (n *Notifier) Configure(mutate func(*Config)) error {
	n.configMu.Lock()
	defer n.configMu.Unlock()

	next := *n.config.Load()
	mutate(&next)
	if err := next.Validate(); err != nil {
		return err
	}
	n.config.Store(&next)
	return nil
}

// Close releases transport resources owned by the Notifier. Transports
// supplied via WithTransport are the caller's to close.
func (n *Notifier) Close() error {
	if n.ownedTransport != nil {
		return n.ownedTransport.Close()
	}
	return nil
}
