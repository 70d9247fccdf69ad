package testutil

import (
	"context"
	"sync"
	"time"
)

// Sleeper abstracts time-based waiting for deterministic testing.
type Sleeper interface {
	Sleep(ctx context.Context, d time.Duration) error
}

// FakeSleeper records sleep calls without actually sleeping.
// Use this in tests to verify retry timing without real delays.
type FakeSleeper struct {
	mu    sync.Mutex
	calls []time.Duration
}

// Sleep records the duration without actually sleeping.
// Returns ctx.Err() if the context is already cancelled.
func (f *FakeSleeper) Sleep(ctx context.Context, d time.Duration) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		f.mu.Lock()
		f.calls = append(f.calls, d)
		f.mu.Unlock()
		return nil
	}
}

// Calls returns all recorded sleep durations.
func (f *FakeSleeper) Calls() []time.Duration {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]time.Duration{}, f.calls...)
}

// TotalDuration returns the sum of all sleep durations.
func (f *FakeSleeper) TotalDuration() time.Duration {
	f.mu.Lock()
	defer f.mu.Unlock()
	var total time.Duration
	for _, d := range f.calls {
		total += d
	}
	return total
}

// CallCount returns the number of sleep calls.
func (f *FakeSleeper) CallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

// Reset clears all recorded calls.
func (f *FakeSleeper) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = f.calls[:0]
}

var _ Sleeper = (*FakeSleeper)(nil)
