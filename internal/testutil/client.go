package testutil

import (
	"testing"
	"time"

	"github.com/prilive-com/notigo/transport"
	"github.com/sony/gobreaker/v2"
	"github.com/stretchr/testify/require"
)

// CircuitBreakerNeverTrip returns settings where breaker never opens.
// Use for tests that need repeated failures without breaker interference.
func CircuitBreakerNeverTrip() transport.CircuitBreakerSettings {
	return transport.CircuitBreakerSettings{
		MaxRequests: 100,
		Interval:    0,
		Timeout:     time.Hour,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return false // Never trip
		},
	}
}

// CircuitBreakerAggressiveTrip returns settings for testing breaker behavior.
// Trips after just 2 consecutive failures.
func CircuitBreakerAggressiveTrip() transport.CircuitBreakerSettings {
	return transport.CircuitBreakerSettings{
		MaxRequests: 1,
		Interval:    0,
		Timeout:     2 * time.Second, // Long enough to stay open during test assertions
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 2
		},
	}
}

// NewTestClient creates a transport client pointed at the mock server.
// Circuit breaker is configured to never trip so failures stay visible.
func NewTestClient(t *testing.T, baseURL string, opts ...transport.Option) *transport.Client {
	t.Helper()

	defaultOpts := []transport.Option{
		transport.WithBaseURL(baseURL),
		transport.WithCircuitBreakerSettings(CircuitBreakerNeverTrip()),
	}

	client, err := transport.New(append(defaultOpts, opts...)...)
	require.NoError(t, err)

	t.Cleanup(func() { client.Close() })
	return client
}

// NewBreakerTestClient creates a transport client for testing circuit
// breaker behavior. The breaker trips aggressively for fast testing.
func NewBreakerTestClient(t *testing.T, baseURL string, opts ...transport.Option) *transport.Client {
	t.Helper()

	defaultOpts := []transport.Option{
		transport.WithBaseURL(baseURL),
		transport.WithCircuitBreakerSettings(CircuitBreakerAggressiveTrip()),
	}

	client, err := transport.New(append(defaultOpts, opts...)...)
	require.NoError(t, err)

	t.Cleanup(func() { client.Close() })
	return client
}
