package testutil

import (
	"context"
	"sync"

	"github.com/prilive-com/notigo/tg"
)

// Outcome is one scripted transport result.
type Outcome struct {
	Msg *tg.Message
	Err error
}

// Succeed scripts a successful delivery acknowledged with messageID.
func Succeed(messageID int) Outcome {
	return Outcome{Msg: TestMessage(messageID, "Test message")}
}

// Fail scripts a failed delivery.
func Fail(err error) Outcome {
	return Outcome{Err: err}
}

// ScriptedTransport replays a fixed list of outcomes and records every
// delivery it was asked to make. Once the script runs out, every further
// delivery succeeds. It stands in for the HTTP transport in tests that
// drive retry and fallback behavior.
type ScriptedTransport struct {
	mu         sync.Mutex
	script     []Outcome
	next       int
	deliveries []tg.Delivery
}

// NewScriptedTransport creates a transport that plays back the given outcomes.
func NewScriptedTransport(script ...Outcome) *ScriptedTransport {
	return &ScriptedTransport{script: script}
}

// Deliver records the delivery and returns the next scripted outcome.
func (s *ScriptedTransport) Deliver(ctx context.Context, d tg.Delivery) (*tg.Message, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.deliveries = append(s.deliveries, d)
	if s.next >= len(s.script) {
		return TestMessage(len(s.deliveries), "Test message"), nil
	}

	outcome := s.script[s.next]
	s.next++
	if outcome.Err != nil {
		return nil, outcome.Err
	}
	return outcome.Msg, nil
}

// Deliveries returns every recorded delivery in order.
func (s *ScriptedTransport) Deliveries() []tg.Delivery {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]tg.Delivery{}, s.deliveries...)
}

// DeliveryCount returns the number of deliveries attempted.
func (s *ScriptedTransport) DeliveryCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.deliveries)
}

// LastDelivery returns the most recent delivery, or a zero value if none.
func (s *ScriptedTransport) LastDelivery() tg.Delivery {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.deliveries) == 0 {
		return tg.Delivery{}
	}
	return s.deliveries[len(s.deliveries)-1]
}
