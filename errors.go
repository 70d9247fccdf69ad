package notigo

import "fmt"

// DeliveryError reports that the delivery pipeline gave up on a message.
//
// Attempts counts every transport exchange made on the message's behalf,
// including the plain-text fallback attempt when one was made. Transient
// records whether the final fault was the retryable kind, so callers can
// apply their own re-submission policy on top.
type DeliveryError struct {
	Attempts  int
	Transient bool
	cause     error
}

func (e *DeliveryError) Error() string {
	if e.Transient {
		return fmt.Sprintf("notigo: delivery failed after %d attempts (transient): %v", e.Attempts, e.cause)
	}
	return fmt.Sprintf("notigo: delivery failed after %d attempts (permanent): %v", e.Attempts, e.cause)
}

// Unwrap returns the fault from the final attempt.
func (e *DeliveryError) Unwrap() error { return e.cause }
