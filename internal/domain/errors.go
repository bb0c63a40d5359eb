package domain

import "fmt"

// AuthError means the anonymous guest credential could not be obtained.
// It aborts the whole cycle; no partial results are produced.
type AuthError struct {
	Reason string
	Err    error
}

func (e *AuthError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("guest session: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("guest session: %s", e.Reason)
}

func (e *AuthError) Unwrap() error { return e.Err }

// DeliveryError means a notification could not be delivered. It is logged by
// the caller and never retried; it does not affect persisted state.
type DeliveryError struct {
	Recipient int64
	Err       error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("deliver to %d: %v", e.Recipient, e.Err)
}

func (e *DeliveryError) Unwrap() error { return e.Err }
