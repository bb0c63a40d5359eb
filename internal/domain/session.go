package domain

// GuestToken is a short-lived credential for unauthenticated reads. One token
// is acquired per cycle, shared read-only by every lookup in that cycle, and
// discarded afterwards. Never persisted.
type GuestToken string
