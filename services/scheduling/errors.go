package scheduling

import "fmt"

// FieldViolation names one submission field that failed validation.
type FieldViolation struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// ValidationError reports every violation in a submission at once so the
// caller can render one combined error.
type ValidationError struct {
	MissingFields []string         `json:"missingFields,omitempty"`
	InvalidFields []FieldViolation `json:"invalidFields,omitempty"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %d missing, %d invalid",
		len(e.MissingFields), len(e.InvalidFields))
}

// HasViolations reports whether any field failed.
func (e *ValidationError) HasViolations() bool {
	return len(e.MissingFields) > 0 || len(e.InvalidFields) > 0
}

// ConflictError means the requested slot raced away or a capacity cap was hit
// at commit time. Expected under contention; the client should re-fetch slots
// and pick another.
type ConflictError struct {
	Reason string `json:"reason"`
}

func (e *ConflictError) Error() string {
	return "booking conflict: " + e.Reason
}

// StateTransitionError reports an illegal booking status change.
type StateTransitionError struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Reason string `json:"reason,omitempty"`
}

func (e *StateTransitionError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("cannot transition booking from %q to %q: %s", e.From, e.To, e.Reason)
	}
	return fmt.Sprintf("cannot transition booking from %q to %q", e.From, e.To)
}

// PreconditionError reports an action refused by policy, with enough detail
// for the caller to resolve it.
type PreconditionError struct {
	Message          string `json:"message"`
	BlockingBookings int64  `json:"blockingBookings,omitempty"`
}

func (e *PreconditionError) Error() string {
	return e.Message
}

// StoreUnavailableError wraps a transient infrastructure fault. The resolver
// retries these with backoff; everything else surfaces immediately.
type StoreUnavailableError struct {
	Op  string
	Err error
}

func (e *StoreUnavailableError) Error() string {
	return fmt.Sprintf("store unavailable during %s: %v", e.Op, e.Err)
}

func (e *StoreUnavailableError) Unwrap() error {
	return e.Err
}
