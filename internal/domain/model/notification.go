package model

import "strings"

// ValidationError is returned when an aggregate fails its invariants.
// Message holds every problem found in the failed validation pass.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, ",")
}

// Notification accumulates validation messages for a single validation pass.
// Create one per pass; it is not meant to outlive the call that filled it.
type Notification struct {
	errors []string
}

// NewNotification returns an empty Notification.
func NewNotification() *Notification {
	return &Notification{}
}

// AddError records a validation message.
func (n *Notification) AddError(message string) {
	n.errors = append(n.errors, message)
}

// HasErrors reports whether any message has been recorded.
func (n *Notification) HasErrors() bool {
	return len(n.errors) > 0
}

// Messages returns the recorded messages joined with "," in insertion order.
func (n *Notification) Messages() string {
	return strings.Join(n.errors, ",")
}

// Err returns a *ValidationError carrying the recorded messages, or nil.
func (n *Notification) Err() error {
	if !n.HasErrors() {
		return nil
	}
	msgs := make([]string, len(n.errors))
	copy(msgs, n.errors)
	return &ValidationError{Messages: msgs}
}
