package model

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a record does not exist.
	ErrNotFound = errors.New("not found")

	// ErrPaymentNotVerified is returned when the provider does not confirm
	// a payment as succeeded, or the captured amount does not match the
	// server-computed total. An order must never be committed behind it.
	ErrPaymentNotVerified = errors.New("payment not verified")
)

// ValidationError reports bad input at the API boundary. Its message is
// surfaced to the caller verbatim with a 400 status.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Invalid builds a ValidationError for the given field.
func Invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// StorageError wraps a failed persistence operation. When it happens after a
// verified payment capture it must be escalated, not swallowed.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage failure during %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }
