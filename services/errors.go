package services

import (
	"errors"
	"fmt"
)

var (
	// ErrAuthRequired is returned when an operation that needs an
	// authenticated user is invoked without one. No remote call is made.
	ErrAuthRequired = errors.New("authentication required")

	// ErrNotFound covers both a missing row and an appointment that does not
	// belong to the acting user.
	ErrNotFound = errors.New("not found")

	// ErrNotCancellable is returned when cancellation is attempted on an
	// appointment outside the scheduled/confirmed states.
	ErrNotCancellable = errors.New("appointment can no longer be cancelled")

	// errNoRowReturned signals an insert that succeeded at the transport
	// level but produced no representation to return.
	errNoRowReturned = errors.New("no row returned")
)

// InvalidSelectionError marks a form selection that references an entity not
// currently bookable for the business (stale or tampered client state).
type InvalidSelectionError struct {
	Field string
	ID    string
}

func (e *InvalidSelectionError) Error() string {
	return fmt.Sprintf("invalid %s selection: %s", e.Field, e.ID)
}

// PersistenceError wraps any failed remote read or write. The attempt is
// abandoned; callers surface the underlying message and may retry from
// scratch.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }
