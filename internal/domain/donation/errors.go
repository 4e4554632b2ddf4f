package donation

import (
	"errors"
	"fmt"
)

var ErrNotFound = errors.New("donation not found")

// ValidationError names the first field that failed validation.
type ValidationError struct {
	Field  string
	Reason string
	// Missing is set when a required field was absent.
	Missing bool
}

func (e *ValidationError) Error() string {
	if e.Missing {
		return "Missing required field: " + e.Field
	}
	return e.Field + " " + e.Reason
}

// StoreError wraps an infrastructure failure from the persistence layer.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string { return fmt.Sprintf("store %s: %v", e.Op, e.Err) }

func (e *StoreError) Unwrap() error { return e.Err }
