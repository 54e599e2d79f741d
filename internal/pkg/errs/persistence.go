package errs

import (
	"errors"
	"fmt"
)

// ErrPersistenceFailed is the sentinel error for writes that did not take effect:
// zero affected rows or an invalid generated identity.
var ErrPersistenceFailed = errors.New("persistence failed")

// PersistenceError indicates a fatal persistence failure. Operation names the
// write that failed (e.g. "create TrackedOrder").
type PersistenceError struct {
	Operation string
	Cause     error
}

// NewPersistenceError creates a PersistenceError without an underlying cause.
func NewPersistenceError(operation string) *PersistenceError {
	return &PersistenceError{
		Operation: operation,
	}
}

// NewPersistenceErrorWithCause creates a PersistenceError wrapping an underlying cause.
func NewPersistenceErrorWithCause(operation string, cause error) *PersistenceError {
	return &PersistenceError{
		Operation: operation,
		Cause:     cause,
	}
}

func (e *PersistenceError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrPersistenceFailed, e.Operation, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrPersistenceFailed, e.Operation)
}

func (e *PersistenceError) Unwrap() error {
	return ErrPersistenceFailed
}
