package errs

import (
	"errors"
	"fmt"
)

// ErrInvalidOperation is the sentinel error for business-rule violations.
var ErrInvalidOperation = errors.New("invalid operation")

// InvalidOperationError indicates that an operation is not allowed in the
// current state, e.g. reverting a tracked order that has a single checkpoint.
type InvalidOperationError struct {
	Message string
	Cause   error
}

// NewInvalidOperationError creates an InvalidOperationError without an underlying cause.
func NewInvalidOperationError(message string) *InvalidOperationError {
	return &InvalidOperationError{
		Message: message,
	}
}

// NewInvalidOperationErrorWithCause creates an InvalidOperationError wrapping an underlying cause.
func NewInvalidOperationErrorWithCause(message string, cause error) *InvalidOperationError {
	return &InvalidOperationError{
		Message: message,
		Cause:   cause,
	}
}

func (e *InvalidOperationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrInvalidOperation, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrInvalidOperation, e.Message)
}

func (e *InvalidOperationError) Unwrap() error {
	return ErrInvalidOperation
}
