package kernel

import (
	"fmt"

	"tracking/internal/pkg/errs"
)

// ID is a value object for identities generated by the persistence layer.
//
// Identities are assigned by the database on creation; a generated identity
// that is zero or negative signals a failed write, never a usable key, so the
// zero value of ID is invalid by definition. Entities are constructed without
// an identity and receive one exactly once when first persisted.
//
// Example:
//
//	id, err := kernel.NewID(101)
//	if err != nil {
//	    // the generated identity was invalid, treat the write as failed
//	}
type ID int64

// NewID wraps a generated identity, rejecting values that are not positive.
func NewID(value int64) (ID, error) {
	id := ID(value)
	if err := id.Validate(); err != nil {
		return 0, err
	}
	return id, nil
}

// Validate checks that the identity is usable (greater than zero).
func (id ID) Validate() error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("id",
			fmt.Errorf("%d is not a valid generated identity", int64(id)))
	}
	return nil
}

// IsZero reports whether the identity has not been assigned yet.
func (id ID) IsZero() bool {
	return id == 0
}

// Int64 returns the raw identity value for persistence and serialization.
func (id ID) Int64() int64 {
	return int64(id)
}

// String returns the decimal representation of the identity.
func (id ID) String() string {
	return fmt.Sprintf("%d", int64(id))
}
