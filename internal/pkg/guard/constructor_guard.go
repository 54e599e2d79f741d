// Package guard provides a defensive construction pattern for commands and
// queries: a ConstructorGuard embedded in a struct makes zero-value instances
// detectable, so handlers can reject objects that bypassed their constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when a nil error is
// passed as the validation error, so validation always fails with a
// meaningful message.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard ensures value objects are only created through their
// designated constructor functions. The guard keeps an internal flag that is
// only set when the object is created through the proper constructor; any
// zero-value struct fails validation.
//
// Example:
//
//	type AddCheckpointCommand struct {
//	    trackedOrderID kernel.ID
//	    guard          guard.ConstructorGuard
//	}
//
//	func NewAddCheckpointCommand(id kernel.ID) (AddCheckpointCommand, error) {
//	    return AddCheckpointCommand{
//	        trackedOrderID: id,
//	        guard:          guard.NewConstructorGuard(),
//	    }, nil
//	}
//
//	func (c AddCheckpointCommand) Validate() error {
//	    return c.guard.Validate(ErrAddCheckpointCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking an object as properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil if the guarded object was created through its
// constructor, the provided validationError otherwise (or
// ErrDefaultConstructorGuard when validationError is nil).
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
