package commands

import (
	"errors"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/pkg/guard"
)

var ErrDeleteTrackedOrderCommandIsNotConstructed = errors.New(
	"DeleteTrackedOrderCommand must be created via NewDeleteTrackedOrderCommand constructor",
)

// DeleteTrackedOrderCommand represents the administrative removal of a
// tracked order and its checkpoint history. Not part of the normal
// fulfillment flow.
type DeleteTrackedOrderCommand struct { //nolint:recvcheck //using for validation
	trackedOrderID kernel.ID

	guard guard.ConstructorGuard
}

// NewDeleteTrackedOrderCommand creates a deletion command for the given
// tracked order.
func NewDeleteTrackedOrderCommand(trackedOrderID kernel.ID) (DeleteTrackedOrderCommand, error) {
	cmd := DeleteTrackedOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setTrackedOrderID(trackedOrderID); err != nil {
		return DeleteTrackedOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteTrackedOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeleteTrackedOrderCommandIsNotConstructed)
}

// TrackedOrderID returns the identity of the tracked order to delete.
func (c DeleteTrackedOrderCommand) TrackedOrderID() kernel.ID {
	return c.trackedOrderID
}

func (c *DeleteTrackedOrderCommand) setTrackedOrderID(trackedOrderID kernel.ID) error {
	if err := trackedOrderID.Validate(); err != nil {
		return err
	}

	c.trackedOrderID = trackedOrderID
	return nil
}
