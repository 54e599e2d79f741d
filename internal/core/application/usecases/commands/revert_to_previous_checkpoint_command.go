package commands

import (
	"errors"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/pkg/guard"
)

var ErrRevertToPreviousCheckpointCommandIsNotConstructed = errors.New(
	"RevertToPreviousCheckpointCommand must be created via NewRevertToPreviousCheckpointCommand constructor",
)

// RevertToPreviousCheckpointCommand represents the undo operation: remove the
// latest checkpoint of a tracked order and restore the order's current status
// to the checkpoint before it.
type RevertToPreviousCheckpointCommand struct { //nolint:recvcheck //using for validation
	trackedOrderID kernel.ID

	guard guard.ConstructorGuard
}

// NewRevertToPreviousCheckpointCommand creates a revert command for the given
// tracked order.
func NewRevertToPreviousCheckpointCommand(
	trackedOrderID kernel.ID,
) (RevertToPreviousCheckpointCommand, error) {
	cmd := RevertToPreviousCheckpointCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setTrackedOrderID(trackedOrderID); err != nil {
		return RevertToPreviousCheckpointCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RevertToPreviousCheckpointCommand) Validate() error {
	return c.guard.Validate(ErrRevertToPreviousCheckpointCommandIsNotConstructed)
}

// TrackedOrderID returns the identity of the tracked order to revert.
func (c RevertToPreviousCheckpointCommand) TrackedOrderID() kernel.ID {
	return c.trackedOrderID
}

func (c *RevertToPreviousCheckpointCommand) setTrackedOrderID(trackedOrderID kernel.ID) error {
	if err := trackedOrderID.Validate(); err != nil {
		return err
	}

	c.trackedOrderID = trackedOrderID
	return nil
}
