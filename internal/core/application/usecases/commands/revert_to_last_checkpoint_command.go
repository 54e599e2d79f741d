package commands

import (
	"errors"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/pkg/guard"
)

var ErrRevertToLastCheckpointCommandIsNotConstructed = errors.New(
	"RevertToLastCheckpointCommand must be created via NewRevertToLastCheckpointCommand constructor",
)

// RevertToLastCheckpointCommand represents a non-destructive forward re-sync:
// set the tracked order's current status to the status of its last
// checkpoint without removing anything. Distinct from the undo operation,
// which deletes the last checkpoint and restores the one before it.
type RevertToLastCheckpointCommand struct { //nolint:recvcheck //using for validation
	trackedOrderID kernel.ID

	guard guard.ConstructorGuard
}

// NewRevertToLastCheckpointCommand creates a re-sync command for the given
// tracked order.
func NewRevertToLastCheckpointCommand(
	trackedOrderID kernel.ID,
) (RevertToLastCheckpointCommand, error) {
	cmd := RevertToLastCheckpointCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setTrackedOrderID(trackedOrderID); err != nil {
		return RevertToLastCheckpointCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RevertToLastCheckpointCommand) Validate() error {
	return c.guard.Validate(ErrRevertToLastCheckpointCommandIsNotConstructed)
}

// TrackedOrderID returns the identity of the tracked order to re-sync.
func (c RevertToLastCheckpointCommand) TrackedOrderID() kernel.ID {
	return c.trackedOrderID
}

func (c *RevertToLastCheckpointCommand) setTrackedOrderID(trackedOrderID kernel.ID) error {
	if err := trackedOrderID.Validate(); err != nil {
		return err
	}

	c.trackedOrderID = trackedOrderID
	return nil
}
