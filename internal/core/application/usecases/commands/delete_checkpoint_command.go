package commands

import (
	"errors"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/pkg/guard"
)

var ErrDeleteCheckpointCommandIsNotConstructed = errors.New(
	"DeleteCheckpointCommand must be created via NewDeleteCheckpointCommand constructor",
)

// DeleteCheckpointCommand represents the administrative removal of a single
// checkpoint. Unlike the revert operation it performs no status re-sync on
// the owning order.
type DeleteCheckpointCommand struct { //nolint:recvcheck //using for validation
	checkpointID kernel.ID

	guard guard.ConstructorGuard
}

// NewDeleteCheckpointCommand creates a deletion command for the given checkpoint.
func NewDeleteCheckpointCommand(checkpointID kernel.ID) (DeleteCheckpointCommand, error) {
	cmd := DeleteCheckpointCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setCheckpointID(checkpointID); err != nil {
		return DeleteCheckpointCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteCheckpointCommand) Validate() error {
	return c.guard.Validate(ErrDeleteCheckpointCommandIsNotConstructed)
}

// CheckpointID returns the identity of the checkpoint to delete.
func (c DeleteCheckpointCommand) CheckpointID() kernel.ID {
	return c.checkpointID
}

func (c *DeleteCheckpointCommand) setCheckpointID(checkpointID kernel.ID) error {
	if err := checkpointID.Validate(); err != nil {
		return err
	}

	c.checkpointID = checkpointID
	return nil
}
