package commands

import (
	"errors"
	"time"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/trackedorder"
	"tracking/internal/pkg/guard"
)

var ErrUpdateCheckpointCommandIsNotConstructed = errors.New(
	"UpdateCheckpointCommand must be created via NewUpdateCheckpointCommand constructor",
)

// UpdateCheckpointCommand represents a correction of an existing checkpoint.
// All mutable fields are replaced at once.
type UpdateCheckpointCommand struct { //nolint:recvcheck //using for validation
	checkpointID kernel.ID
	timestamp    time.Time
	location     string
	description  string
	status       trackedorder.Status

	guard guard.ConstructorGuard
}

// NewUpdateCheckpointCommand creates a command to correct a checkpoint.
func NewUpdateCheckpointCommand(
	checkpointID kernel.ID,
	timestamp time.Time,
	location string,
	description string,
	status trackedorder.Status,
) (UpdateCheckpointCommand, error) {
	cmd := UpdateCheckpointCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCheckpointID(checkpointID),
		cmd.setStatus(status),
	); err != nil {
		return UpdateCheckpointCommand{}, err
	}

	cmd.timestamp = timestamp
	cmd.location = location
	cmd.description = description
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateCheckpointCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCheckpointCommandIsNotConstructed)
}

// CheckpointID returns the identity of the checkpoint to correct.
func (c UpdateCheckpointCommand) CheckpointID() kernel.ID {
	return c.checkpointID
}

// Timestamp returns the corrected timestamp.
func (c UpdateCheckpointCommand) Timestamp() time.Time {
	return c.timestamp
}

// Location returns the corrected location, possibly empty.
func (c UpdateCheckpointCommand) Location() string {
	return c.location
}

// Description returns the corrected description.
func (c UpdateCheckpointCommand) Description() string {
	return c.description
}

// Status returns the corrected status.
func (c UpdateCheckpointCommand) Status() trackedorder.Status {
	return c.status
}

func (c *UpdateCheckpointCommand) setCheckpointID(checkpointID kernel.ID) error {
	if err := checkpointID.Validate(); err != nil {
		return err
	}

	c.checkpointID = checkpointID
	return nil
}

func (c *UpdateCheckpointCommand) setStatus(status trackedorder.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}
