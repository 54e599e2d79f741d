package commands

import (
	"errors"
	"time"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/trackedorder"
	"tracking/internal/pkg/guard"
)

var ErrUpdateCheckpointForOrderCommandIsNotConstructed = errors.New(
	"UpdateCheckpointForOrderCommand must be created via NewUpdateCheckpointForOrderCommand constructor",
)

// UpdateCheckpointForOrderCommand is the ownership-checked variant of a
// checkpoint correction: the caller states which tracked order it believes
// the checkpoint belongs to, and the correction only proceeds when that
// expectation holds.
type UpdateCheckpointForOrderCommand struct { //nolint:recvcheck //using for validation
	checkpointID   kernel.ID
	trackedOrderID kernel.ID
	timestamp      time.Time
	location       string
	description    string
	status         trackedorder.Status

	guard guard.ConstructorGuard
}

// NewUpdateCheckpointForOrderCommand creates an ownership-checked correction command.
func NewUpdateCheckpointForOrderCommand(
	checkpointID kernel.ID,
	trackedOrderID kernel.ID,
	timestamp time.Time,
	location string,
	description string,
	status trackedorder.Status,
) (UpdateCheckpointForOrderCommand, error) {
	cmd := UpdateCheckpointForOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCheckpointID(checkpointID),
		cmd.setTrackedOrderID(trackedOrderID),
		cmd.setStatus(status),
	); err != nil {
		return UpdateCheckpointForOrderCommand{}, err
	}

	cmd.timestamp = timestamp
	cmd.location = location
	cmd.description = description
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateCheckpointForOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCheckpointForOrderCommandIsNotConstructed)
}

// CheckpointID returns the identity of the checkpoint to correct.
func (c UpdateCheckpointForOrderCommand) CheckpointID() kernel.ID {
	return c.checkpointID
}

// TrackedOrderID returns the tracked order the checkpoint is expected to belong to.
func (c UpdateCheckpointForOrderCommand) TrackedOrderID() kernel.ID {
	return c.trackedOrderID
}

// Timestamp returns the corrected timestamp.
func (c UpdateCheckpointForOrderCommand) Timestamp() time.Time {
	return c.timestamp
}

// Location returns the corrected location, possibly empty.
func (c UpdateCheckpointForOrderCommand) Location() string {
	return c.location
}

// Description returns the corrected description.
func (c UpdateCheckpointForOrderCommand) Description() string {
	return c.description
}

// Status returns the corrected status.
func (c UpdateCheckpointForOrderCommand) Status() trackedorder.Status {
	return c.status
}

func (c *UpdateCheckpointForOrderCommand) setCheckpointID(checkpointID kernel.ID) error {
	if err := checkpointID.Validate(); err != nil {
		return err
	}

	c.checkpointID = checkpointID
	return nil
}

func (c *UpdateCheckpointForOrderCommand) setTrackedOrderID(trackedOrderID kernel.ID) error {
	if err := trackedOrderID.Validate(); err != nil {
		return err
	}

	c.trackedOrderID = trackedOrderID
	return nil
}

func (c *UpdateCheckpointForOrderCommand) setStatus(status trackedorder.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}
