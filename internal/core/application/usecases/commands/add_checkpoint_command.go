package commands

import (
	"errors"
	"time"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/trackedorder"
	"tracking/internal/pkg/guard"
)

var ErrAddCheckpointCommandIsNotConstructed = errors.New(
	"AddCheckpointCommand must be created via NewAddCheckpointCommand constructor",
)

// AddCheckpointCommand represents a new fulfillment observation for a tracked
// order: where the package was, when, and in what status.
//
// Example:
//
//	cmd, err := NewAddCheckpointCommand(trackedOrderID, time.Now(),
//	    "Distribution Center", "Order processed", trackedorder.Processing)
//	if err != nil {
//	    return err
//	}
//	checkpointID, err := handler.Handle(ctx, cmd)
type AddCheckpointCommand struct { //nolint:recvcheck //using for validation
	trackedOrderID kernel.ID
	timestamp      time.Time
	location       string
	description    string
	status         trackedorder.Status

	guard guard.ConstructorGuard
}

// NewAddCheckpointCommand creates a command to record a checkpoint.
// The location may be empty; the timestamp is taken as given, never advanced.
func NewAddCheckpointCommand(
	trackedOrderID kernel.ID,
	timestamp time.Time,
	location string,
	description string,
	status trackedorder.Status,
) (AddCheckpointCommand, error) {
	cmd := AddCheckpointCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setTrackedOrderID(trackedOrderID),
		cmd.setStatus(status),
	); err != nil {
		return AddCheckpointCommand{}, err
	}

	cmd.timestamp = timestamp
	cmd.location = location
	cmd.description = description
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddCheckpointCommand) Validate() error {
	return c.guard.Validate(ErrAddCheckpointCommandIsNotConstructed)
}

// TrackedOrderID returns the identity of the owning tracked order.
func (c AddCheckpointCommand) TrackedOrderID() kernel.ID {
	return c.trackedOrderID
}

// Timestamp returns the point in time the checkpoint represents.
func (c AddCheckpointCommand) Timestamp() time.Time {
	return c.timestamp
}

// Location returns the free-text location, possibly empty.
func (c AddCheckpointCommand) Location() string {
	return c.location
}

// Description returns the free-text description.
func (c AddCheckpointCommand) Description() string {
	return c.description
}

// Status returns the observed status.
func (c AddCheckpointCommand) Status() trackedorder.Status {
	return c.status
}

func (c *AddCheckpointCommand) setTrackedOrderID(trackedOrderID kernel.ID) error {
	if err := trackedOrderID.Validate(); err != nil {
		return err
	}

	c.trackedOrderID = trackedOrderID
	return nil
}

func (c *AddCheckpointCommand) setStatus(status trackedorder.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}
