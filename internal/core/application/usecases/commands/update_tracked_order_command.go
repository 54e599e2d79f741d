package commands

import (
	"errors"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/trackedorder"
	"tracking/internal/pkg/guard"
)

var ErrUpdateTrackedOrderCommandIsNotConstructed = errors.New(
	"UpdateTrackedOrderCommand must be created via NewUpdateTrackedOrderCommand constructor",
)

// UpdateTrackedOrderCommand represents a request to replace the mutable
// projection fields of a tracked order: the estimated delivery date and the
// current status.
//
// Example:
//
//	cmd, err := NewUpdateTrackedOrderCommand(trackedOrderID, eta, trackedorder.Shipped)
//	if err != nil {
//	    return err
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to update tracked order: %w", err)
//	}
type UpdateTrackedOrderCommand struct { //nolint:recvcheck //using for validation
	trackedOrderID        kernel.ID
	estimatedDeliveryDate kernel.DeliveryDate
	status                trackedorder.Status

	guard guard.ConstructorGuard
}

// NewUpdateTrackedOrderCommand creates a command to update a tracked order.
// Validates that the identity is positive and the status is a known value.
func NewUpdateTrackedOrderCommand(
	trackedOrderID kernel.ID,
	estimatedDeliveryDate kernel.DeliveryDate,
	status trackedorder.Status,
) (UpdateTrackedOrderCommand, error) {
	cmd := UpdateTrackedOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setTrackedOrderID(trackedOrderID),
		cmd.setStatus(status),
	); err != nil {
		return UpdateTrackedOrderCommand{}, err
	}

	cmd.estimatedDeliveryDate = estimatedDeliveryDate
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateTrackedOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateTrackedOrderCommandIsNotConstructed)
}

// TrackedOrderID returns the identity of the tracked order to update.
func (c UpdateTrackedOrderCommand) TrackedOrderID() kernel.ID {
	return c.trackedOrderID
}

// EstimatedDeliveryDate returns the new estimated delivery date.
func (c UpdateTrackedOrderCommand) EstimatedDeliveryDate() kernel.DeliveryDate {
	return c.estimatedDeliveryDate
}

// Status returns the new current status.
func (c UpdateTrackedOrderCommand) Status() trackedorder.Status {
	return c.status
}

func (c *UpdateTrackedOrderCommand) setTrackedOrderID(trackedOrderID kernel.ID) error {
	if err := trackedOrderID.Validate(); err != nil {
		return err
	}

	c.trackedOrderID = trackedOrderID
	return nil
}

func (c *UpdateTrackedOrderCommand) setStatus(status trackedorder.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}
