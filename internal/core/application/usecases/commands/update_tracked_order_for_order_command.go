package commands

import (
	"errors"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/trackedorder"
	"tracking/internal/pkg/guard"
)

var ErrUpdateTrackedOrderForOrderCommandIsNotConstructed = errors.New(
	"UpdateTrackedOrderForOrderCommand must be created via NewUpdateTrackedOrderForOrderCommand constructor",
)

// UpdateTrackedOrderForOrderCommand is the ownership-checked variant of a
// tracked order update: the caller states the external purchase order it
// believes the tracked order refers to, and success is only reported when
// that expectation holds.
//
// A delivery address is accepted for caller compatibility but the persistence
// contract updates only the estimated delivery date and the status; the
// address on file is left as it was.
type UpdateTrackedOrderForOrderCommand struct { //nolint:recvcheck //using for validation
	trackedOrderID        kernel.ID
	orderID               kernel.ID
	estimatedDeliveryDate kernel.DeliveryDate
	deliveryAddress       string
	status                trackedorder.Status

	guard guard.ConstructorGuard
}

// NewUpdateTrackedOrderForOrderCommand creates an ownership-checked update command.
func NewUpdateTrackedOrderForOrderCommand(
	trackedOrderID kernel.ID,
	orderID kernel.ID,
	estimatedDeliveryDate kernel.DeliveryDate,
	deliveryAddress string,
	status trackedorder.Status,
) (UpdateTrackedOrderForOrderCommand, error) {
	cmd := UpdateTrackedOrderForOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setTrackedOrderID(trackedOrderID),
		cmd.setOrderID(orderID),
		cmd.setStatus(status),
	); err != nil {
		return UpdateTrackedOrderForOrderCommand{}, err
	}

	cmd.estimatedDeliveryDate = estimatedDeliveryDate
	cmd.deliveryAddress = deliveryAddress
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateTrackedOrderForOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateTrackedOrderForOrderCommandIsNotConstructed)
}

// TrackedOrderID returns the identity of the tracked order to update.
func (c UpdateTrackedOrderForOrderCommand) TrackedOrderID() kernel.ID {
	return c.trackedOrderID
}

// OrderID returns the external purchase order the tracked order is expected
// to refer to.
func (c UpdateTrackedOrderForOrderCommand) OrderID() kernel.ID {
	return c.orderID
}

// EstimatedDeliveryDate returns the new estimated delivery date.
func (c UpdateTrackedOrderForOrderCommand) EstimatedDeliveryDate() kernel.DeliveryDate {
	return c.estimatedDeliveryDate
}

// DeliveryAddress returns the address supplied by the caller. It is not
// persisted by this operation.
func (c UpdateTrackedOrderForOrderCommand) DeliveryAddress() string {
	return c.deliveryAddress
}

// Status returns the new current status.
func (c UpdateTrackedOrderForOrderCommand) Status() trackedorder.Status {
	return c.status
}

func (c *UpdateTrackedOrderForOrderCommand) setTrackedOrderID(trackedOrderID kernel.ID) error {
	if err := trackedOrderID.Validate(); err != nil {
		return err
	}

	c.trackedOrderID = trackedOrderID
	return nil
}

func (c *UpdateTrackedOrderForOrderCommand) setOrderID(orderID kernel.ID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateTrackedOrderForOrderCommand) setStatus(status trackedorder.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}
