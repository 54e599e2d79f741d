package commands

import (
	"errors"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/trackedorder"
	"tracking/internal/pkg/guard"
)

var ErrCreateTrackedOrderCommandIsNotConstructed = errors.New(
	"CreateTrackedOrderCommand must be created via NewCreateTrackedOrderCommand constructor",
)

// CreateTrackedOrderCommand represents a request to start tracking the
// fulfillment of a purchased order. The tracked order begins with zero
// checkpoints; the initial status is whatever the caller observed.
//
// Example:
//
//	cmd, err := NewCreateTrackedOrderCommand(orderID, eta, "123 Test St", trackedorder.Processing)
//	if err != nil {
//	    return fmt.Errorf("invalid tracking data: %w", err)
//	}
//	id, err := handler.Handle(ctx, cmd)
type CreateTrackedOrderCommand struct { //nolint:recvcheck //using for validation
	orderID               kernel.ID
	estimatedDeliveryDate kernel.DeliveryDate
	deliveryAddress       string
	status                trackedorder.Status

	guard guard.ConstructorGuard
}

// NewCreateTrackedOrderCommand creates a command to start tracking an order.
// Validates that the external order reference is positive and the status is a
// known value; the address may be empty.
func NewCreateTrackedOrderCommand(
	orderID kernel.ID,
	estimatedDeliveryDate kernel.DeliveryDate,
	deliveryAddress string,
	status trackedorder.Status,
) (CreateTrackedOrderCommand, error) {
	cmd := CreateTrackedOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setStatus(status),
	); err != nil {
		return CreateTrackedOrderCommand{}, err
	}

	cmd.estimatedDeliveryDate = estimatedDeliveryDate
	cmd.deliveryAddress = deliveryAddress
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateTrackedOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateTrackedOrderCommandIsNotConstructed)
}

// OrderID returns the external purchase order reference.
func (c CreateTrackedOrderCommand) OrderID() kernel.ID {
	return c.orderID
}

// EstimatedDeliveryDate returns the estimated delivery date.
func (c CreateTrackedOrderCommand) EstimatedDeliveryDate() kernel.DeliveryDate {
	return c.estimatedDeliveryDate
}

// DeliveryAddress returns the delivery destination address.
func (c CreateTrackedOrderCommand) DeliveryAddress() string {
	return c.deliveryAddress
}

// Status returns the initial status.
func (c CreateTrackedOrderCommand) Status() trackedorder.Status {
	return c.status
}

func (c *CreateTrackedOrderCommand) setOrderID(orderID kernel.ID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateTrackedOrderCommand) setStatus(status trackedorder.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}
