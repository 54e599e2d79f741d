package commands

import (
	"context"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/trackedorder"
	"tracking/internal/core/ports"
)

// CreateTrackedOrderCommandHandler handles the creation of a tracked order.
// The store generates the identity and the handler assigns it back onto the
// aggregate; creation failures propagate unchanged and are fatal. After a
// successful create the buyer is notified of the initial status
// unconditionally, best-effort.
type CreateTrackedOrderCommandHandler struct {
	orders   ports.TrackedOrderRepository
	notifier *BuyerNotifier
}

// NewCreateTrackedOrderCommandHandler creates a handler for tracked order creation.
func NewCreateTrackedOrderCommandHandler(
	orders ports.TrackedOrderRepository,
	notifier *BuyerNotifier,
) CreateTrackedOrderCommandHandler {
	return CreateTrackedOrderCommandHandler{
		orders:   orders,
		notifier: notifier,
	}
}

// Handle processes the creation command and returns the generated identity.
func (h CreateTrackedOrderCommandHandler) Handle(
	ctx context.Context, cmd CreateTrackedOrderCommand,
) (kernel.ID, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	order, err := trackedorder.NewTrackedOrder(
		cmd.OrderID(), cmd.EstimatedDeliveryDate(), cmd.DeliveryAddress(), cmd.Status())
	if err != nil {
		return 0, err
	}

	id, err := h.orders.Create(ctx, order)
	if err != nil {
		return 0, err
	}

	h.notifier.NotifyProgress(ctx, order)

	return id, nil
}
