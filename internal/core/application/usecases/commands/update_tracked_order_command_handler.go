package commands

import (
	"context"
	"fmt"

	"tracking/internal/core/ports"
)

// UpdateTrackedOrderCommandHandler updates the tracked order projection and
// fires the conditional shipping notification. After the write the order is
// read back; if its resulting status is shipping progress (SHIPPED or
// OUT_FOR_DELIVERY), the buyer is notified best-effort.
//
// Other handlers that need to re-synchronize an order's status after touching
// its checkpoints delegate here, so the notification decision lives in
// exactly one place.
type UpdateTrackedOrderCommandHandler struct {
	orders   ports.TrackedOrderRepository
	notifier *BuyerNotifier
	locker   Locker
}

// NewUpdateTrackedOrderCommandHandler creates a handler for tracked order updates.
func NewUpdateTrackedOrderCommandHandler(
	orders ports.TrackedOrderRepository,
	notifier *BuyerNotifier,
	locker Locker,
) UpdateTrackedOrderCommandHandler {
	return UpdateTrackedOrderCommandHandler{
		orders:   orders,
		notifier: notifier,
		locker:   locker,
	}
}

// Handle processes the update command. Fatal persistence failures are wrapped
// with operation context; notification failures are invisible to the caller.
func (h UpdateTrackedOrderCommandHandler) Handle(ctx context.Context, cmd UpdateTrackedOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	h.locker.Lock(cmd.TrackedOrderID())
	defer h.locker.Unlock(cmd.TrackedOrderID())

	return h.handle(ctx, cmd)
}

// handle runs the update without acquiring the per-order lock. Handlers that
// already hold the lock for this order call it directly.
func (h UpdateTrackedOrderCommandHandler) handle(ctx context.Context, cmd UpdateTrackedOrderCommand) error {
	err := h.orders.Update(ctx, cmd.TrackedOrderID(), cmd.EstimatedDeliveryDate(), cmd.Status())
	if err != nil {
		return fmt.Errorf("Error updating TrackedOrder: %w", err)
	}

	updated, err := h.orders.Get(ctx, cmd.TrackedOrderID())
	if err != nil {
		return fmt.Errorf("Error updating TrackedOrder: %w", err)
	}

	if updated.Status().IsShippingProgress() {
		h.notifier.NotifyProgress(ctx, updated)
	}

	return nil
}
