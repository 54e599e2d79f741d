package commands

import (
	"context"

	"tracking/internal/core/ports"
)

// UpdateTrackedOrderForOrderCommandHandler updates a tracked order's
// projection and verifies after the write that the stored order refers to the
// external purchase order the caller expected. Boolean-returning variant:
// mismatches and every internal failure report false. The conditional
// shipping notification fires only on a verified match.
type UpdateTrackedOrderForOrderCommandHandler struct {
	orders   ports.TrackedOrderRepository
	notifier *BuyerNotifier
	locker   Locker
}

// NewUpdateTrackedOrderForOrderCommandHandler creates the ownership-checked handler.
func NewUpdateTrackedOrderForOrderCommandHandler(
	orders ports.TrackedOrderRepository,
	notifier *BuyerNotifier,
	locker Locker,
) UpdateTrackedOrderForOrderCommandHandler {
	return UpdateTrackedOrderForOrderCommandHandler{
		orders:   orders,
		notifier: notifier,
		locker:   locker,
	}
}

// Handle performs the update and reports whether it succeeded against the
// expected purchase order.
func (h UpdateTrackedOrderForOrderCommandHandler) Handle(
	ctx context.Context, cmd UpdateTrackedOrderForOrderCommand,
) bool {
	if err := cmd.Validate(); err != nil {
		return false
	}

	h.locker.Lock(cmd.TrackedOrderID())
	defer h.locker.Unlock(cmd.TrackedOrderID())

	err := h.orders.Update(ctx, cmd.TrackedOrderID(), cmd.EstimatedDeliveryDate(), cmd.Status())
	if err != nil {
		return false
	}

	updated, err := h.orders.Get(ctx, cmd.TrackedOrderID())
	if err != nil {
		return false
	}
	if updated.OrderID() != cmd.OrderID() {
		return false
	}

	if updated.Status().IsShippingProgress() {
		h.notifier.NotifyProgress(ctx, updated)
	}

	return true
}
