package commands

import (
	"context"

	"tracking/internal/core/ports"
)

// RevertToLastCheckpointCommandHandler re-synchronizes a tracked order's
// current status to its last checkpoint without deleting anything.
// Boolean-returning variant: a missing order, an empty history or any store
// failure reports false rather than an error.
type RevertToLastCheckpointCommandHandler struct {
	ledger      ports.CheckpointRepository
	orders      ports.TrackedOrderRepository
	updateOrder UpdateTrackedOrderCommandHandler
	locker      Locker
}

// NewRevertToLastCheckpointCommandHandler creates a handler for the forward re-sync.
func NewRevertToLastCheckpointCommandHandler(
	ledger ports.CheckpointRepository,
	orders ports.TrackedOrderRepository,
	updateOrder UpdateTrackedOrderCommandHandler,
	locker Locker,
) RevertToLastCheckpointCommandHandler {
	return RevertToLastCheckpointCommandHandler{
		ledger:      ledger,
		orders:      orders,
		updateOrder: updateOrder,
		locker:      locker,
	}
}

// Handle performs the re-sync and reports whether it succeeded.
func (h RevertToLastCheckpointCommandHandler) Handle(
	ctx context.Context, cmd RevertToLastCheckpointCommand,
) bool {
	if err := cmd.Validate(); err != nil {
		return false
	}

	h.locker.Lock(cmd.TrackedOrderID())
	defer h.locker.Unlock(cmd.TrackedOrderID())

	checkpoints, err := h.ledger.GetAllForOrder(ctx, cmd.TrackedOrderID())
	if err != nil {
		return false
	}

	last := latestCheckpoint(checkpoints)
	if last == nil {
		return false
	}

	order, err := h.orders.Get(ctx, cmd.TrackedOrderID())
	if err != nil {
		return false
	}

	syncCmd, err := NewUpdateTrackedOrderCommand(
		order.ID(), order.EstimatedDeliveryDate(), last.Status())
	if err != nil {
		return false
	}

	return h.updateOrder.handle(ctx, syncCmd) == nil
}
