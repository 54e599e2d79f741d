package commands

import (
	"context"

	"tracking/internal/core/ports"
)

// DeleteTrackedOrderCommandHandler removes a tracked order together with its
// checkpoint history. Boolean-returning variant: deleting a nonexistent
// order or hitting any store failure reports false.
type DeleteTrackedOrderCommandHandler struct {
	ledger ports.CheckpointRepository
	orders ports.TrackedOrderRepository
	locker Locker
}

// NewDeleteTrackedOrderCommandHandler creates a handler for administrative deletion.
func NewDeleteTrackedOrderCommandHandler(
	ledger ports.CheckpointRepository,
	orders ports.TrackedOrderRepository,
	locker Locker,
) DeleteTrackedOrderCommandHandler {
	return DeleteTrackedOrderCommandHandler{
		ledger: ledger,
		orders: orders,
		locker: locker,
	}
}

// Handle deletes the order's checkpoints first, then the order itself, and
// reports whether the order row was removed.
func (h DeleteTrackedOrderCommandHandler) Handle(
	ctx context.Context, cmd DeleteTrackedOrderCommand,
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
	for _, cp := range checkpoints {
		if _, err := h.ledger.Delete(ctx, cp.ID()); err != nil {
			return false
		}
	}

	deleted, err := h.orders.Delete(ctx, cmd.TrackedOrderID())
	if err != nil {
		return false
	}

	return deleted
}
