package commands

import (
	"context"

	"tracking/internal/core/ports"
	"tracking/internal/pkg/errs"
)

// RevertToPreviousCheckpointCommandHandler implements the destructive undo:
// it deletes the checkpoint currently considered last (maximum timestamp,
// later insertion wins a tie) and re-synchronizes the order's status to the
// new latest checkpoint. Reversion is blocked below a floor of one remaining
// checkpoint, so history never empties through this operation.
type RevertToPreviousCheckpointCommandHandler struct {
	ledger      ports.CheckpointRepository
	orders      ports.TrackedOrderRepository
	updateOrder UpdateTrackedOrderCommandHandler
	locker      Locker
}

// NewRevertToPreviousCheckpointCommandHandler creates a handler for the undo operation.
func NewRevertToPreviousCheckpointCommandHandler(
	ledger ports.CheckpointRepository,
	orders ports.TrackedOrderRepository,
	updateOrder UpdateTrackedOrderCommandHandler,
	locker Locker,
) RevertToPreviousCheckpointCommandHandler {
	return RevertToPreviousCheckpointCommandHandler{
		ledger:      ledger,
		orders:      orders,
		updateOrder: updateOrder,
		locker:      locker,
	}
}

// Handle processes the revert. An order with one checkpoint or none fails
// with an InvalidOperationError and no state is mutated.
func (h RevertToPreviousCheckpointCommandHandler) Handle(
	ctx context.Context, cmd RevertToPreviousCheckpointCommand,
) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	h.locker.Lock(cmd.TrackedOrderID())
	defer h.locker.Unlock(cmd.TrackedOrderID())

	checkpoints, err := h.ledger.GetAllForOrder(ctx, cmd.TrackedOrderID())
	if err != nil {
		return err
	}
	if len(checkpoints) <= 1 {
		return errs.NewInvalidOperationError("Cannot revert further")
	}

	last := latestCheckpoint(checkpoints)
	if last == nil {
		return errs.NewInvalidOperationError("No checkpoints found to revert")
	}

	deleted, err := h.ledger.Delete(ctx, last.ID())
	if err != nil {
		return err
	}
	if !deleted {
		return errs.NewInvalidOperationError("Failed to delete the current checkpoint")
	}

	remaining, err := h.ledger.GetAllForOrder(ctx, cmd.TrackedOrderID())
	if err != nil {
		return err
	}
	newLast := latestCheckpoint(remaining)
	if newLast == nil {
		return errs.NewInvalidOperationError("No checkpoints found to revert")
	}

	order, err := h.orders.Get(ctx, cmd.TrackedOrderID())
	if err != nil {
		return err
	}

	syncCmd, err := NewUpdateTrackedOrderCommand(
		order.ID(), order.EstimatedDeliveryDate(), newLast.Status())
	if err != nil {
		return err
	}

	return h.updateOrder.handle(ctx, syncCmd)
}
