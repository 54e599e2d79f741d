package commands

import (
	"context"
	"fmt"

	"tracking/internal/core/ports"
)

// UpdateCheckpointCommandHandler corrects a checkpoint in place and pushes
// the edited checkpoint's status onto the owning tracked order.
//
// The sync is deliberately by-edit, not by-recency: editing any checkpoint's
// status re-synchronizes the order to that edited checkpoint's status even
// when it is not the latest one. Last operation wins; the handler never
// re-derives "true latest" by timestamp.
type UpdateCheckpointCommandHandler struct {
	ledger      ports.CheckpointRepository
	orders      ports.TrackedOrderRepository
	updateOrder UpdateTrackedOrderCommandHandler
	locker      Locker
}

// NewUpdateCheckpointCommandHandler creates a handler for checkpoint corrections.
func NewUpdateCheckpointCommandHandler(
	ledger ports.CheckpointRepository,
	orders ports.TrackedOrderRepository,
	updateOrder UpdateTrackedOrderCommandHandler,
	locker Locker,
) UpdateCheckpointCommandHandler {
	return UpdateCheckpointCommandHandler{
		ledger:      ledger,
		orders:      orders,
		updateOrder: updateOrder,
		locker:      locker,
	}
}

// Handle corrects the checkpoint, then re-reads it and its owning order and
// re-synchronizes the order's status. Fatal failures are wrapped with
// operation context.
func (h UpdateCheckpointCommandHandler) Handle(ctx context.Context, cmd UpdateCheckpointCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	err := h.ledger.Update(
		ctx, cmd.CheckpointID(), cmd.Timestamp(), cmd.Location(), cmd.Description(), cmd.Status())
	if err != nil {
		return fmt.Errorf("Error updating OrderCheckpoint: %w", err)
	}

	cp, err := h.ledger.Get(ctx, cmd.CheckpointID())
	if err != nil {
		return fmt.Errorf("Error updating OrderCheckpoint: %w", err)
	}

	// The owning order is only known after the re-read, so the per-order
	// serialization covers the projection sync, not the ledger write.
	h.locker.Lock(cp.TrackedOrderID())
	defer h.locker.Unlock(cp.TrackedOrderID())

	order, err := h.orders.Get(ctx, cp.TrackedOrderID())
	if err != nil {
		return fmt.Errorf("Error updating OrderCheckpoint: %w", err)
	}

	syncCmd, err := NewUpdateTrackedOrderCommand(
		order.ID(), order.EstimatedDeliveryDate(), cp.Status())
	if err != nil {
		return fmt.Errorf("Error updating OrderCheckpoint: %w", err)
	}

	if err := h.updateOrder.handle(ctx, syncCmd); err != nil {
		return fmt.Errorf("Error updating OrderCheckpoint: %w", err)
	}

	return nil
}
