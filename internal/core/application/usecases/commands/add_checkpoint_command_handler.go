package commands

import (
	"context"
	"fmt"

	"tracking/internal/core/domain/model/checkpoint"
	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/ports"
)

// AddCheckpointCommandHandler records a checkpoint and keeps the owning
// tracked order in sync: after the ledger write the order's projection is
// updated to the checkpoint's status through the tracked order update
// operation, which also owns the conditional shipping notification. A single
// AddCheckpoint therefore notifies at most once.
type AddCheckpointCommandHandler struct {
	ledger      ports.CheckpointRepository
	orders      ports.TrackedOrderRepository
	updateOrder UpdateTrackedOrderCommandHandler
	locker      Locker
}

// NewAddCheckpointCommandHandler creates a handler for checkpoint creation.
func NewAddCheckpointCommandHandler(
	ledger ports.CheckpointRepository,
	orders ports.TrackedOrderRepository,
	updateOrder UpdateTrackedOrderCommandHandler,
	locker Locker,
) AddCheckpointCommandHandler {
	return AddCheckpointCommandHandler{
		ledger:      ledger,
		orders:      orders,
		updateOrder: updateOrder,
		locker:      locker,
	}
}

// Handle records the checkpoint and returns its generated identity. Any
// failure before the notification step is fatal and wrapped with operation
// context.
func (h AddCheckpointCommandHandler) Handle(
	ctx context.Context, cmd AddCheckpointCommand,
) (kernel.ID, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	h.locker.Lock(cmd.TrackedOrderID())
	defer h.locker.Unlock(cmd.TrackedOrderID())

	cp, err := checkpoint.NewCheckpoint(
		cmd.TrackedOrderID(), cmd.Timestamp(), cmd.Location(), cmd.Description(), cmd.Status())
	if err != nil {
		return 0, fmt.Errorf("Error adding OrderCheckpoint: %w", err)
	}

	id, err := h.ledger.Create(ctx, cp)
	if err != nil {
		return 0, fmt.Errorf("Error adding OrderCheckpoint: %w", err)
	}

	order, err := h.orders.Get(ctx, cmd.TrackedOrderID())
	if err != nil {
		return 0, fmt.Errorf("Error adding OrderCheckpoint: %w", err)
	}

	syncCmd, err := NewUpdateTrackedOrderCommand(
		order.ID(), order.EstimatedDeliveryDate(), cmd.Status())
	if err != nil {
		return 0, fmt.Errorf("Error adding OrderCheckpoint: %w", err)
	}

	if err := h.updateOrder.handle(ctx, syncCmd); err != nil {
		return 0, fmt.Errorf("Error adding OrderCheckpoint: %w", err)
	}

	return id, nil
}
