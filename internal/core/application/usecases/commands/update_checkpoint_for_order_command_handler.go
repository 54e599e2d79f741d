package commands

import (
	"context"

	"tracking/internal/core/ports"
)

// UpdateCheckpointForOrderCommandHandler corrects a checkpoint only when it
// belongs to the tracked order the caller expects. It is one of the
// boolean-returning variants: every internal failure, including an ownership
// mismatch, reports false instead of an error, so callers must not assume
// failures are distinguishable.
type UpdateCheckpointForOrderCommandHandler struct {
	ledger           ports.CheckpointRepository
	updateCheckpoint UpdateCheckpointCommandHandler
}

// NewUpdateCheckpointForOrderCommandHandler creates the ownership-checked handler.
func NewUpdateCheckpointForOrderCommandHandler(
	ledger ports.CheckpointRepository,
	updateCheckpoint UpdateCheckpointCommandHandler,
) UpdateCheckpointForOrderCommandHandler {
	return UpdateCheckpointForOrderCommandHandler{
		ledger:           ledger,
		updateCheckpoint: updateCheckpoint,
	}
}

// Handle verifies ownership, then runs the regular checkpoint correction
// including the status re-sync. Returns whether the correction succeeded.
func (h UpdateCheckpointForOrderCommandHandler) Handle(
	ctx context.Context, cmd UpdateCheckpointForOrderCommand,
) bool {
	if err := cmd.Validate(); err != nil {
		return false
	}

	cp, err := h.ledger.Get(ctx, cmd.CheckpointID())
	if err != nil {
		return false
	}
	if cp.TrackedOrderID() != cmd.TrackedOrderID() {
		return false
	}

	updateCmd, err := NewUpdateCheckpointCommand(
		cmd.CheckpointID(), cmd.Timestamp(), cmd.Location(), cmd.Description(), cmd.Status())
	if err != nil {
		return false
	}

	return h.updateCheckpoint.Handle(ctx, updateCmd) == nil
}
