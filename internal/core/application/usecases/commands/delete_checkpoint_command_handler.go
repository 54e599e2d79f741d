package commands

import (
	"context"

	"tracking/internal/core/ports"
)

// DeleteCheckpointCommandHandler removes a single checkpoint. Boolean-
// returning variant: a nonexistent checkpoint or a ledger failure reports
// false.
type DeleteCheckpointCommandHandler struct {
	ledger ports.CheckpointRepository
}

// NewDeleteCheckpointCommandHandler creates a handler for administrative
// checkpoint deletion.
func NewDeleteCheckpointCommandHandler(ledger ports.CheckpointRepository) DeleteCheckpointCommandHandler {
	return DeleteCheckpointCommandHandler{
		ledger: ledger,
	}
}

// Handle deletes the checkpoint and reports whether a row was removed.
func (h DeleteCheckpointCommandHandler) Handle(ctx context.Context, cmd DeleteCheckpointCommand) bool {
	if err := cmd.Validate(); err != nil {
		return false
	}

	deleted, err := h.ledger.Delete(ctx, cmd.CheckpointID())
	if err != nil {
		return false
	}

	return deleted
}
