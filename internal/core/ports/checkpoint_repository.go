package ports

import (
	"context"
	"time"

	"tracking/internal/core/domain/model/checkpoint"
	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/trackedorder"
)

// CheckpointRepository is the Checkpoint Ledger: durable CRUD for status
// observations.
//
// The ledger returns checkpoints in insertion order and never re-sorts by
// timestamp: callers may author checkpoints with timestamps out of
// chronological order, and insertion-derived ordering must be preserved
// faithfully rather than silently reordered.
type CheckpointRepository interface {
	// Create persists a new checkpoint, assigns the generated identity onto
	// the entity, and returns it. Same creation-failure semantics as the
	// tracked order store: zero rows or identity ≤ 0 is a PersistenceError.
	Create(ctx context.Context, cp *checkpoint.Checkpoint) (kernel.ID, error)

	// Get retrieves a checkpoint by identity.
	// Fails with an ObjectNotFoundError if no row matches.
	Get(ctx context.Context, id kernel.ID) (*checkpoint.Checkpoint, error)

	// GetAllForOrder retrieves every checkpoint of a tracked order in
	// insertion order.
	GetAllForOrder(ctx context.Context, trackedOrderID kernel.ID) ([]*checkpoint.Checkpoint, error)

	// Update replaces all mutable fields of a checkpoint; location may be
	// empty. Fails with a PersistenceError if zero rows were affected.
	Update(
		ctx context.Context,
		id kernel.ID,
		timestamp time.Time,
		location string,
		description string,
		status trackedorder.Status,
	) error

	// Delete removes a checkpoint, reporting whether exactly one row was
	// removed.
	Delete(ctx context.Context, id kernel.ID) (bool, error)
}
