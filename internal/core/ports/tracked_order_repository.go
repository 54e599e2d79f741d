// Package ports defines the persistence and collaborator contracts of the
// tracking core. These interfaces establish contracts between the
// application layer and infrastructure, enabling dependency inversion and
// testability.
package ports

import (
	"context"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/trackedorder"
)

// TrackedOrderRepository is the Tracked Order Store: durable CRUD for the
// current-status projection per order.
type TrackedOrderRepository interface {
	// Create persists a new tracked order, assigns the generated identity
	// onto the aggregate, and returns it. A write reporting zero affected
	// rows or a generated identity ≤ 0 fails with a PersistenceError; this
	// is a fatal creation failure, never "ID zero".
	Create(ctx context.Context, order *trackedorder.TrackedOrder) (kernel.ID, error)

	// Get retrieves a tracked order by identity.
	// Fails with an ObjectNotFoundError if no row matches.
	Get(ctx context.Context, id kernel.ID) (*trackedorder.TrackedOrder, error)

	// GetAll retrieves every tracked order.
	GetAll(ctx context.Context) ([]*trackedorder.TrackedOrder, error)

	// Update replaces the two mutable projection fields. Fails with a
	// PersistenceError if zero rows were affected (the id did not exist).
	Update(
		ctx context.Context,
		id kernel.ID,
		estimatedDeliveryDate kernel.DeliveryDate,
		status trackedorder.Status,
	) error

	// Delete removes a tracked order, reporting whether exactly one row was
	// removed. Deleting a nonexistent order returns false, not an error,
	// so callers wanting idempotence need no special handling.
	Delete(ctx context.Context, id kernel.ID) (bool, error)
}
