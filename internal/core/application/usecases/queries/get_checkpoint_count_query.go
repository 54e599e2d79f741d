package queries

import (
	"errors"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/pkg/guard"
)

var ErrGetCheckpointCountQueryIsNotConstructed = errors.New(
	"GetCheckpointCountQuery must be created via NewGetCheckpointCountQuery constructor",
)

// GetCheckpointCountQuery counts the checkpoints recorded for a tracked order.
type GetCheckpointCountQuery struct { //nolint:recvcheck //using for validation
	trackedOrderID kernel.ID

	guard guard.ConstructorGuard
}

// NewGetCheckpointCountQuery creates a count query for the given tracked order.
func NewGetCheckpointCountQuery(trackedOrderID kernel.ID) (GetCheckpointCountQuery, error) {
	query := GetCheckpointCountQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setTrackedOrderID(trackedOrderID); err != nil {
		return GetCheckpointCountQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetCheckpointCountQueryIsNotConstructed if validation fails.
func (q GetCheckpointCountQuery) Validate() error {
	return q.guard.Validate(ErrGetCheckpointCountQueryIsNotConstructed)
}

// TrackedOrderID returns the identity of the tracked order to count for.
func (q GetCheckpointCountQuery) TrackedOrderID() kernel.ID {
	return q.trackedOrderID
}

func (q *GetCheckpointCountQuery) setTrackedOrderID(trackedOrderID kernel.ID) error {
	if err := trackedOrderID.Validate(); err != nil {
		return err
	}

	q.trackedOrderID = trackedOrderID
	return nil
}
