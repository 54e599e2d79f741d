package queries

import (
	"errors"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/pkg/guard"
)

var ErrGetTrackedOrderQueryIsNotConstructed = errors.New(
	"GetTrackedOrderQuery must be created via NewGetTrackedOrderQuery constructor",
)

// GetTrackedOrderQuery retrieves a single tracked order by identity.
type GetTrackedOrderQuery struct { //nolint:recvcheck //using for validation
	trackedOrderID kernel.ID

	guard guard.ConstructorGuard
}

// NewGetTrackedOrderQuery creates a query for the given tracked order.
func NewGetTrackedOrderQuery(trackedOrderID kernel.ID) (GetTrackedOrderQuery, error) {
	query := GetTrackedOrderQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setTrackedOrderID(trackedOrderID); err != nil {
		return GetTrackedOrderQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetTrackedOrderQueryIsNotConstructed if validation fails.
func (q GetTrackedOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetTrackedOrderQueryIsNotConstructed)
}

// TrackedOrderID returns the identity of the tracked order to fetch.
func (q GetTrackedOrderQuery) TrackedOrderID() kernel.ID {
	return q.trackedOrderID
}

func (q *GetTrackedOrderQuery) setTrackedOrderID(trackedOrderID kernel.ID) error {
	if err := trackedOrderID.Validate(); err != nil {
		return err
	}

	q.trackedOrderID = trackedOrderID
	return nil
}
