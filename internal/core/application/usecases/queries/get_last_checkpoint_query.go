package queries

import (
	"errors"
	"time"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/trackedorder"
	"tracking/internal/pkg/guard"
)

var ErrGetLastCheckpointQueryIsNotConstructed = errors.New(
	"GetLastCheckpointQuery must be created via NewGetLastCheckpointQuery constructor",
)

// GetLastCheckpointQuery retrieves the checkpoint that currently defines an
// order's position in the fulfillment flow: the one with the latest timestamp,
// ties broken in favor of the most recently recorded entry.
//
// Example:
//
//	query, err := NewGetLastCheckpointQuery(trackedOrderID)
//	if err != nil {
//	    return err
//	}
//
//	last, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get last checkpoint: %w", err)
//	}
//	if last == nil {
//	    fmt.Println("no checkpoints recorded yet")
//	}
type GetLastCheckpointQuery struct { //nolint:recvcheck //using for validation
	trackedOrderID kernel.ID

	guard guard.ConstructorGuard
}

// NewGetLastCheckpointQuery creates a query for the given tracked order.
func NewGetLastCheckpointQuery(trackedOrderID kernel.ID) (GetLastCheckpointQuery, error) {
	query := GetLastCheckpointQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setTrackedOrderID(trackedOrderID); err != nil {
		return GetLastCheckpointQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetLastCheckpointQueryIsNotConstructed if validation fails.
func (q GetLastCheckpointQuery) Validate() error {
	return q.guard.Validate(ErrGetLastCheckpointQueryIsNotConstructed)
}

// TrackedOrderID returns the identity of the tracked order to inspect.
func (q GetLastCheckpointQuery) TrackedOrderID() kernel.ID {
	return q.trackedOrderID
}

func (q *GetLastCheckpointQuery) setTrackedOrderID(trackedOrderID kernel.ID) error {
	if err := trackedOrderID.Validate(); err != nil {
		return err
	}

	q.trackedOrderID = trackedOrderID
	return nil
}

// GetLastCheckpointQueryResponse represents a single checkpoint read model.
type GetLastCheckpointQueryResponse struct {
	ID             kernel.ID
	TrackedOrderID kernel.ID
	Timestamp      time.Time
	Location       string
	Description    string
	Status         trackedorder.Status
}
