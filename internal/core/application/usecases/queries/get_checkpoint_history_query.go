package queries

import (
	"errors"
	"time"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/trackedorder"
	"tracking/internal/pkg/guard"
)

var ErrGetCheckpointHistoryQueryIsNotConstructed = errors.New(
	"GetCheckpointHistoryQuery must be created via NewGetCheckpointHistoryQuery constructor",
)

// GetCheckpointHistoryQuery retrieves the full checkpoint trail of a tracked
// order in chronological display order.
//
// Example:
//
//	query, err := NewGetCheckpointHistoryQuery(trackedOrderID)
//	if err != nil {
//	    return err
//	}
//
//	history, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get checkpoint history: %w", err)
//	}
//
//	for _, cp := range history {
//	    fmt.Printf("%s %s at %s\n", cp.Timestamp, cp.Status, cp.Location)
//	}
type GetCheckpointHistoryQuery struct { //nolint:recvcheck //using for validation
	trackedOrderID kernel.ID

	guard guard.ConstructorGuard
}

// NewGetCheckpointHistoryQuery creates a history query for the given tracked order.
func NewGetCheckpointHistoryQuery(trackedOrderID kernel.ID) (GetCheckpointHistoryQuery, error) {
	query := GetCheckpointHistoryQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setTrackedOrderID(trackedOrderID); err != nil {
		return GetCheckpointHistoryQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetCheckpointHistoryQueryIsNotConstructed if validation fails.
func (q GetCheckpointHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetCheckpointHistoryQueryIsNotConstructed)
}

// TrackedOrderID returns the identity of the tracked order to inspect.
func (q GetCheckpointHistoryQuery) TrackedOrderID() kernel.ID {
	return q.trackedOrderID
}

func (q *GetCheckpointHistoryQuery) setTrackedOrderID(trackedOrderID kernel.ID) error {
	if err := trackedOrderID.Validate(); err != nil {
		return err
	}

	q.trackedOrderID = trackedOrderID
	return nil
}

// GetCheckpointHistoryQueryResponse represents one checkpoint in the trail.
type GetCheckpointHistoryQueryResponse struct {
	ID             kernel.ID
	TrackedOrderID kernel.ID
	Timestamp      time.Time
	Location       string
	Description    string
	Status         trackedorder.Status
}
