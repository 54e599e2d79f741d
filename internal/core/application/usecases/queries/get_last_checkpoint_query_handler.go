package queries

import (
	"context"
	"database/sql"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/trackedorder"

	"gorm.io/gorm"
)

// GetLastCheckpointQueryHandler resolves the current checkpoint of a tracked
// order straight from the database. Uses direct SQL for optimal read
// performance in the CQRS pattern.
//
// Example:
//
//	handler := NewGetLastCheckpointQueryHandler(db)
//	query, _ := NewGetLastCheckpointQuery(trackedOrderID)
//
//	last, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get last checkpoint: %v", err)
//	    return err
//	}
type GetLastCheckpointQueryHandler struct {
	db *gorm.DB
}

// NewGetLastCheckpointQueryHandler creates a handler for last-checkpoint queries.
// Requires a GORM database connection for query execution.
func NewGetLastCheckpointQueryHandler(db *gorm.DB) GetLastCheckpointQueryHandler {
	return GetLastCheckpointQueryHandler{db: db}
}

// Handle executes the query for the latest checkpoint of the order.
// Timestamp decides, the generated id breaks ties in favor of the entry
// recorded last. Returns nil without error when the order has no checkpoints.
func (h GetLastCheckpointQueryHandler) Handle(
	ctx context.Context,
	query GetLastCheckpointQuery,
) (*GetLastCheckpointQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			tracked_order_id,
			timestamp,
			location,
			description,
			status
		FROM order_checkpoints
		WHERE tracked_order_id = ?
		ORDER BY timestamp DESC, id DESC
		LIMIT 1
	`, query.TrackedOrderID().Int64()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return nil, err
		}
		return nil, nil //nolint:nilnil //no checkpoints is a valid empty result
	}

	var checkpointResp GetLastCheckpointQueryResponse
	var id, trackedOrderID int64
	var location sql.NullString
	var status int

	err = rows.Scan(
		&id,
		&trackedOrderID,
		&checkpointResp.Timestamp,
		&location,
		&checkpointResp.Description,
		&status,
	)
	if err != nil {
		return nil, err
	}

	checkpointID, idErr := kernel.NewID(id)
	if idErr != nil {
		return nil, idErr
	}
	checkpointResp.ID = checkpointID

	orderID, idErr := kernel.NewID(trackedOrderID)
	if idErr != nil {
		return nil, idErr
	}
	checkpointResp.TrackedOrderID = orderID

	checkpointResp.Location = location.String
	checkpointResp.Status = trackedorder.Status(status)

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return &checkpointResp, nil
}
