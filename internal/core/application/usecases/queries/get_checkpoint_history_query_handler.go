package queries

import (
	"context"
	"database/sql"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/trackedorder"

	"gorm.io/gorm"
)

// GetCheckpointHistoryQueryHandler reads the checkpoint trail of a tracked
// order from the database. The trail is presented in chronological order,
// which can differ from the recording order when checkpoints arrive late.
type GetCheckpointHistoryQueryHandler struct {
	db *gorm.DB
}

// NewGetCheckpointHistoryQueryHandler creates a handler for history queries.
// Requires a GORM database connection for query execution.
func NewGetCheckpointHistoryQueryHandler(db *gorm.DB) GetCheckpointHistoryQueryHandler {
	return GetCheckpointHistoryQueryHandler{db: db}
}

// Handle executes the query for the order's checkpoint trail.
// Results are sorted by timestamp, ties by the generated id.
func (h GetCheckpointHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetCheckpointHistoryQuery,
) ([]GetCheckpointHistoryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	checkpoints := make([]GetCheckpointHistoryQueryResponse, 0)

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
		ORDER BY timestamp, id
	`, query.TrackedOrderID().Int64()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var checkpointResp GetCheckpointHistoryQueryResponse
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
		checkpoints = append(checkpoints, checkpointResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return checkpoints, nil
}
