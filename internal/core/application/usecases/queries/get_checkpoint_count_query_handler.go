package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetCheckpointCountQueryHandler counts checkpoints for a tracked order.
// Counting happens in the database, never by loading the full history.
type GetCheckpointCountQueryHandler struct {
	db *gorm.DB
}

// NewGetCheckpointCountQueryHandler creates a handler for checkpoint count queries.
// Requires a GORM database connection for query execution.
func NewGetCheckpointCountQueryHandler(db *gorm.DB) GetCheckpointCountQueryHandler {
	return GetCheckpointCountQueryHandler{db: db}
}

// Handle executes the count query. An order with no checkpoints yields zero.
func (h GetCheckpointCountQueryHandler) Handle(
	ctx context.Context,
	query GetCheckpointCountQuery,
) (int, error) {
	if err := query.Validate(); err != nil {
		return 0, err
	}

	var count int64
	err := h.db.WithContext(ctx).Raw(`
		SELECT COUNT(*)
		FROM order_checkpoints
		WHERE tracked_order_id = ?
	`, query.TrackedOrderID().Int64()).Scan(&count).Error
	if err != nil {
		return 0, err
	}

	return int(count), nil
}
