package queries

import (
	"context"
	"time"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/trackedorder"
	"tracking/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetTrackedOrderQueryHandler fetches one tracked order read model.
type GetTrackedOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetTrackedOrderQueryHandler creates a handler for single order queries.
// Requires a GORM database connection for query execution.
func NewGetTrackedOrderQueryHandler(db *gorm.DB) GetTrackedOrderQueryHandler {
	return GetTrackedOrderQueryHandler{db: db}
}

// Handle executes the query for one tracked order.
// Returns an ObjectNotFoundError when no such order exists.
func (h GetTrackedOrderQueryHandler) Handle(
	ctx context.Context,
	query GetTrackedOrderQuery,
) (*GetTrackedOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			estimated_delivery_date,
			delivery_address,
			status
		FROM tracked_orders
		WHERE id = ?
	`, query.TrackedOrderID().Int64()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return nil, err
		}
		return nil, errs.NewObjectNotFoundError("trackedOrder", query.TrackedOrderID().String())
	}

	var orderResp GetTrackedOrdersQueryResponse
	var id, orderID int64
	var estimatedDeliveryDate time.Time
	var status int

	err = rows.Scan(
		&id,
		&orderID,
		&estimatedDeliveryDate,
		&orderResp.DeliveryAddress,
		&status,
	)
	if err != nil {
		return nil, err
	}

	trackedOrderID, idErr := kernel.NewID(id)
	if idErr != nil {
		return nil, idErr
	}
	orderResp.ID = trackedOrderID

	purchaseOrderID, idErr := kernel.NewID(orderID)
	if idErr != nil {
		return nil, idErr
	}
	orderResp.OrderID = purchaseOrderID

	orderResp.EstimatedDeliveryDate = kernel.NewDeliveryDate(estimatedDeliveryDate)
	orderResp.Status = trackedorder.Status(status)

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return &orderResp, nil
}
