package queries

import (
	"context"
	"time"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/trackedorder"

	"gorm.io/gorm"
)

// GetTrackedOrdersQueryHandler lists every tracked order from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetTrackedOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetTrackedOrdersQueryHandler creates a handler for tracked order listing.
// Requires a GORM database connection for query execution.
func NewGetTrackedOrdersQueryHandler(db *gorm.DB) GetTrackedOrdersQueryHandler {
	return GetTrackedOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve all tracked orders.
// Results are sorted by the generated id for consistent output.
func (h GetTrackedOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetTrackedOrdersQuery,
) ([]GetTrackedOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetTrackedOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			estimated_delivery_date,
			delivery_address,
			status
		FROM tracked_orders
		ORDER BY id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
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
		orders = append(orders, orderResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
