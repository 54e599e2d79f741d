package queries

import (
	"context"
	"time"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/trackedorder"

	"gorm.io/gorm"
)

// GetOverdueOrdersQueryHandler finds tracked orders that missed their
// estimated delivery date. Delivered and cancelled orders are never overdue,
// and orders without an estimate are excluded.
type GetOverdueOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOverdueOrdersQueryHandler creates a handler for overdue order queries.
// Requires a GORM database connection for query execution.
func NewGetOverdueOrdersQueryHandler(db *gorm.DB) GetOverdueOrdersQueryHandler {
	return GetOverdueOrdersQueryHandler{db: db}
}

// Handle executes the overdue query relative to the query's reference date.
// Results are sorted by estimated date so the longest overdue come first.
func (h GetOverdueOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOverdueOrdersQuery,
) ([]GetTrackedOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetTrackedOrdersQueryResponse, 0)

	// A zero date means no estimate was recorded; such orders cannot be late.
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			estimated_delivery_date,
			delivery_address,
			status
		FROM tracked_orders
		WHERE estimated_delivery_date < ?
		  AND estimated_delivery_date > '0001-01-01'
		  AND status NOT IN (?, ?)
		ORDER BY estimated_delivery_date, id
	`, query.AsOf().Time(), int(trackedorder.Delivered), int(trackedorder.Cancelled)).Rows()
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
