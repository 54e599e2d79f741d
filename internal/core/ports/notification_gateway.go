package ports

import (
	"context"
	"time"

	"tracking/internal/core/domain/model/kernel"
)

// NotificationGateway accepts requests to notify a buyer of shipping
// progress. Delivery, storage and read-state of notifications are owned by
// an external service; this core only decides whether and with what payload
// to request one. Failures of the gateway must never fail the core
// operation that triggered it; callers invoke it best-effort.
type NotificationGateway interface {
	// SendShippingProgressNotification requests a notification for buyerID
	// about trackedOrderID. statusText is the wire name of the current
	// status; estimatedDelivery carries the estimated date combined with
	// the current time-of-day.
	SendShippingProgressNotification(
		ctx context.Context,
		buyerID kernel.ID,
		trackedOrderID kernel.ID,
		statusText string,
		estimatedDelivery time.Time,
	) error
}
