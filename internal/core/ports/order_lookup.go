package ports

import (
	"context"

	"tracking/internal/core/domain/model/kernel"
)

// PurchaseOrder is the slice of the external order system's order that the
// tracking core needs: enough to address a notification.
type PurchaseOrder struct {
	ID      kernel.ID
	BuyerID kernel.ID
}

// OrderLookup resolves an external order reference to its buyer. It is used
// only to address notifications.
type OrderLookup interface {
	// GetOrderByID returns the purchase order, or (nil, nil) when the order
	// system knows no such order. In that case the notification is skipped
	// silently.
	GetOrderByID(ctx context.Context, orderID kernel.ID) (*PurchaseOrder, error)
}
