package commands

import (
	"context"
	"log/slog"
	"time"

	"tracking/internal/core/domain/model/trackedorder"
	"tracking/internal/core/ports"
)

// notifyTimeout bounds the gateway call so a slow notifier cannot stall the
// operation that triggered it.
const notifyTimeout = 5 * time.Second

// BuyerNotifier sends shipping progress notifications to the buyer of a
// tracked order. It is strictly best-effort: lookup failures, missing orders
// and gateway failures are logged and discarded, never surfaced to the
// caller. Handlers decide whether to notify; the notifier decides to whom and
// with what payload.
type BuyerNotifier struct {
	orders  ports.OrderLookup
	gateway ports.NotificationGateway
	timeout time.Duration
	logger  *slog.Logger
}

// NewBuyerNotifier creates a notifier over the given lookup and gateway.
func NewBuyerNotifier(
	orders ports.OrderLookup,
	gateway ports.NotificationGateway,
	logger *slog.Logger,
) *BuyerNotifier {
	return &BuyerNotifier{
		orders:  orders,
		gateway: gateway,
		timeout: notifyTimeout,
		logger:  logger.With("component", "buyer_notifier"),
	}
}

// NotifyProgress requests a notification about the order's current status.
// The recipient is resolved through the order lookup by the external order
// reference; an unknown order means no recipient and the notification is
// skipped silently. The estimated delivery date is combined with the current
// time-of-day: date component from the order, clock component from now.
func (n *BuyerNotifier) NotifyProgress(ctx context.Context, order *trackedorder.TrackedOrder) {
	purchase, err := n.orders.GetOrderByID(ctx, order.OrderID())
	if err != nil {
		n.logger.Warn("buyer lookup failed",
			"order_id", order.OrderID().Int64(),
			"error", err)
		return
	}
	if purchase == nil {
		return
	}

	notifyCtx, cancel := context.WithTimeout(ctx, n.timeout)
	defer cancel()

	eta := order.EstimatedDeliveryDate().AtTimeOfDay(time.Now())
	err = n.gateway.SendShippingProgressNotification(
		notifyCtx, purchase.BuyerID, order.ID(), order.Status().String(), eta)
	if err != nil {
		n.logger.Warn("shipping notification failed",
			"tracked_order_id", order.ID().Int64(),
			"buyer_id", purchase.BuyerID.Int64(),
			"status", order.Status().String(),
			"error", err)
	}
}
