// Package jobs provides scheduled background tasks for the tracking service.
//
// Jobs are cron-based (github.com/robfig/cron/v3) and strictly read-only:
// all tracked order mutation happens through explicit operator requests, so
// the only job reports on state instead of changing it.
package jobs

import (
	"context"
	"log/slog"
	"time"

	"tracking/internal/core/application/usecases/queries"
	"tracking/internal/core/domain/model/kernel"

	"github.com/robfig/cron/v3"
)

// OverdueOrdersJob periodically reports tracked orders that missed their
// estimated delivery date. It only logs; chasing late shipments is an
// operator concern.
type OverdueOrdersJob struct {
	handler queries.GetOverdueOrdersQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOverdueOrdersJob creates the hourly overdue order report job.
func NewOverdueOrdersJob(handler queries.GetOverdueOrdersQueryHandler, logger *slog.Logger) *OverdueOrdersJob {
	return &OverdueOrdersJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "overdue_orders_job"),
	}
}

// Start begins the overdue order report job to run every hour.
func (j *OverdueOrdersJob) Start() error {
	_, err := j.cron.AddFunc("0 0 * * * *", j.run)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Overdue orders job started (running every hour)")
	return nil
}

// Stop stops the overdue order report job.
func (j *OverdueOrdersJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Overdue orders job stopped")
}

func (j *OverdueOrdersJob) run() {
	ctx := context.Background()

	query, err := queries.NewGetOverdueOrdersQuery(kernel.NewDeliveryDate(time.Now()))
	if err != nil {
		j.logger.ErrorContext(ctx, "Overdue orders job failed to build query", "error", err)
		return
	}

	overdue, err := j.handler.Handle(ctx, query)
	if err != nil {
		j.logger.ErrorContext(ctx, "Overdue orders job failed", "error", err)
		return
	}

	if len(overdue) == 0 {
		j.logger.DebugContext(ctx, "No overdue orders")
		return
	}

	for _, order := range overdue {
		j.logger.WarnContext(ctx, "Tracked order is overdue",
			"tracked_order_id", order.ID.Int64(),
			"order_id", order.OrderID.Int64(),
			"estimated_delivery_date", order.EstimatedDeliveryDate.String(),
			"status", order.Status.String())
	}
	j.logger.InfoContext(ctx, "Overdue orders report completed", "overdue_count", len(overdue))
}
