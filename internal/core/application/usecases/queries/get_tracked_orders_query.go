package queries

import (
	"errors"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/trackedorder"
	"tracking/internal/pkg/guard"
)

var ErrGetTrackedOrdersQueryIsNotConstructed = errors.New(
	"GetTrackedOrdersQuery must be created via NewGetTrackedOrdersQuery constructor",
)

// GetTrackedOrdersQuery retrieves every tracked order with its current
// projection state.
//
// Example:
//
//	query := NewGetTrackedOrdersQuery()
//	handler := NewGetTrackedOrdersQueryHandler(db)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list tracked orders: %w", err)
//	}
//
//	fmt.Printf("Tracking %d orders\n", len(orders))
type GetTrackedOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetTrackedOrdersQuery creates a query to list all tracked orders.
// This is a parameterless query.
func NewGetTrackedOrdersQuery() GetTrackedOrdersQuery {
	return GetTrackedOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetTrackedOrdersQueryIsNotConstructed if validation fails.
func (q GetTrackedOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetTrackedOrdersQueryIsNotConstructed)
}

// GetTrackedOrdersQueryResponse represents a tracked order read model.
type GetTrackedOrdersQueryResponse struct {
	ID                    kernel.ID
	OrderID               kernel.ID
	EstimatedDeliveryDate kernel.DeliveryDate
	DeliveryAddress       string
	Status                trackedorder.Status
}
