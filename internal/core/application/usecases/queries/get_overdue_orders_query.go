package queries

import (
	"errors"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/pkg/errs"
	"tracking/internal/pkg/guard"
)

var ErrGetOverdueOrdersQueryIsNotConstructed = errors.New(
	"GetOverdueOrdersQuery must be created via NewGetOverdueOrdersQuery constructor",
)

// GetOverdueOrdersQuery retrieves tracked orders whose estimated delivery
// date has passed without the order reaching a final status. The reference
// date is explicit so callers and tests control what "today" means.
//
// Example:
//
//	query, err := NewGetOverdueOrdersQuery(kernel.NewDeliveryDate(time.Now()))
//	if err != nil {
//	    return err
//	}
//
//	overdue, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get overdue orders: %w", err)
//	}
type GetOverdueOrdersQuery struct { //nolint:recvcheck //using for validation
	asOf kernel.DeliveryDate

	guard guard.ConstructorGuard
}

// NewGetOverdueOrdersQuery creates an overdue query relative to asOf.
func NewGetOverdueOrdersQuery(asOf kernel.DeliveryDate) (GetOverdueOrdersQuery, error) {
	query := GetOverdueOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setAsOf(asOf); err != nil {
		return GetOverdueOrdersQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOverdueOrdersQueryIsNotConstructed if validation fails.
func (q GetOverdueOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOverdueOrdersQueryIsNotConstructed)
}

// AsOf returns the reference date orders are compared against.
func (q GetOverdueOrdersQuery) AsOf() kernel.DeliveryDate {
	return q.asOf
}

func (q *GetOverdueOrdersQuery) setAsOf(asOf kernel.DeliveryDate) error {
	if asOf.IsZero() {
		return errs.NewValueIsRequiredError("asOf")
	}

	q.asOf = asOf
	return nil
}
