package trackedorder

import (
	"errors"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/pkg/errs"
)

var (
	// ErrTrackedOrderIsNotConstructed is returned when a TrackedOrder instance was
	// not created through NewTrackedOrder or RestoreTrackedOrder.
	ErrTrackedOrderIsNotConstructed = errors.New(
		"TrackedOrder must be created via NewTrackedOrder or RestoreTrackedOrder",
	)

	// ErrIDAlreadyAssigned is returned when AssignID is called on an order that
	// already carries a store-generated identity.
	ErrIDAlreadyAssigned = errors.New("TrackedOrder identity is immutable once assigned")
)

// TrackedOrder is the mutable current-status projection for a single
// purchased order's fulfillment. It is the aggregate root of the tracking
// domain.
//
// TrackedOrder follows these invariants:
//   - OrderID references a purchase managed by an external collaborator and
//     is immutable
//   - The identity is assigned by the store exactly once on creation
//   - Once at least one checkpoint exists, CurrentStatus equals the status of
//     the checkpoint most recently written or edited (enforced by the
//     application layer)
//
// The struct uses private fields to ensure encapsulation; instances are
// created through NewTrackedOrder (before persistence) or
// RestoreTrackedOrder (rehydration from persistence).
type TrackedOrder struct {
	// id is the store-generated identity (zero until assigned)
	id kernel.ID

	// orderID references the purchased order in the external order system
	orderID kernel.ID

	// estimatedDeliveryDate is the expected delivery calendar date
	estimatedDeliveryDate kernel.DeliveryDate

	// deliveryAddress is the free-text destination
	deliveryAddress string

	// currentStatus mirrors the most recently written checkpoint status
	currentStatus Status

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewTrackedOrder creates a TrackedOrder for a purchase that is not tracked
// yet. The identity is left unassigned; the store assigns it on creation.
//
// Parameters:
//   - orderID: reference to the purchased order (must be a valid identity)
//   - estimatedDeliveryDate: expected delivery date (may be zero)
//   - deliveryAddress: free-text destination
//   - status: the initial fulfillment status (must be a valid Status)
//
// Returns a validation error if orderID or status is invalid.
func NewTrackedOrder(
	orderID kernel.ID,
	estimatedDeliveryDate kernel.DeliveryDate,
	deliveryAddress string,
	status Status,
) (*TrackedOrder, error) {
	order := &TrackedOrder{
		isConstructed: true,
	}

	if err := errors.Join(
		order.setOrderID(orderID),
		order.setStatus(status),
	); err != nil {
		return nil, err
	}

	order.estimatedDeliveryDate = estimatedDeliveryDate
	order.deliveryAddress = deliveryAddress
	return order, nil
}

// RestoreTrackedOrder reconstructs a TrackedOrder from persistence. Unlike
// NewTrackedOrder it requires an already assigned identity.
func RestoreTrackedOrder(
	id kernel.ID,
	orderID kernel.ID,
	estimatedDeliveryDate kernel.DeliveryDate,
	deliveryAddress string,
	status Status,
) (*TrackedOrder, error) {
	order, err := NewTrackedOrder(orderID, estimatedDeliveryDate, deliveryAddress, status)
	if err != nil {
		return nil, err
	}

	if err := order.AssignID(id); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the TrackedOrder instance was properly constructed.
// Returns ErrTrackedOrderIsNotConstructed for zero-value instances.
func (o *TrackedOrder) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrTrackedOrderIsNotConstructed
	}
	return nil
}

// AssignID sets the store-generated identity. It may be called exactly once;
// an invalid identity (zero or negative) is rejected because the store treats
// it as a failed creation, not as "ID zero".
func (o *TrackedOrder) AssignID(id kernel.ID) error {
	if !o.id.IsZero() {
		return ErrIDAlreadyAssigned
	}
	if err := id.Validate(); err != nil {
		return err
	}

	o.id = id
	return nil
}

// ID returns the store-generated identity (zero if not persisted yet).
func (o *TrackedOrder) ID() kernel.ID {
	return o.id
}

// OrderID returns the external purchased-order reference.
func (o *TrackedOrder) OrderID() kernel.ID {
	return o.orderID
}

// EstimatedDeliveryDate returns the expected delivery calendar date.
func (o *TrackedOrder) EstimatedDeliveryDate() kernel.DeliveryDate {
	return o.estimatedDeliveryDate
}

// DeliveryAddress returns the free-text destination.
func (o *TrackedOrder) DeliveryAddress() string {
	return o.deliveryAddress
}

// Status returns the current fulfillment status.
func (o *TrackedOrder) Status() Status {
	return o.currentStatus
}

// IsEqual compares two tracked orders by identity.
func (o *TrackedOrder) IsEqual(other *TrackedOrder) bool {
	return other != nil && !o.id.IsZero() && o.id == other.id
}

// Reschedule replaces the estimated delivery date.
func (o *TrackedOrder) Reschedule(estimatedDeliveryDate kernel.DeliveryDate) {
	o.estimatedDeliveryDate = estimatedDeliveryDate
}

// SyncStatus replaces the current status with the status most recently
// written to a checkpoint. No transition rules apply: the last write wins,
// whatever the previous status was.
func (o *TrackedOrder) SyncStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	o.currentStatus = status
	return nil
}

func (o *TrackedOrder) setOrderID(orderID kernel.ID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("orderID", err)
	}
	o.orderID = orderID
	return nil
}

func (o *TrackedOrder) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.currentStatus = status
	return nil
}
