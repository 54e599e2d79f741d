package trackedorder

import (
	"fmt"

	"tracking/internal/pkg/errs"
)

// Status represents a fulfillment lifecycle state of a tracked order.
//
// The set is open and deliberately unordered: no transition rules are
// enforced, no status is structurally terminal, and checkpoints may be
// recorded in any status sequence. The only status-dependent behavior in the
// system is the notification gate: buyers are notified of shipping progress
// when an order reaches Shipped or OutForDelivery.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the state before fulfillment work has started.
	Pending

	// Processing indicates the order is being prepared for shipment.
	Processing

	// Shipped indicates the order has left the warehouse.
	Shipped

	// OutForDelivery indicates the order is on the last leg to the buyer.
	OutForDelivery

	// Delivered indicates the order reached the buyer.
	Delivered

	// Cancelled indicates fulfillment was abandoned.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "UNKNOWN",
		Pending:        "PENDING",
		Processing:     "PROCESSING",
		Shipped:        "SHIPPED",
		OutForDelivery: "OUT_FOR_DELIVERY",
		Delivered:      "DELIVERED",
		Cancelled:      "CANCELLED",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:        "PENDING",
		Processing:     "PROCESSING",
		Shipped:        "SHIPPED",
		OutForDelivery: "OUT_FOR_DELIVERY",
		Delivered:      "DELIVERED",
		Cancelled:      "CANCELLED",
	}
}

// Validate checks if the Status value is a member of the enumeration.
// Unknown (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status, e.g. "OUT_FOR_DELIVERY".
// This is the text handed to the notification gateway. Invalid values
// render as "UNKNOWN".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsShippingProgress reports whether the status triggers a buyer
// notification: Shipped and OutForDelivery do, every other status does not.
func (s Status) IsShippingProgress() bool {
	return s == Shipped || s == OutForDelivery
}

// StatusFromString parses a wire name back into a Status.
// Returns an error for names outside the enumeration.
func StatusFromString(name string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == name {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status name", name))
}
