// Package trackedorder provides the TrackedOrder aggregate: the mutable
// current-status projection of a purchased order's physical fulfillment.
//
// The package includes:
//   - TrackedOrder: the aggregate root holding identity, the external order
//     reference, the estimated delivery date, the delivery address, and the
//     current status
//   - Status: the open enumeration of fulfillment lifecycle states
//
// Key rules:
//   - A tracked order is constructed without an identity; the store assigns
//     one exactly once on creation via AssignID
//   - CurrentStatus always mirrors the status most recently written to a
//     checkpoint or to the order itself; the synchronization is performed by
//     the application layer, not by this package
//   - Status transitions are deliberately unconstrained: callers may record
//     checkpoints of any status in any order, and nothing here privileges a
//     status as terminal
package trackedorder
