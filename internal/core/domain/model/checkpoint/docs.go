// Package checkpoint provides the OrderCheckpoint entity: one observation of
// fulfillment progress (time, place, description, status) for a tracked
// order.
//
// Checkpoints form an append-only history per tracked order. They are
// immutable once written except through an explicit correction (update) and
// are removed only by the revert operation or administrative deletion. The
// ledger preserves insertion order; "latest" for reversion purposes is
// derived from timestamps by the application layer, not by this package.
package checkpoint
