// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, sequential persistence
// steps, and a best-effort notification side effect where the operation
// requires one.
//
// The handlers here are the orchestration core: they compose the checkpoint
// ledger and the tracked order store so that the order's current status always
// mirrors the checkpoint most recently written or edited. The persistence
// steps of one operation are deliberately not wrapped in a transaction;
// concurrent writers to the same tracked order may interleave unless a real
// Locker is configured.
package commands

import (
	"tracking/internal/core/domain/model/kernel"
)

// Locker serializes mutating operations per tracked order. Handlers acquire
// the lock for the order they touch before the first persistence step and
// release it after the last. The default implementation is a no-op; a keyed
// mutex can be plugged in as an opt-in strengthening.
type Locker interface {
	Lock(id kernel.ID)
	Unlock(id kernel.ID)
}
