package checkpoint

import (
	"errors"
	"time"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/trackedorder"
	"tracking/internal/pkg/errs"
)

var (
	// ErrCheckpointIsNotConstructed is returned when a Checkpoint instance was
	// not created through NewCheckpoint or RestoreCheckpoint.
	ErrCheckpointIsNotConstructed = errors.New(
		"Checkpoint must be created via NewCheckpoint or RestoreCheckpoint",
	)

	// ErrIDAlreadyAssigned is returned when AssignID is called on a checkpoint
	// that already carries a ledger-generated identity.
	ErrIDAlreadyAssigned = errors.New("Checkpoint identity is immutable once assigned")
)

// Checkpoint is a single status observation for a tracked order.
//
// Invariants:
//   - TrackedOrderID references the owning tracked order and is immutable
//   - The identity is assigned by the ledger exactly once on creation
//   - Timestamp is never auto-advanced; it changes only through an explicit
//     update and callers may author timestamps out of chronological order
type Checkpoint struct {
	// id is the ledger-generated identity (zero until assigned)
	id kernel.ID

	// trackedOrderID references the owning tracked order
	trackedOrderID kernel.ID

	// timestamp is the point in time the observation represents
	timestamp time.Time

	// location is free text; empty means no location was recorded
	location string

	// description is free text
	description string

	// status is the observed fulfillment status
	status trackedorder.Status

	// isConstructed ensures the checkpoint was created via a constructor
	isConstructed bool
}

// NewCheckpoint creates a checkpoint that has not been written to the ledger
// yet. The identity is left unassigned; the ledger assigns it on creation.
func NewCheckpoint(
	trackedOrderID kernel.ID,
	timestamp time.Time,
	location string,
	description string,
	status trackedorder.Status,
) (*Checkpoint, error) {
	cp := &Checkpoint{
		isConstructed: true,
	}

	if err := errors.Join(
		cp.setTrackedOrderID(trackedOrderID),
		cp.setStatus(status),
	); err != nil {
		return nil, err
	}

	cp.timestamp = timestamp
	cp.location = location
	cp.description = description
	return cp, nil
}

// RestoreCheckpoint reconstructs a checkpoint from persistence. Unlike
// NewCheckpoint it requires an already assigned identity.
func RestoreCheckpoint(
	id kernel.ID,
	trackedOrderID kernel.ID,
	timestamp time.Time,
	location string,
	description string,
	status trackedorder.Status,
) (*Checkpoint, error) {
	cp, err := NewCheckpoint(trackedOrderID, timestamp, location, description, status)
	if err != nil {
		return nil, err
	}

	if err := cp.AssignID(id); err != nil {
		return nil, err
	}

	return cp, nil
}

// Validate ensures the Checkpoint instance was properly constructed.
func (c *Checkpoint) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCheckpointIsNotConstructed
	}
	return nil
}

// AssignID sets the ledger-generated identity. It may be called exactly
// once; zero or negative identities are rejected as failed creations.
func (c *Checkpoint) AssignID(id kernel.ID) error {
	if !c.id.IsZero() {
		return ErrIDAlreadyAssigned
	}
	if err := id.Validate(); err != nil {
		return err
	}

	c.id = id
	return nil
}

// ID returns the ledger-generated identity (zero if not persisted yet).
func (c *Checkpoint) ID() kernel.ID {
	return c.id
}

// TrackedOrderID returns the owning tracked order's identity.
func (c *Checkpoint) TrackedOrderID() kernel.ID {
	return c.trackedOrderID
}

// Timestamp returns the point in time the observation represents.
func (c *Checkpoint) Timestamp() time.Time {
	return c.timestamp
}

// Location returns the free-text location; empty if none was recorded.
func (c *Checkpoint) Location() string {
	return c.location
}

// Description returns the free-text description.
func (c *Checkpoint) Description() string {
	return c.description
}

// Status returns the observed fulfillment status.
func (c *Checkpoint) Status() trackedorder.Status {
	return c.status
}

// IsEqual compares two checkpoints by identity.
func (c *Checkpoint) IsEqual(other *Checkpoint) bool {
	return other != nil && !c.id.IsZero() && c.id == other.id
}

func (c *Checkpoint) setTrackedOrderID(trackedOrderID kernel.ID) error {
	if err := trackedOrderID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("trackedOrderID", err)
	}
	c.trackedOrderID = trackedOrderID
	return nil
}

func (c *Checkpoint) setStatus(status trackedorder.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	c.status = status
	return nil
}
