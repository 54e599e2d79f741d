// Package checkpointrepo provides the GORM-backed Checkpoint Ledger.
// It implements the repository pattern for checkpoint entities, handling the
// conversion between domain entities and database rows.
package checkpointrepo

import (
	"time"

	"tracking/internal/core/domain/model/checkpoint"
	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/trackedorder"
)

// CheckpointDTO represents the database structure for checkpoints. The
// primary key doubles as the insertion order of the ledger; Location is
// nullable in the schema and maps to an empty string in the domain.
type CheckpointDTO struct {
	ID             int64     `gorm:"primaryKey;autoIncrement"`
	TrackedOrderID int64     `gorm:"index;not null"`
	Timestamp      time.Time
	Location       *string
	Description    string
	Status         int
}

// TableName specifies the database table name for checkpoints.
func (CheckpointDTO) TableName() string {
	return "order_checkpoints"
}

// fromDomain converts a checkpoint entity to its database representation.
func fromDomain(cp *checkpoint.Checkpoint) CheckpointDTO {
	return CheckpointDTO{
		ID:             cp.ID().Int64(),
		TrackedOrderID: cp.TrackedOrderID().Int64(),
		Timestamp:      cp.Timestamp(),
		Location:       locationToColumn(cp.Location()),
		Description:    cp.Description(),
		Status:         int(cp.Status()),
	}
}

// toDomain converts a database row to a checkpoint entity.
func toDomain(dto CheckpointDTO) (*checkpoint.Checkpoint, error) {
	location := ""
	if dto.Location != nil {
		location = *dto.Location
	}

	return checkpoint.RestoreCheckpoint(
		kernel.ID(dto.ID),
		kernel.ID(dto.TrackedOrderID),
		dto.Timestamp,
		location,
		dto.Description,
		trackedorder.Status(dto.Status),
	)
}

// locationToColumn maps an empty location to SQL NULL.
func locationToColumn(location string) *string {
	if location == "" {
		return nil
	}
	return &location
}
