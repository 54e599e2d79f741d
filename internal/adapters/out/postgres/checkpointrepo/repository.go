package checkpointrepo

import (
	"context"
	"errors"
	"time"

	"tracking/internal/core/domain/model/checkpoint"
	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/trackedorder"
	"tracking/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCheckpointRepository implements ports.CheckpointRepository using GORM.
type GormCheckpointRepository struct {
	db *gorm.DB
}

// NewGormCheckpointRepository creates a new GORM checkpoint repository.
func NewGormCheckpointRepository(db *gorm.DB) *GormCheckpointRepository {
	return &GormCheckpointRepository{db: db}
}

// Create saves a new checkpoint and assigns the generated identity onto the
// entity. Same creation-failure semantics as the tracked order store.
func (r *GormCheckpointRepository) Create(
	ctx context.Context, entity *checkpoint.Checkpoint,
) (kernel.ID, error) {
	if err := entity.Validate(); err != nil {
		return 0, err
	}

	dto := fromDomain(entity)
	dto.ID = 0 // let the database generate the identity

	result := r.db.WithContext(ctx).Create(&dto)
	if result.Error != nil {
		return 0, errs.NewPersistenceErrorWithCause("create OrderCheckpoint", result.Error)
	}
	if result.RowsAffected == 0 {
		return 0, errs.NewPersistenceError("create OrderCheckpoint: no rows affected")
	}

	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return 0, errs.NewPersistenceErrorWithCause("create OrderCheckpoint: invalid generated identity", err)
	}

	if err := entity.AssignID(id); err != nil {
		return 0, err
	}
	return id, nil
}

// Get retrieves a checkpoint by identity.
func (r *GormCheckpointRepository) Get(
	ctx context.Context, id kernel.ID,
) (*checkpoint.Checkpoint, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CheckpointDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Int64()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("checkpoint", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllForOrder retrieves every checkpoint of a tracked order in insertion
// order. Rows are ordered by generated identity, never re-sorted by
// timestamp: callers can author checkpoints with timestamps out of
// chronological order and the ledger preserves the sequence they were
// written in.
func (r *GormCheckpointRepository) GetAllForOrder(
	ctx context.Context, trackedOrderID kernel.ID,
) ([]*checkpoint.Checkpoint, error) {
	if err := trackedOrderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []CheckpointDTO
	err := r.db.WithContext(ctx).
		Order("id").
		Find(&dtos, "tracked_order_id = ?", trackedOrderID.Int64()).Error
	if err != nil {
		return nil, err
	}

	checkpoints := make([]*checkpoint.Checkpoint, 0, len(dtos))
	for _, dto := range dtos {
		cp, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		checkpoints = append(checkpoints, cp)
	}

	return checkpoints, nil
}

// Update replaces all mutable fields of a checkpoint; an empty location is
// stored as NULL. Updating a nonexistent id fails with a PersistenceError.
func (r *GormCheckpointRepository) Update(
	ctx context.Context,
	id kernel.ID,
	timestamp time.Time,
	location string,
	description string,
	status trackedorder.Status,
) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if err := status.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&CheckpointDTO{}).
		Where("id = ?", id.Int64()).
		Updates(map[string]any{
			"timestamp":   timestamp,
			"location":    locationToColumn(location),
			"description": description,
			"status":      int(status),
		})
	if result.Error != nil {
		return errs.NewPersistenceErrorWithCause("update OrderCheckpoint", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewPersistenceErrorWithCause("update OrderCheckpoint", gorm.ErrRecordNotFound)
	}

	return nil
}

// Delete removes a checkpoint, reporting whether exactly one row was removed.
func (r *GormCheckpointRepository) Delete(ctx context.Context, id kernel.ID) (bool, error) {
	if err := id.Validate(); err != nil {
		return false, err
	}

	result := r.db.WithContext(ctx).Delete(&CheckpointDTO{}, "id = ?", id.Int64())
	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected == 1, nil
}
