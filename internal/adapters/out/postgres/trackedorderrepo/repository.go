package trackedorderrepo

import (
	"context"
	"errors"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/trackedorder"
	"tracking/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormTrackedOrderRepository implements ports.TrackedOrderRepository using GORM.
type GormTrackedOrderRepository struct {
	db *gorm.DB
}

// NewGormTrackedOrderRepository creates a new GORM tracked order repository.
func NewGormTrackedOrderRepository(db *gorm.DB) *GormTrackedOrderRepository {
	return &GormTrackedOrderRepository{db: db}
}

// Create saves a new tracked order and assigns the generated identity onto
// the aggregate. A generated identity ≤ 0 or a write affecting zero rows is
// a fatal creation failure.
func (r *GormTrackedOrderRepository) Create(
	ctx context.Context, aggregate *trackedorder.TrackedOrder,
) (kernel.ID, error) {
	if err := aggregate.Validate(); err != nil {
		return 0, err
	}

	dto := fromDomain(aggregate)
	dto.ID = 0 // let the database generate the identity

	result := r.db.WithContext(ctx).Create(&dto)
	if result.Error != nil {
		return 0, errs.NewPersistenceErrorWithCause("create TrackedOrder", result.Error)
	}
	if result.RowsAffected == 0 {
		return 0, errs.NewPersistenceError("create TrackedOrder: no rows affected")
	}

	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return 0, errs.NewPersistenceErrorWithCause("create TrackedOrder: invalid generated identity", err)
	}

	if err := aggregate.AssignID(id); err != nil {
		return 0, err
	}
	return id, nil
}

// Get retrieves a tracked order by identity.
func (r *GormTrackedOrderRepository) Get(
	ctx context.Context, id kernel.ID,
) (*trackedorder.TrackedOrder, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto TrackedOrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Int64()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("trackedOrder", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves every tracked order.
func (r *GormTrackedOrderRepository) GetAll(ctx context.Context) ([]*trackedorder.TrackedOrder, error) {
	var dtos []TrackedOrderDTO
	if err := r.db.WithContext(ctx).Order("id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	orders := make([]*trackedorder.TrackedOrder, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}

// Update replaces the estimated delivery date and status of an existing row.
// Updating a nonexistent id fails with a PersistenceError.
func (r *GormTrackedOrderRepository) Update(
	ctx context.Context,
	id kernel.ID,
	estimatedDeliveryDate kernel.DeliveryDate,
	status trackedorder.Status,
) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if err := status.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&TrackedOrderDTO{}).
		Where("id = ?", id.Int64()).
		Updates(map[string]any{
			"estimated_delivery_date": estimatedDeliveryDate.Time(),
			"status":                  int(status),
		})
	if result.Error != nil {
		return errs.NewPersistenceErrorWithCause("update TrackedOrder", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewPersistenceErrorWithCause("update TrackedOrder", gorm.ErrRecordNotFound)
	}

	return nil
}

// Delete removes a tracked order, reporting whether exactly one row was removed.
func (r *GormTrackedOrderRepository) Delete(ctx context.Context, id kernel.ID) (bool, error) {
	if err := id.Validate(); err != nil {
		return false, err
	}

	result := r.db.WithContext(ctx).Delete(&TrackedOrderDTO{}, "id = ?", id.Int64())
	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected == 1, nil
}
