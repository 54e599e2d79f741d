// Package trackedorderrepo provides the GORM-backed Tracked Order Store.
// It implements the repository pattern for the tracked order aggregate,
// handling the conversion between domain entities and database rows.
package trackedorderrepo

import (
	"time"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/trackedorder"
)

// TrackedOrderDTO represents the database structure for tracked orders.
// The primary key is generated by the database; the external order reference
// is indexed for lookups by purchase.
type TrackedOrderDTO struct {
	ID                    int64     `gorm:"primaryKey;autoIncrement"`
	OrderID               int64     `gorm:"index;not null"`
	EstimatedDeliveryDate time.Time `gorm:"type:date"`
	DeliveryAddress       string
	Status                int
}

// TableName specifies the database table name for tracked orders.
func (TrackedOrderDTO) TableName() string {
	return "tracked_orders"
}

// fromDomain converts a tracked order aggregate to its database representation.
func fromDomain(order *trackedorder.TrackedOrder) TrackedOrderDTO {
	return TrackedOrderDTO{
		ID:                    order.ID().Int64(),
		OrderID:               order.OrderID().Int64(),
		EstimatedDeliveryDate: order.EstimatedDeliveryDate().Time(),
		DeliveryAddress:       order.DeliveryAddress(),
		Status:                int(order.Status()),
	}
}

// toDomain converts a database row to a tracked order aggregate.
func toDomain(dto TrackedOrderDTO) (*trackedorder.TrackedOrder, error) {
	return trackedorder.RestoreTrackedOrder(
		kernel.ID(dto.ID),
		kernel.ID(dto.OrderID),
		kernel.NewDeliveryDate(dto.EstimatedDeliveryDate),
		dto.DeliveryAddress,
		trackedorder.Status(dto.Status),
	)
}
