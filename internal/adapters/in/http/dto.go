package http

import (
	"time"

	"tracking/internal/core/application/usecases/queries"
	"tracking/internal/core/domain/model/kernel"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Error is the JSON error envelope returned by every failing endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Created reports the identity generated for a newly created resource.
type Created struct {
	ID int64 `json:"id"`
}

// NewTrackedOrder is the request body for starting to track a purchase.
type NewTrackedOrder struct {
	OrderID               int64               `json:"order_id"`
	EstimatedDeliveryDate *openapi_types.Date `json:"estimated_delivery_date,omitempty"`
	DeliveryAddress       string              `json:"delivery_address"`
	Status                string              `json:"status"`
}

// UpdateTrackedOrder is the request body for editing an order's projection.
type UpdateTrackedOrder struct {
	EstimatedDeliveryDate *openapi_types.Date `json:"estimated_delivery_date,omitempty"`
	Status                string              `json:"status"`
}

// TrackedOrder is the response representation of a tracked order.
type TrackedOrder struct {
	ID                    int64               `json:"id"`
	OrderID               int64               `json:"order_id"`
	EstimatedDeliveryDate *openapi_types.Date `json:"estimated_delivery_date,omitempty"`
	DeliveryAddress       string              `json:"delivery_address"`
	Status                string              `json:"status"`
}

// UpdateTrackedOrderForOrder is the request body for the purchase-guarded
// update; the purchase reference comes from the path, not the body.
type UpdateTrackedOrderForOrder struct {
	EstimatedDeliveryDate *openapi_types.Date `json:"estimated_delivery_date,omitempty"`
	DeliveryAddress       string              `json:"delivery_address"`
	Status                string              `json:"status"`
}

// NewCheckpoint is the request body for recording or editing a checkpoint.
type NewCheckpoint struct {
	Timestamp   time.Time `json:"timestamp"`
	Location    string    `json:"location,omitempty"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
}

// Checkpoint is the response representation of one checkpoint.
type Checkpoint struct {
	ID             int64     `json:"id"`
	TrackedOrderID int64     `json:"tracked_order_id"`
	Timestamp      time.Time `json:"timestamp"`
	Location       string    `json:"location,omitempty"`
	Description    string    `json:"description"`
	Status         string    `json:"status"`
}

// CheckpointCount reports how many checkpoints an order has.
type CheckpointCount struct {
	Count int `json:"count"`
}

func dateFromDeliveryDate(d kernel.DeliveryDate) *openapi_types.Date {
	if d.IsZero() {
		return nil
	}
	return &openapi_types.Date{Time: d.Time()}
}

func deliveryDateFromDate(d *openapi_types.Date) kernel.DeliveryDate {
	if d == nil {
		return kernel.DeliveryDate{}
	}
	return kernel.NewDeliveryDate(d.Time)
}

func trackedOrderFromReadModel(order queries.GetTrackedOrdersQueryResponse) TrackedOrder {
	return TrackedOrder{
		ID:                    order.ID.Int64(),
		OrderID:               order.OrderID.Int64(),
		EstimatedDeliveryDate: dateFromDeliveryDate(order.EstimatedDeliveryDate),
		DeliveryAddress:       order.DeliveryAddress,
		Status:                order.Status.String(),
	}
}

func checkpointFromHistoryModel(cp queries.GetCheckpointHistoryQueryResponse) Checkpoint {
	return Checkpoint{
		ID:             cp.ID.Int64(),
		TrackedOrderID: cp.TrackedOrderID.Int64(),
		Timestamp:      cp.Timestamp,
		Location:       cp.Location,
		Description:    cp.Description,
		Status:         cp.Status.String(),
	}
}

func checkpointFromLastModel(cp queries.GetLastCheckpointQueryResponse) Checkpoint {
	return Checkpoint{
		ID:             cp.ID.Int64(),
		TrackedOrderID: cp.TrackedOrderID.Int64(),
		Timestamp:      cp.Timestamp,
		Location:       cp.Location,
		Description:    cp.Description,
		Status:         cp.Status.String(),
	}
}
