package commands_test

import (
	"context"
	"io"
	"log/slog"
	"time"

	"tracking/internal/core/application/usecases/commands"
	"tracking/internal/core/domain/model/checkpoint"
	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/trackedorder"
	"tracking/internal/core/ports"
	"tracking/internal/pkg/orderlock"

	"github.com/stretchr/testify/mock"
)

func noopLocker() commands.Locker {
	return orderlock.NewNoop[kernel.ID]()
}

type MockTrackedOrderRepository struct{ mock.Mock }

func (m *MockTrackedOrderRepository) Create(
	ctx context.Context, order *trackedorder.TrackedOrder,
) (kernel.ID, error) {
	args := m.Called(ctx, order)
	return args.Get(0).(kernel.ID), args.Error(1)
}

func (m *MockTrackedOrderRepository) Get(
	ctx context.Context, id kernel.ID,
) (*trackedorder.TrackedOrder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trackedorder.TrackedOrder), args.Error(1)
}

func (m *MockTrackedOrderRepository) GetAll(ctx context.Context) ([]*trackedorder.TrackedOrder, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*trackedorder.TrackedOrder), args.Error(1)
}

func (m *MockTrackedOrderRepository) Update(
	ctx context.Context,
	id kernel.ID,
	estimatedDeliveryDate kernel.DeliveryDate,
	status trackedorder.Status,
) error {
	args := m.Called(ctx, id, estimatedDeliveryDate, status)
	return args.Error(0)
}

func (m *MockTrackedOrderRepository) Delete(ctx context.Context, id kernel.ID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type MockCheckpointRepository struct{ mock.Mock }

func (m *MockCheckpointRepository) Create(
	ctx context.Context, cp *checkpoint.Checkpoint,
) (kernel.ID, error) {
	args := m.Called(ctx, cp)
	return args.Get(0).(kernel.ID), args.Error(1)
}

func (m *MockCheckpointRepository) Get(
	ctx context.Context, id kernel.ID,
) (*checkpoint.Checkpoint, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*checkpoint.Checkpoint), args.Error(1)
}

func (m *MockCheckpointRepository) GetAllForOrder(
	ctx context.Context, trackedOrderID kernel.ID,
) ([]*checkpoint.Checkpoint, error) {
	args := m.Called(ctx, trackedOrderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*checkpoint.Checkpoint), args.Error(1)
}

func (m *MockCheckpointRepository) Update(
	ctx context.Context,
	id kernel.ID,
	timestamp time.Time,
	location string,
	description string,
	status trackedorder.Status,
) error {
	args := m.Called(ctx, id, timestamp, location, description, status)
	return args.Error(0)
}

func (m *MockCheckpointRepository) Delete(ctx context.Context, id kernel.ID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type MockOrderLookup struct{ mock.Mock }

func (m *MockOrderLookup) GetOrderByID(
	ctx context.Context, orderID kernel.ID,
) (*ports.PurchaseOrder, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ports.PurchaseOrder), args.Error(1)
}

type MockNotificationGateway struct{ mock.Mock }

func (m *MockNotificationGateway) SendShippingProgressNotification(
	ctx context.Context,
	buyerID kernel.ID,
	trackedOrderID kernel.ID,
	statusText string,
	estimatedDelivery time.Time,
) error {
	args := m.Called(ctx, buyerID, trackedOrderID, statusText, estimatedDelivery)
	return args.Error(0)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestNotifier builds a real notifier over mocked collaborators so tests
// can assert whether and how the gateway was invoked.
func newTestNotifier(lookup *MockOrderLookup, gateway *MockNotificationGateway) *commands.BuyerNotifier {
	return commands.NewBuyerNotifier(lookup, gateway, discardLogger())
}

func mustID(value int64) kernel.ID {
	id, err := kernel.NewID(value)
	if err != nil {
		panic(err)
	}
	return id
}

func restoredOrder(
	id, orderID int64, status trackedorder.Status,
) *trackedorder.TrackedOrder {
	eta := kernel.NewDeliveryDate(time.Date(2025, 4, 15, 0, 0, 0, 0, time.UTC))
	order, err := trackedorder.RestoreTrackedOrder(
		mustID(id), mustID(orderID), eta, "123 Test St", status)
	if err != nil {
		panic(err)
	}
	return order
}

func restoredCheckpoint(
	id, trackedOrderID int64, timestamp time.Time, status trackedorder.Status,
) *checkpoint.Checkpoint {
	cp, err := checkpoint.RestoreCheckpoint(
		mustID(id), mustID(trackedOrderID), timestamp, "Distribution Center", "scan", status)
	if err != nil {
		panic(err)
	}
	return cp
}
