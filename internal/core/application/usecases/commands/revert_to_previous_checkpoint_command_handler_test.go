package commands_test

import (
	"errors"
	"testing"
	"time"

	"tracking/internal/core/application/usecases/commands"
	"tracking/internal/core/domain/model/checkpoint"
	"tracking/internal/core/domain/model/trackedorder"
	"tracking/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newRevertHandler(
	ledger *MockCheckpointRepository,
	orders *MockTrackedOrderRepository,
	lookup *MockOrderLookup,
	gateway *MockNotificationGateway,
) commands.RevertToPreviousCheckpointCommandHandler {
	notifier := newTestNotifier(lookup, gateway)
	updateOrder := commands.NewUpdateTrackedOrderCommandHandler(orders, notifier, noopLocker())
	return commands.NewRevertToPreviousCheckpointCommandHandler(ledger, orders, updateOrder, noopLocker())
}

func TestRevertToPreviousCheckpointCommandHandler_Handle_DeletesLatestAndRestoresStatus(t *testing.T) {
	ctx := t.Context()

	cmd, err := commands.NewRevertToPreviousCheckpointCommand(mustID(101))
	require.NoError(t, err)

	earlier := time.Date(2025, 4, 10, 12, 0, 0, 0, time.UTC)
	later := time.Date(2025, 4, 12, 9, 0, 0, 0, time.UTC)
	first := restoredCheckpoint(42, 101, earlier, trackedorder.Processing)
	second := restoredCheckpoint(43, 101, later, trackedorder.Shipped)

	ledger := new(MockCheckpointRepository)
	orderRepo := new(MockTrackedOrderRepository)
	lookup := new(MockOrderLookup)
	gateway := new(MockNotificationGateway)

	mock.InOrder(
		ledger.On("GetAllForOrder", ctx, mustID(101)).
			Return([]*checkpoint.Checkpoint{first, second}, nil).Once(),
		ledger.On("Delete", ctx, mustID(43)).Return(true, nil).Once(),
		ledger.On("GetAllForOrder", ctx, mustID(101)).
			Return([]*checkpoint.Checkpoint{first}, nil).Once(),
		orderRepo.On("Get", ctx, mustID(101)).
			Return(restoredOrder(101, 123, trackedorder.Shipped), nil).Once(),
		orderRepo.On("Update", ctx, mustID(101), testETA(), trackedorder.Processing).
			Return(nil).Once(),
		orderRepo.On("Get", ctx, mustID(101)).
			Return(restoredOrder(101, 123, trackedorder.Processing), nil).Once(),
	)

	handler := newRevertHandler(ledger, orderRepo, lookup, gateway)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	ledger.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	// The restored status is PROCESSING, so reverting fires no notification
	gateway.AssertNotCalled(t, "SendShippingProgressNotification",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestRevertToPreviousCheckpointCommandHandler_Handle_TiedTimestamps_DeletesLaterInserted(t *testing.T) {
	ctx := t.Context()

	cmd, err := commands.NewRevertToPreviousCheckpointCommand(mustID(101))
	require.NoError(t, err)

	ts := time.Date(2025, 4, 10, 12, 0, 0, 0, time.UTC)
	first := restoredCheckpoint(42, 101, ts, trackedorder.Processing)
	second := restoredCheckpoint(43, 101, ts, trackedorder.Shipped)

	ledger := new(MockCheckpointRepository)
	orderRepo := new(MockTrackedOrderRepository)

	ledger.On("GetAllForOrder", ctx, mustID(101)).
		Return([]*checkpoint.Checkpoint{first, second}, nil).Once()
	ledger.On("Delete", ctx, mustID(43)).Return(true, nil).Once()
	ledger.On("GetAllForOrder", ctx, mustID(101)).
		Return([]*checkpoint.Checkpoint{first}, nil).Once()
	orderRepo.On("Get", ctx, mustID(101)).
		Return(restoredOrder(101, 123, trackedorder.Shipped), nil).Once()
	orderRepo.On("Update", ctx, mustID(101), testETA(), trackedorder.Processing).
		Return(nil).Once()
	orderRepo.On("Get", ctx, mustID(101)).
		Return(restoredOrder(101, 123, trackedorder.Processing), nil).Once()

	handler := newRevertHandler(ledger, orderRepo, new(MockOrderLookup), new(MockNotificationGateway))
	require.NoError(t, handler.Handle(ctx, cmd))
	ledger.AssertExpectations(t)
}

func TestRevertToPreviousCheckpointCommandHandler_Handle_SingleCheckpoint_Blocked(t *testing.T) {
	ctx := t.Context()

	cmd, err := commands.NewRevertToPreviousCheckpointCommand(mustID(101))
	require.NoError(t, err)

	only := restoredCheckpoint(42, 101, time.Now(), trackedorder.Processing)

	ledger := new(MockCheckpointRepository)
	ledger.On("GetAllForOrder", ctx, mustID(101)).
		Return([]*checkpoint.Checkpoint{only}, nil).Once()

	handler := newRevertHandler(
		ledger, new(MockTrackedOrderRepository), new(MockOrderLookup), new(MockNotificationGateway))
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrInvalidOperation)
	require.Contains(t, err.Error(), "Cannot revert further")
	// The floor violation mutates nothing
	ledger.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestRevertToPreviousCheckpointCommandHandler_Handle_NoCheckpoints_Blocked(t *testing.T) {
	ctx := t.Context()

	cmd, err := commands.NewRevertToPreviousCheckpointCommand(mustID(101))
	require.NoError(t, err)

	ledger := new(MockCheckpointRepository)
	ledger.On("GetAllForOrder", ctx, mustID(101)).
		Return([]*checkpoint.Checkpoint{}, nil).Once()

	handler := newRevertHandler(
		ledger, new(MockTrackedOrderRepository), new(MockOrderLookup), new(MockNotificationGateway))
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrInvalidOperation)
	require.Contains(t, err.Error(), "Cannot revert further")
	ledger.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestRevertToPreviousCheckpointCommandHandler_Handle_DeleteReportsFalse_Fails(t *testing.T) {
	ctx := t.Context()

	cmd, err := commands.NewRevertToPreviousCheckpointCommand(mustID(101))
	require.NoError(t, err)

	earlier := time.Date(2025, 4, 10, 12, 0, 0, 0, time.UTC)
	later := time.Date(2025, 4, 12, 9, 0, 0, 0, time.UTC)
	first := restoredCheckpoint(42, 101, earlier, trackedorder.Processing)
	second := restoredCheckpoint(43, 101, later, trackedorder.Shipped)

	ledger := new(MockCheckpointRepository)
	orderRepo := new(MockTrackedOrderRepository)

	ledger.On("GetAllForOrder", ctx, mustID(101)).
		Return([]*checkpoint.Checkpoint{first, second}, nil).Once()
	ledger.On("Delete", ctx, mustID(43)).Return(false, nil).Once()

	handler := newRevertHandler(ledger, orderRepo, new(MockOrderLookup), new(MockNotificationGateway))
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrInvalidOperation)
	require.Contains(t, err.Error(), "Failed to delete the current checkpoint")
	orderRepo.AssertNotCalled(t, "Update",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestRevertToPreviousCheckpointCommandHandler_Handle_LedgerError_Propagates(t *testing.T) {
	ctx := t.Context()

	cmd, err := commands.NewRevertToPreviousCheckpointCommand(mustID(101))
	require.NoError(t, err)

	ledger := new(MockCheckpointRepository)
	cause := errors.New("database error")
	ledger.On("GetAllForOrder", ctx, mustID(101)).Return(nil, cause).Once()

	handler := newRevertHandler(
		ledger, new(MockTrackedOrderRepository), new(MockOrderLookup), new(MockNotificationGateway))
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, cause)
}

func TestRevertToPreviousCheckpointCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.RevertToPreviousCheckpointCommand{} // not constructed properly

	ledger := new(MockCheckpointRepository)
	handler := newRevertHandler(
		ledger, new(MockTrackedOrderRepository), new(MockOrderLookup), new(MockNotificationGateway))
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrRevertToPreviousCheckpointCommandIsNotConstructed)
	ledger.AssertNotCalled(t, "GetAllForOrder", mock.Anything, mock.Anything)
}
