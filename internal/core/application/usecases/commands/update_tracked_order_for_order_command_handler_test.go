package commands_test

import (
	"errors"
	"testing"

	"tracking/internal/core/application/usecases/commands"
	"tracking/internal/core/domain/model/trackedorder"
	"tracking/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUpdateTrackedOrderForOrderCommandHandler_Handle_Match_Succeeds(t *testing.T) {
	ctx := t.Context()

	cmd, err := commands.NewUpdateTrackedOrderForOrderCommand(
		mustID(101), mustID(123), testETA(), "456 Oak Avenue", trackedorder.Shipped)
	require.NoError(t, err)

	orderRepo := new(MockTrackedOrderRepository)
	lookup := new(MockOrderLookup)
	gateway := new(MockNotificationGateway)

	mock.InOrder(
		orderRepo.On("Update", ctx, mustID(101), testETA(), trackedorder.Shipped).Return(nil).Once(),
		orderRepo.On("Get", ctx, mustID(101)).
			Return(restoredOrder(101, 123, trackedorder.Shipped), nil).Once(),
		lookup.On("GetOrderByID", ctx, mustID(123)).
			Return(&ports.PurchaseOrder{ID: mustID(123), BuyerID: mustID(77)}, nil).Once(),
		gateway.On("SendShippingProgressNotification",
			mock.Anything, mustID(77), mustID(101), "SHIPPED", mock.AnythingOfType("time.Time")).
			Return(nil).Once(),
	)

	handler := commands.NewUpdateTrackedOrderForOrderCommandHandler(
		orderRepo, newTestNotifier(lookup, gateway), noopLocker())
	ok := handler.Handle(ctx, cmd)

	require.True(t, ok)
	orderRepo.AssertExpectations(t)
	gateway.AssertExpectations(t)
}

func TestUpdateTrackedOrderForOrderCommandHandler_Handle_Mismatch_ReturnsFalseNoNotification(t *testing.T) {
	ctx := t.Context()

	cmd, err := commands.NewUpdateTrackedOrderForOrderCommand(
		mustID(101), mustID(999), testETA(), "", trackedorder.Shipped)
	require.NoError(t, err)

	orderRepo := new(MockTrackedOrderRepository)
	lookup := new(MockOrderLookup)
	gateway := new(MockNotificationGateway)

	// Tracked order 101 refers to purchase order 123, not 999
	orderRepo.On("Update", ctx, mustID(101), testETA(), trackedorder.Shipped).Return(nil).Once()
	orderRepo.On("Get", ctx, mustID(101)).
		Return(restoredOrder(101, 123, trackedorder.Shipped), nil).Once()

	handler := commands.NewUpdateTrackedOrderForOrderCommandHandler(
		orderRepo, newTestNotifier(lookup, gateway), noopLocker())
	ok := handler.Handle(ctx, cmd)

	require.False(t, ok)
	gateway.AssertNotCalled(t, "SendShippingProgressNotification",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateTrackedOrderForOrderCommandHandler_Handle_UpdateError_ReturnsFalse(t *testing.T) {
	ctx := t.Context()

	cmd, err := commands.NewUpdateTrackedOrderForOrderCommand(
		mustID(101), mustID(123), testETA(), "", trackedorder.Processing)
	require.NoError(t, err)

	orderRepo := new(MockTrackedOrderRepository)
	orderRepo.On("Update", ctx, mustID(101), testETA(), trackedorder.Processing).
		Return(errors.New("record not found")).Once()

	handler := commands.NewUpdateTrackedOrderForOrderCommandHandler(
		orderRepo, newTestNotifier(new(MockOrderLookup), new(MockNotificationGateway)), noopLocker())

	require.False(t, handler.Handle(ctx, cmd))
}

func TestUpdateTrackedOrderForOrderCommandHandler_Handle_ValidationError_ReturnsFalse(t *testing.T) {
	ctx := t.Context()
	cmd := commands.UpdateTrackedOrderForOrderCommand{} // not constructed properly

	orderRepo := new(MockTrackedOrderRepository)
	handler := commands.NewUpdateTrackedOrderForOrderCommandHandler(
		orderRepo, newTestNotifier(new(MockOrderLookup), new(MockNotificationGateway)), noopLocker())

	require.False(t, handler.Handle(ctx, cmd))
	orderRepo.AssertNotCalled(t, "Update",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
