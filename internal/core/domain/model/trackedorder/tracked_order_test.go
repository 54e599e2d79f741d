package trackedorder_test

import (
	"testing"
	"time"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/trackedorder"
	"tracking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDeliveryDate() kernel.DeliveryDate {
	return kernel.NewDeliveryDate(time.Date(2025, 4, 15, 0, 0, 0, 0, time.UTC))
}

func TestNewTrackedOrder(t *testing.T) {
	t.Run("valid order", func(t *testing.T) {
		order, err := trackedorder.NewTrackedOrder(
			kernel.ID(123), testDeliveryDate(), "123 Test St", trackedorder.Processing)
		require.NoError(t, err)

		assert.True(t, order.ID().IsZero())
		assert.Equal(t, kernel.ID(123), order.OrderID())
		assert.Equal(t, "123 Test St", order.DeliveryAddress())
		assert.Equal(t, trackedorder.Processing, order.Status())
		assert.True(t, testDeliveryDate().IsEqual(order.EstimatedDeliveryDate()))
		require.NoError(t, order.Validate())
	})

	t.Run("invalid order id", func(t *testing.T) {
		_, err := trackedorder.NewTrackedOrder(
			kernel.ID(0), testDeliveryDate(), "123 Test St", trackedorder.Pending)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("invalid status", func(t *testing.T) {
		_, err := trackedorder.NewTrackedOrder(
			kernel.ID(123), testDeliveryDate(), "123 Test St", trackedorder.Unknown)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("empty address is allowed", func(t *testing.T) {
		order, err := trackedorder.NewTrackedOrder(
			kernel.ID(123), kernel.DeliveryDate{}, "", trackedorder.Pending)
		require.NoError(t, err)
		assert.Empty(t, order.DeliveryAddress())
	})
}

func TestTrackedOrder_Validate(t *testing.T) {
	t.Run("zero value is not constructed", func(t *testing.T) {
		var order trackedorder.TrackedOrder
		require.ErrorIs(t, order.Validate(), trackedorder.ErrTrackedOrderIsNotConstructed)
	})

	t.Run("nil is not constructed", func(t *testing.T) {
		var order *trackedorder.TrackedOrder
		require.ErrorIs(t, order.Validate(), trackedorder.ErrTrackedOrderIsNotConstructed)
	})
}

func TestTrackedOrder_AssignID(t *testing.T) {
	t.Run("assigns once", func(t *testing.T) {
		order, err := trackedorder.NewTrackedOrder(
			kernel.ID(123), testDeliveryDate(), "123 Test St", trackedorder.Pending)
		require.NoError(t, err)

		require.NoError(t, order.AssignID(kernel.ID(101)))
		assert.Equal(t, kernel.ID(101), order.ID())
	})

	t.Run("rejects reassignment", func(t *testing.T) {
		order, err := trackedorder.NewTrackedOrder(
			kernel.ID(123), testDeliveryDate(), "123 Test St", trackedorder.Pending)
		require.NoError(t, err)
		require.NoError(t, order.AssignID(kernel.ID(101)))

		require.ErrorIs(t, order.AssignID(kernel.ID(102)), trackedorder.ErrIDAlreadyAssigned)
		assert.Equal(t, kernel.ID(101), order.ID())
	})

	t.Run("rejects invalid generated identity", func(t *testing.T) {
		order, err := trackedorder.NewTrackedOrder(
			kernel.ID(123), testDeliveryDate(), "123 Test St", trackedorder.Pending)
		require.NoError(t, err)

		require.ErrorIs(t, order.AssignID(kernel.ID(0)), errs.ErrValueIsInvalid)
		require.ErrorIs(t, order.AssignID(kernel.ID(-1)), errs.ErrValueIsInvalid)
	})
}

func TestRestoreTrackedOrder(t *testing.T) {
	order, err := trackedorder.RestoreTrackedOrder(
		kernel.ID(101), kernel.ID(123), testDeliveryDate(), "123 Test St", trackedorder.Shipped)
	require.NoError(t, err)

	assert.Equal(t, kernel.ID(101), order.ID())
	assert.Equal(t, trackedorder.Shipped, order.Status())
}

func TestTrackedOrder_SyncStatus(t *testing.T) {
	order, err := trackedorder.RestoreTrackedOrder(
		kernel.ID(101), kernel.ID(123), testDeliveryDate(), "123 Test St", trackedorder.Delivered)
	require.NoError(t, err)

	// Any status may follow any other: no transition ordering is enforced.
	require.NoError(t, order.SyncStatus(trackedorder.Pending))
	assert.Equal(t, trackedorder.Pending, order.Status())

	require.ErrorIs(t, order.SyncStatus(trackedorder.Unknown), errs.ErrValueIsInvalid)
	assert.Equal(t, trackedorder.Pending, order.Status())
}

func TestTrackedOrder_IsEqual(t *testing.T) {
	a, _ := trackedorder.RestoreTrackedOrder(
		kernel.ID(101), kernel.ID(123), testDeliveryDate(), "a", trackedorder.Pending)
	b, _ := trackedorder.RestoreTrackedOrder(
		kernel.ID(101), kernel.ID(456), testDeliveryDate(), "b", trackedorder.Shipped)
	c, _ := trackedorder.RestoreTrackedOrder(
		kernel.ID(102), kernel.ID(123), testDeliveryDate(), "c", trackedorder.Pending)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
	assert.False(t, a.IsEqual(nil))
}
