package trackedorder_test

import (
	"testing"

	"tracking/internal/core/domain/model/trackedorder"
	"tracking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_String(t *testing.T) {
	cases := map[trackedorder.Status]string{
		trackedorder.Unknown:        "UNKNOWN",
		trackedorder.Pending:        "PENDING",
		trackedorder.Processing:     "PROCESSING",
		trackedorder.Shipped:        "SHIPPED",
		trackedorder.OutForDelivery: "OUT_FOR_DELIVERY",
		trackedorder.Delivered:      "DELIVERED",
		trackedorder.Cancelled:      "CANCELLED",
	}

	for status, expected := range cases {
		assert.Equal(t, expected, status.String())
	}

	assert.Equal(t, "UNKNOWN", trackedorder.Status(99).String())
}

func TestStatus_Validate(t *testing.T) {
	valid := []trackedorder.Status{
		trackedorder.Pending,
		trackedorder.Processing,
		trackedorder.Shipped,
		trackedorder.OutForDelivery,
		trackedorder.Delivered,
		trackedorder.Cancelled,
	}
	for _, status := range valid {
		require.NoError(t, status.Validate())
	}

	require.ErrorIs(t, trackedorder.Unknown.Validate(), errs.ErrValueIsInvalid)
	require.ErrorIs(t, trackedorder.Status(99).Validate(), errs.ErrValueIsInvalid)
}

func TestStatus_IsShippingProgress(t *testing.T) {
	assert.True(t, trackedorder.Shipped.IsShippingProgress())
	assert.True(t, trackedorder.OutForDelivery.IsShippingProgress())

	assert.False(t, trackedorder.Pending.IsShippingProgress())
	assert.False(t, trackedorder.Processing.IsShippingProgress())
	assert.False(t, trackedorder.Delivered.IsShippingProgress())
	assert.False(t, trackedorder.Cancelled.IsShippingProgress())
	assert.False(t, trackedorder.Unknown.IsShippingProgress())
}

func TestStatusFromString(t *testing.T) {
	t.Run("round trips all valid statuses", func(t *testing.T) {
		for _, status := range []trackedorder.Status{
			trackedorder.Pending,
			trackedorder.Processing,
			trackedorder.Shipped,
			trackedorder.OutForDelivery,
			trackedorder.Delivered,
			trackedorder.Cancelled,
		} {
			parsed, err := trackedorder.StatusFromString(status.String())
			require.NoError(t, err)
			assert.Equal(t, status, parsed)
		}
	})

	t.Run("rejects unknown names", func(t *testing.T) {
		_, err := trackedorder.StatusFromString("LOST_IN_TRANSIT")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)

		_, err = trackedorder.StatusFromString("UNKNOWN")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
