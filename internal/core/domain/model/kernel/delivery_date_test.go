package kernel_test

import (
	"testing"
	"time"

	"tracking/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDeliveryDate_DropsTimeComponent(t *testing.T) {
	d := kernel.NewDeliveryDate(time.Date(2025, 4, 15, 17, 30, 45, 123, time.Local))

	assert.Equal(t, time.Date(2025, 4, 15, 0, 0, 0, 0, time.UTC), d.Time())
	assert.Equal(t, "2025-04-15", d.String())
}

func TestNewDeliveryDate_ZeroTime(t *testing.T) {
	d := kernel.NewDeliveryDate(time.Time{})
	assert.True(t, d.IsZero())
}

func TestParseDeliveryDate(t *testing.T) {
	t.Run("valid date", func(t *testing.T) {
		d, err := kernel.ParseDeliveryDate("2025-04-15")
		require.NoError(t, err)
		assert.Equal(t, "2025-04-15", d.String())
	})

	t.Run("invalid date", func(t *testing.T) {
		_, err := kernel.ParseDeliveryDate("15/04/2025")
		require.Error(t, err)
	})
}

func TestDeliveryDate_AtTimeOfDay(t *testing.T) {
	// Date component from the delivery date, time component from "now".
	d := kernel.NewDeliveryDate(time.Date(2025, 4, 15, 0, 0, 0, 0, time.UTC))
	now := time.Date(2025, 4, 1, 9, 45, 30, 777, time.UTC)

	combined := d.AtTimeOfDay(now)

	assert.Equal(t, 2025, combined.Year())
	assert.Equal(t, time.April, combined.Month())
	assert.Equal(t, 15, combined.Day())
	assert.Equal(t, 9, combined.Hour())
	assert.Equal(t, 45, combined.Minute())
	assert.Equal(t, 30, combined.Second())
	assert.Equal(t, 777, combined.Nanosecond())
	assert.Equal(t, time.UTC, combined.Location())
}

func TestDeliveryDate_Comparisons(t *testing.T) {
	apr15 := kernel.NewDeliveryDate(time.Date(2025, 4, 15, 8, 0, 0, 0, time.UTC))
	apr15Later := kernel.NewDeliveryDate(time.Date(2025, 4, 15, 23, 0, 0, 0, time.UTC))
	apr16 := kernel.NewDeliveryDate(time.Date(2025, 4, 16, 0, 0, 0, 0, time.UTC))

	assert.True(t, apr15.IsEqual(apr15Later))
	assert.True(t, apr15.Before(apr16))
	assert.False(t, apr16.Before(apr15))
}
