package kernel_test

import (
	"testing"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewID(t *testing.T) {
	t.Run("positive value is valid", func(t *testing.T) {
		id, err := kernel.NewID(101)
		require.NoError(t, err)
		assert.Equal(t, int64(101), id.Int64())
		assert.Equal(t, "101", id.String())
		assert.False(t, id.IsZero())
	})

	t.Run("zero generated identity is a creation failure", func(t *testing.T) {
		_, err := kernel.NewID(0)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("negative generated identity is a creation failure", func(t *testing.T) {
		_, err := kernel.NewID(-7)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestID_Validate(t *testing.T) {
	var unassigned kernel.ID
	require.Error(t, unassigned.Validate())
	assert.True(t, unassigned.IsZero())

	id := kernel.ID(42)
	require.NoError(t, id.Validate())
}
