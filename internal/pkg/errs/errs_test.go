package errs_test

import (
	"errors"
	"testing"

	"tracking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("trackedOrderId", "123")

		assert.Equal(t, "trackedOrderId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("trackedOrderId", "123", cause)

		assert.Equal(t, "trackedOrderId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: trackedOrderId, ID is: 123 (cause: database connection failed)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})
}

func TestPersistenceError(t *testing.T) {
	t.Run("NewPersistenceError", func(t *testing.T) {
		err := errs.NewPersistenceError("create TrackedOrder")

		assert.Equal(t, "create TrackedOrder", err.Operation)
		require.NoError(t, err.Cause)
		assert.Equal(t, "persistence failed: create TrackedOrder", err.Error())
		assert.Equal(t, errs.ErrPersistenceFailed, err.Unwrap())
	})

	t.Run("NewPersistenceErrorWithCause", func(t *testing.T) {
		cause := errors.New("no rows affected")
		err := errs.NewPersistenceErrorWithCause("update TrackedOrder", cause)

		assert.Equal(t, "update TrackedOrder", err.Operation)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "persistence failed: update TrackedOrder (cause: no rows affected)", err.Error())
		assert.Equal(t, errs.ErrPersistenceFailed, err.Unwrap())
	})
}

func TestInvalidOperationError(t *testing.T) {
	t.Run("NewInvalidOperationError", func(t *testing.T) {
		err := errs.NewInvalidOperationError("Cannot revert further")

		assert.Equal(t, "Cannot revert further", err.Message)
		require.NoError(t, err.Cause)
		assert.Equal(t, "invalid operation: Cannot revert further", err.Error())
		assert.Equal(t, errs.ErrInvalidOperation, err.Unwrap())
	})

	t.Run("NewInvalidOperationErrorWithCause", func(t *testing.T) {
		cause := errors.New("row locked")
		err := errs.NewInvalidOperationErrorWithCause("Failed to delete the current checkpoint", cause)

		assert.Equal(t, "Failed to delete the current checkpoint", err.Message)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"invalid operation: Failed to delete the current checkpoint (cause: row locked)",
			err.Error())
		assert.Equal(t, errs.ErrInvalidOperation, err.Unwrap())
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("order")

		assert.Equal(t, "order", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: order", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("missing required field")
		err := errs.NewValueIsRequiredErrorWithCause("order", cause)

		assert.Equal(t, "order", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: order (cause: missing required field)", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("status")

		assert.Equal(t, "status", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: status", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("invalid format")
		err := errs.NewValueIsInvalidErrorWithCause("status", cause)

		assert.Equal(t, "status", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: status (cause: invalid format)", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})
}

func TestSentinelErrors(t *testing.T) {
	t.Run("error messages match expectations", func(t *testing.T) {
		assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
		assert.Equal(t, "persistence failed", errs.ErrPersistenceFailed.Error())
		assert.Equal(t, "invalid operation", errs.ErrInvalidOperation.Error())
		assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
		assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
	})
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	t.Run("errors.Is works with custom errors", func(t *testing.T) {
		require.ErrorIs(t, errs.NewObjectNotFoundError("trackedOrderId", "123"), errs.ErrObjectNotFound)
		require.ErrorIs(t, errs.NewPersistenceError("create OrderCheckpoint"), errs.ErrPersistenceFailed)
		require.ErrorIs(t, errs.NewInvalidOperationError("Cannot revert further"), errs.ErrInvalidOperation)
		require.ErrorIs(t, errs.NewValueIsRequiredError("order"), errs.ErrValueIsRequired)
		require.ErrorIs(t, errs.NewValueIsInvalidError("status"), errs.ErrValueIsInvalid)
	})
}
