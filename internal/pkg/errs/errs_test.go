package errs_test

import (
	"errors"
	"testing"

	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderId", "123")

		assert.Equal(t, "orderId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("orderId", "123", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: orderId, ID is: 123 (cause: database connection failed)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("pincode")

		assert.Equal(t, "pincode", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: pincode", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("invalid format")
		err := errs.NewValueIsInvalidErrorWithCause("pincode", cause)

		assert.Equal(t, "value is invalid: pincode (cause: invalid format)", err.Error())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("latitude", 150, -90, 90)

		assert.Equal(t, "latitude", err.ParamName)
		assert.Equal(t, 150, err.Value)
		assert.Equal(t, "value is invalid: 150 is latitude, min value is -90, max value is 90", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("sanitize removes newlines", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "hello\nworld", 0, 10)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	err := errs.NewValueIsRequiredError("driver_id")

	assert.Equal(t, "value is required: driver_id", err.Error())
	assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
}

func TestConflictError(t *testing.T) {
	t.Run("carries reason and unwraps to ErrConflict", func(t *testing.T) {
		err := errs.NewConflictError(errs.ReasonDriverUnavailable, "driver d1 is on_delivery")

		assert.Equal(t, errs.ReasonDriverUnavailable, err.Reason)
		assert.Equal(t, "conflict: driver_unavailable: driver d1 is on_delivery", err.Error())
		require.ErrorIs(t, err, errs.ErrConflict)
	})

	t.Run("reason is recoverable via errors.As", func(t *testing.T) {
		var wrapped error = errs.NewConflictError(errs.ReasonAlreadyAssigned, "batch b1 has driver d2")

		var conflict *errs.ConflictError
		require.ErrorAs(t, wrapped, &conflict)
		assert.Equal(t, errs.ReasonAlreadyAssigned, conflict.Reason)
	})
}

func TestContentionError(t *testing.T) {
	err := errs.NewContentionError("batch:b1")

	assert.Equal(t, "contention: lock timeout on batch:b1", err.Error())
	require.ErrorIs(t, err, errs.ErrContention)
}
