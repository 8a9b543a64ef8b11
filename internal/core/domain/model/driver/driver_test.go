package driver_test

import (
	"testing"
	"time"

	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDriver(t *testing.T) *driver.Driver {
	t.Helper()
	loc, err := kernel.NewGeoPoint(12.9716, 77.5946)
	require.NoError(t, err)

	d, err := driver.NewDriver(kernel.NewUUID(), "Ravi", "9876543210",
		"bike", "KA-01-AB-1234", loc, time.Now())
	require.NoError(t, err)
	return d
}

func TestNewDriver(t *testing.T) {
	t.Run("creates available driver", func(t *testing.T) {
		d := validDriver(t)

		assert.Equal(t, driver.Available, d.Status())
		assert.True(t, d.IsAvailable())
	})

	t.Run("rejects empty name", func(t *testing.T) {
		loc, _ := kernel.NewGeoPoint(1, 1)
		_, err := driver.NewDriver(kernel.NewUUID(), "", "9876543210",
			"bike", "KA-01-AB-1234", loc, time.Now())

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects empty vehicle number", func(t *testing.T) {
		loc, _ := kernel.NewGeoPoint(1, 1)
		_, err := driver.NewDriver(kernel.NewUUID(), "Ravi", "9876543210",
			"bike", "  ", loc, time.Now())

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestDriverAvailability(t *testing.T) {
	t.Run("available driver starts delivery", func(t *testing.T) {
		d := validDriver(t)

		require.NoError(t, d.StartDelivery())

		assert.Equal(t, driver.OnDelivery, d.Status())
		assert.False(t, d.IsAvailable())
	})

	t.Run("busy driver cannot start another delivery", func(t *testing.T) {
		d := validDriver(t)
		require.NoError(t, d.StartDelivery())

		err := d.StartDelivery()

		var conflictErr *errs.ConflictError
		require.ErrorAs(t, err, &conflictErr)
		assert.Equal(t, errs.ReasonDriverUnavailable, conflictErr.Reason)
	})

	t.Run("finishing delivery frees the driver", func(t *testing.T) {
		d := validDriver(t)
		require.NoError(t, d.StartDelivery())

		require.NoError(t, d.FinishDelivery())

		assert.True(t, d.IsAvailable())
	})

	t.Run("idle driver cannot finish a delivery", func(t *testing.T) {
		d := validDriver(t)

		assert.Error(t, d.FinishDelivery())
	})

	t.Run("driver on delivery cannot go offline", func(t *testing.T) {
		d := validDriver(t)
		require.NoError(t, d.StartDelivery())

		assert.Error(t, d.GoOffline())
	})

	t.Run("offline driver comes back online", func(t *testing.T) {
		d := validDriver(t)
		require.NoError(t, d.GoOffline())
		require.NoError(t, d.GoOnline())

		assert.True(t, d.IsAvailable())
	})

	t.Run("offline driver cannot start delivery", func(t *testing.T) {
		d := validDriver(t)
		require.NoError(t, d.GoOffline())

		err := d.StartDelivery()

		var conflictErr *errs.ConflictError
		require.ErrorAs(t, err, &conflictErr)
		assert.Equal(t, errs.ReasonDriverUnavailable, conflictErr.Reason)
	})
}

func TestDriverMoveTo(t *testing.T) {
	t.Run("records position and timestamp", func(t *testing.T) {
		d := validDriver(t)
		loc, err := kernel.NewGeoPoint(13.0, 77.6)
		require.NoError(t, err)
		at := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

		require.NoError(t, d.MoveTo(loc, at))

		assert.True(t, d.Location().IsEqual(loc))
		assert.Equal(t, at, d.LastSeenAt())
	})
}

func TestStatusFromString(t *testing.T) {
	t.Run("parses known statuses", func(t *testing.T) {
		s, err := driver.StatusFromString("on_delivery")
		require.NoError(t, err)
		assert.Equal(t, driver.OnDelivery, s)
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		_, err := driver.StatusFromString("sleeping")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
