package order_test

import (
	"testing"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCustomer(t *testing.T) order.Customer {
	t.Helper()
	c, err := order.NewCustomer("Farm A", "9876543210", "12 Market Rd", "560001")
	require.NoError(t, err)
	return c
}

func validOrder(t *testing.T) *order.Order {
	t.Helper()
	loc, err := kernel.NewGeoPoint(12.9716, 77.5946)
	require.NoError(t, err)

	o, err := order.NewOrder(
		kernel.NewUUID(),
		validCustomer(t),
		loc,
		nil,
		12.5,
		decimal.NewFromInt(1500),
		order.PaymentCash,
		"morning",
		time.Now(),
	)
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("creates pending order", func(t *testing.T) {
		o := validOrder(t)

		assert.Equal(t, order.Pending, o.Status())
		assert.Nil(t, o.Batch())
		assert.Nil(t, o.Driver())
		assert.Equal(t, order.PaymentCash, o.PaymentMethod())
	})

	t.Run("rejects non-positive weight", func(t *testing.T) {
		loc, _ := kernel.NewGeoPoint(1, 1)
		_, err := order.NewOrder(kernel.NewUUID(), validCustomer(t), loc, nil,
			0, decimal.NewFromInt(100), order.PaymentCash, "", time.Now())
		require.Error(t, err)
	})

	t.Run("rejects negative amount", func(t *testing.T) {
		loc, _ := kernel.NewGeoPoint(1, 1)
		_, err := order.NewOrder(kernel.NewUUID(), validCustomer(t), loc, nil,
			5, decimal.NewFromInt(-1), order.PaymentCash, "", time.Now())
		require.Error(t, err)
	})

	t.Run("rejects unknown payment method", func(t *testing.T) {
		loc, _ := kernel.NewGeoPoint(1, 1)
		_, err := order.NewOrder(kernel.NewUUID(), validCustomer(t), loc, nil,
			5, decimal.NewFromInt(100), order.PaymentMethod("barter"), "", time.Now())
		require.Error(t, err)
	})

	t.Run("rejects unconstructed customer", func(t *testing.T) {
		loc, _ := kernel.NewGeoPoint(1, 1)
		_, err := order.NewOrder(kernel.NewUUID(), order.Customer{}, loc, nil,
			5, decimal.NewFromInt(100), order.PaymentCash, "", time.Now())
		require.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var o order.Order
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestOrder_Lifecycle(t *testing.T) {
	t.Run("batched order records its batch", func(t *testing.T) {
		o := validOrder(t)
		batchID := kernel.NewUUID()

		require.NoError(t, o.MarkBatched(batchID))

		assert.Equal(t, order.Batched, o.Status())
		require.NotNil(t, o.Batch())
		assert.True(t, o.Batch().IsEqual(batchID))
	})

	t.Run("assignment records the driver", func(t *testing.T) {
		o := validOrder(t)
		require.NoError(t, o.MarkBatched(kernel.NewUUID()))
		driverID := kernel.NewUUID()

		require.NoError(t, o.Assign(driverID))

		assert.Equal(t, order.Assigned, o.Status())
		require.NotNil(t, o.Driver())
		assert.True(t, o.Driver().IsEqual(driverID))
	})

	t.Run("reassignment re-points the driver before departure", func(t *testing.T) {
		o := validOrder(t)
		require.NoError(t, o.MarkBatched(kernel.NewUUID()))
		require.NoError(t, o.Assign(kernel.NewUUID()))

		replacement := kernel.NewUUID()
		require.NoError(t, o.Assign(replacement))

		assert.True(t, o.Driver().IsEqual(replacement))
	})

	t.Run("full delivery walk", func(t *testing.T) {
		o := validOrder(t)
		require.NoError(t, o.MarkBatched(kernel.NewUUID()))
		require.NoError(t, o.Assign(kernel.NewUUID()))
		require.NoError(t, o.Depart())
		require.NoError(t, o.Deliver())

		assert.Equal(t, order.Delivered, o.Status())
	})

	t.Run("delivered order is immutable", func(t *testing.T) {
		o := validOrder(t)
		require.NoError(t, o.MarkBatched(kernel.NewUUID()))
		require.NoError(t, o.Assign(kernel.NewUUID()))
		require.NoError(t, o.Depart())
		require.NoError(t, o.Deliver())

		require.Error(t, o.Cancel())
		require.Error(t, o.Depart())
	})

	t.Run("cancel from transit", func(t *testing.T) {
		o := validOrder(t)
		require.NoError(t, o.MarkBatched(kernel.NewUUID()))
		require.NoError(t, o.Assign(kernel.NewUUID()))
		require.NoError(t, o.Depart())

		require.NoError(t, o.Cancel())
		assert.Equal(t, order.Cancelled, o.Status())
	})

	t.Run("cannot batch twice", func(t *testing.T) {
		o := validOrder(t)
		require.NoError(t, o.MarkBatched(kernel.NewUUID()))
		require.Error(t, o.MarkBatched(kernel.NewUUID()))
	})
}

func TestRestoreOrder(t *testing.T) {
	loc, _ := kernel.NewGeoPoint(12.9716, 77.5946)
	batchID := kernel.NewUUID()
	driverID := kernel.NewUUID()

	t.Run("restores persisted state", func(t *testing.T) {
		o, err := order.RestoreOrder(kernel.NewUUID(), validCustomer(t), loc, nil,
			10, decimal.NewFromInt(500), order.PaymentUPI, "", order.InTransit,
			&batchID, &driverID, time.Now())

		require.NoError(t, err)
		assert.Equal(t, order.InTransit, o.Status())
		assert.True(t, o.Batch().IsEqual(batchID))
		assert.True(t, o.Driver().IsEqual(driverID))
	})

	t.Run("rejects pending order with driver", func(t *testing.T) {
		_, err := order.RestoreOrder(kernel.NewUUID(), validCustomer(t), loc, nil,
			10, decimal.NewFromInt(500), order.PaymentUPI, "", order.Pending,
			nil, &driverID, time.Now())
		require.Error(t, err)
	})

	t.Run("rejects invalid stored status", func(t *testing.T) {
		_, err := order.RestoreOrder(kernel.NewUUID(), validCustomer(t), loc, nil,
			10, decimal.NewFromInt(500), order.PaymentUPI, "", order.Status(17),
			nil, nil, time.Now())
		require.Error(t, err)
	})
}
