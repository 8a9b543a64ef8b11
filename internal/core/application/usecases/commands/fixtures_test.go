package commands_test

import (
	"testing"
	"time"

	"dispatch/internal/core/domain/model/batch"
	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func fixtureOrder(t *testing.T, method order.PaymentMethod, weight float64) *order.Order {
	t.Helper()
	customer, err := order.NewCustomer("Farm A", "9876543210", "12 Market Rd", "560001")
	require.NoError(t, err)
	location, err := kernel.NewGeoPoint(12.9716, 77.5946)
	require.NoError(t, err)

	o, err := order.NewOrder(kernel.NewUUID(), customer, location, nil, weight,
		decimal.NewFromInt(1500), method, "morning", time.Now())
	require.NoError(t, err)
	return o
}

func fixtureBatch(t *testing.T, orders ...*order.Order) *batch.Batch {
	t.Helper()
	center, err := kernel.NewGeoPoint(12.9716, 77.5946)
	require.NoError(t, err)
	b, err := batch.NewBatch(kernel.NewUUID(), 25, 30, center, 5, time.Now())
	require.NoError(t, err)

	for _, o := range orders {
		require.NoError(t, b.AddOrder(o.ID(), o.TotalWeight()))
		require.NoError(t, o.MarkBatched(b.ID()))
	}
	return b
}

func fixtureDriver(t *testing.T) *driver.Driver {
	t.Helper()
	location, err := kernel.NewGeoPoint(12.9716, 77.5946)
	require.NoError(t, err)
	d, err := driver.NewDriver(kernel.NewUUID(), "Ravi", "9876543210",
		"bike", "KA-01-AB-1234", location, time.Now())
	require.NoError(t, err)
	return d
}

func fixtureDelivery(t *testing.T, o *order.Order, batchID, driverID kernel.UUID) *delivery.Delivery {
	t.Helper()
	d, err := delivery.NewDelivery(kernel.NewUUID(), o.ID(), batchID, driverID,
		o.PaymentMethod(), o.TotalAmount(), time.Now())
	require.NoError(t, err)
	return d
}
