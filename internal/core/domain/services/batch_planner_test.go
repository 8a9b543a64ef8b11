package services_test

import (
	"fmt"
	"testing"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/services"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testOrder(t *testing.T, pincode string, lat, lng, weight float64, createdAt time.Time) *order.Order {
	t.Helper()
	c, err := order.NewCustomer("Farm", "9876543210", "12 Market Rd", pincode)
	require.NoError(t, err)
	loc, err := kernel.NewGeoPoint(lat, lng)
	require.NoError(t, err)

	o, err := order.NewOrder(kernel.NewUUID(), c, loc, nil, weight,
		decimal.NewFromInt(1000), order.PaymentCash, "morning", createdAt)
	require.NoError(t, err)
	return o
}

func TestBatchPlannerPlan(t *testing.T) {
	planner := services.NewBatchPlanner()
	base := time.Date(2025, 6, 1, 6, 0, 0, 0, time.UTC)

	t.Run("empty order set yields empty plan", func(t *testing.T) {
		plan, err := planner.Plan(nil, services.AlgorithmKMeans, 25, 30)

		require.NoError(t, err)
		assert.Empty(t, plan.Proposals)
		assert.Empty(t, plan.Unbatchable)
	})

	t.Run("rejects unknown algorithm", func(t *testing.T) {
		_, err := planner.Plan(nil, services.Algorithm("voronoi"), 25, 30)
		require.Error(t, err)
	})

	t.Run("splits one pincode by weight capacity", func(t *testing.T) {
		weights := []float64{10, 8, 12, 5}
		orders := make([]*order.Order, 0, len(weights))
		for i, w := range weights {
			orders = append(orders, testOrder(t, "560001", 12.97, 77.59, w,
				base.Add(time.Duration(i)*time.Minute)))
		}

		plan, err := planner.Plan(orders, services.AlgorithmPincode, 25, 30)

		require.NoError(t, err)
		require.Len(t, plan.Proposals, 2)
		assert.Empty(t, plan.Unbatchable)

		assert.InDelta(t, 23.0, plan.Proposals[0].Weight, 1e-9)
		assert.Len(t, plan.Proposals[0].OrderIDs, 3)
		assert.InDelta(t, 12.0, plan.Proposals[1].Weight, 1e-9)
		assert.Len(t, plan.Proposals[1].OrderIDs, 1)
	})

	t.Run("respects order count capacity", func(t *testing.T) {
		orders := make([]*order.Order, 0, 5)
		for i := 0; i < 5; i++ {
			orders = append(orders, testOrder(t, "560001", 12.97, 77.59, 1,
				base.Add(time.Duration(i)*time.Minute)))
		}

		plan, err := planner.Plan(orders, services.AlgorithmPincode, 100, 2)

		require.NoError(t, err)
		require.Len(t, plan.Proposals, 3)
		for _, proposal := range plan.Proposals {
			assert.LessOrEqual(t, len(proposal.OrderIDs), 2)
		}
	})

	t.Run("reports overweight orders as unbatchable", func(t *testing.T) {
		orders := []*order.Order{
			testOrder(t, "560001", 12.97, 77.59, 30, base),
			testOrder(t, "560001", 12.97, 77.59, 10, base.Add(time.Minute)),
		}

		plan, err := planner.Plan(orders, services.AlgorithmKMeans, 25, 30)

		require.NoError(t, err)
		require.Len(t, plan.Unbatchable, 1)
		assert.True(t, plan.Unbatchable[0].OrderID.IsEqual(orders[0].ID()))
		require.Len(t, plan.Proposals, 1)
		require.Len(t, plan.Proposals[0].OrderIDs, 1)
	})

	t.Run("pincode clustering keeps pincodes apart", func(t *testing.T) {
		orders := []*order.Order{
			testOrder(t, "560002", 12.97, 77.59, 5, base),
			testOrder(t, "560001", 13.01, 77.62, 5, base.Add(time.Minute)),
			testOrder(t, "560002", 12.98, 77.60, 5, base.Add(2*time.Minute)),
		}

		plan, err := planner.Plan(orders, services.AlgorithmPincode, 25, 30)

		require.NoError(t, err)
		require.Len(t, plan.Proposals, 2)
		// Pincodes sort ascending, so 560001 packs first.
		assert.Len(t, plan.Proposals[0].OrderIDs, 1)
		assert.Len(t, plan.Proposals[1].OrderIDs, 2)
	})

	t.Run("kmeans separates distant neighborhoods", func(t *testing.T) {
		orders := []*order.Order{
			testOrder(t, "560001", 12.9700, 77.5900, 5, base),
			testOrder(t, "560001", 12.9710, 77.5910, 5, base.Add(time.Minute)),
			testOrder(t, "560068", 13.2000, 77.8000, 5, base.Add(2*time.Minute)),
			testOrder(t, "560068", 13.2010, 77.8010, 5, base.Add(3*time.Minute)),
		}

		plan, err := planner.Plan(orders, services.AlgorithmKMeans, 25, 30)

		require.NoError(t, err)
		require.Len(t, plan.Proposals, 2)
		assert.Len(t, plan.Proposals[0].OrderIDs, 2)
		assert.Len(t, plan.Proposals[1].OrderIDs, 2)
	})

	t.Run("same input produces the same plan", func(t *testing.T) {
		orders := make([]*order.Order, 0, 12)
		for i := 0; i < 12; i++ {
			orders = append(orders, testOrder(t,
				fmt.Sprintf("5600%02d", i%3),
				12.9+float64(i)*0.01, 77.5+float64(i%4)*0.02,
				3+float64(i%5),
				base.Add(time.Duration(i)*time.Minute)))
		}

		first, err := planner.Plan(orders, services.AlgorithmKMeans, 25, 30)
		require.NoError(t, err)
		second, err := planner.Plan(orders, services.AlgorithmKMeans, 25, 30)
		require.NoError(t, err)

		require.Len(t, second.Proposals, len(first.Proposals))
		for i := range first.Proposals {
			require.Len(t, second.Proposals[i].OrderIDs, len(first.Proposals[i].OrderIDs))
			for j := range first.Proposals[i].OrderIDs {
				assert.True(t, first.Proposals[i].OrderIDs[j].IsEqual(second.Proposals[i].OrderIDs[j]))
			}
		}
	})

	t.Run("proposal carries center and route estimate", func(t *testing.T) {
		orders := []*order.Order{
			testOrder(t, "560001", 12.96, 77.58, 5, base),
			testOrder(t, "560001", 12.98, 77.60, 5, base.Add(time.Minute)),
		}

		plan, err := planner.Plan(orders, services.AlgorithmKMeans, 25, 30)

		require.NoError(t, err)
		require.Len(t, plan.Proposals, 1)
		proposal := plan.Proposals[0]
		assert.InDelta(t, 12.97, proposal.Center.Lat(), 1e-9)
		assert.InDelta(t, 77.59, proposal.Center.Lng(), 1e-9)
		assert.Greater(t, proposal.EstimatedKm, 0.0)
	})
}

func TestEstimateRouteKm(t *testing.T) {
	t.Run("no stops means zero distance", func(t *testing.T) {
		start, err := kernel.NewGeoPoint(12.97, 77.59)
		require.NoError(t, err)

		assert.Zero(t, services.EstimateRouteKm(start, nil))
	})

	t.Run("visits nearest stop first", func(t *testing.T) {
		start, err := kernel.NewGeoPoint(0, 0)
		require.NoError(t, err)
		near, err := kernel.NewGeoPoint(0, 0.01)
		require.NoError(t, err)
		far, err := kernel.NewGeoPoint(0, 0.05)
		require.NoError(t, err)

		greedy := services.EstimateRouteKm(start, []kernel.GeoPoint{far, near})
		direct := start.DistanceKm(near) + near.DistanceKm(far)

		assert.InDelta(t, direct, greedy, 1e-9)
	})
}

func TestCenterOf(t *testing.T) {
	t.Run("averages coordinates", func(t *testing.T) {
		a, err := kernel.NewGeoPoint(10, 20)
		require.NoError(t, err)
		b, err := kernel.NewGeoPoint(20, 40)
		require.NoError(t, err)

		center, err := services.CenterOf([]kernel.GeoPoint{a, b})

		require.NoError(t, err)
		assert.InDelta(t, 15, center.Lat(), 1e-9)
		assert.InDelta(t, 30, center.Lng(), 1e-9)
	})

	t.Run("rejects empty input", func(t *testing.T) {
		_, err := services.CenterOf(nil)
		require.Error(t, err)
	})
}
