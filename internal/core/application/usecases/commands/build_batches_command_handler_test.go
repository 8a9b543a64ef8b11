package commands_test

import (
	"testing"
	"time"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func pendingOrder(t *testing.T, weight float64, createdAt time.Time) *order.Order {
	t.Helper()
	customer, err := order.NewCustomer("Farm A", "9876543210", "12 Market Rd", "560001")
	require.NoError(t, err)
	location, err := kernel.NewGeoPoint(12.9716, 77.5946)
	require.NoError(t, err)

	o, err := order.NewOrder(kernel.NewUUID(), customer, location, nil, weight,
		decimal.NewFromInt(1500), order.PaymentCash, "morning", createdAt)
	require.NoError(t, err)
	return o
}

func TestBuildBatchesCommandHandler_Handle_SplitsByWeight(t *testing.T) {
	ctx := t.Context()

	base := time.Now()
	pending := []*order.Order{
		pendingOrder(t, 10, base),
		pendingOrder(t, 8, base.Add(time.Second)),
		pendingOrder(t, 12, base.Add(2*time.Second)),
		pendingOrder(t, 5, base.Add(3*time.Second)),
	}

	cmd, err := commands.NewBuildBatchesCommand("pincode", 25, 30)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	batchRepo := new(MockBatchRepository)
	trackingRepo := new(MockTrackingRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("BatchRepository").Return(batchRepo)
	uow.On("TrackingRepository").Return(trackingRepo)

	orderRepo.On("GetAllPending", ctx).Return(pending, nil).Once()
	orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Times(4)
	trackingRepo.On("AddEvent", ctx, mock.AnythingOfType("*tracking.Event")).Return(nil).Times(4)
	batchRepo.On("Add", ctx, mock.AnythingOfType("*batch.Batch")).Return(nil).Times(2)

	factory := new(MockBatchUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewBuildBatchesCommandHandler(factory, nopLocker{})
	result, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Len(t, result.Batches, 2)
	assert.InDelta(t, 23, result.Batches[0].Weight, 0.001)
	assert.InDelta(t, 12, result.Batches[1].Weight, 0.001)
	assert.Empty(t, result.Unbatchable)
	for _, o := range pending {
		assert.Equal(t, order.Batched, o.Status())
		assert.NotNil(t, o.Batch())
	}
	uow.AssertExpectations(t)
	batchRepo.AssertExpectations(t)
}

func TestBuildBatchesCommandHandler_Handle_OverweightOrderStaysPending(t *testing.T) {
	ctx := t.Context()

	heavy := pendingOrder(t, 40, time.Now())

	cmd, err := commands.NewBuildBatchesCommand("pincode", 25, 30)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo)
	orderRepo.On("GetAllPending", ctx).Return([]*order.Order{heavy}, nil).Once()

	factory := new(MockBatchUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewBuildBatchesCommandHandler(factory, nopLocker{})
	result, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Empty(t, result.Batches)
	require.Len(t, result.Unbatchable, 1)
	assert.True(t, result.Unbatchable[0].OrderID.IsEqual(heavy.ID()))
	assert.Equal(t, order.Pending, heavy.Status())
}

func TestBuildBatchesCommandHandler_Handle_NoPendingOrders(t *testing.T) {
	ctx := t.Context()

	cmd, err := commands.NewBuildBatchesCommand("kmeans", 25, 30)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo)
	orderRepo.On("GetAllPending", ctx).Return([]*order.Order{}, nil).Once()

	factory := new(MockBatchUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewBuildBatchesCommandHandler(factory, nopLocker{})
	result, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Empty(t, result.Batches)
	assert.Empty(t, result.Unbatchable)
	uow.AssertExpectations(t)
}
