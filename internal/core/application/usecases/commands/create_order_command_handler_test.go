package commands_test

import (
	"testing"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID,
		"Farm A", "9876543210", "12 Market Rd", "560001",
		12.9716, 77.5946,
		[]commands.ItemSpec{{Name: "spinach crate", Quantity: 2, Price: decimal.NewFromInt(750), Weight: 5}},
		10, decimal.NewFromInt(1500), "cash", "morning")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	trackingRepo := new(MockTrackingRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("TrackingRepository").Return(trackingRepo)

	orderRepo.On("Add", ctx, mock.MatchedBy(func(o *order.Order) bool {
		return o.ID().IsEqual(orderID) && o.Status() == order.Pending
	})).Return(nil).Once()
	trackingRepo.On("AddEvent", ctx, mock.AnythingOfType("*tracking.Event")).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCreateOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	uow.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	trackingRepo.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_InvalidPaymentMethod(t *testing.T) {
	ctx := t.Context()

	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(),
		"Farm A", "9876543210", "12 Market Rd", "560001",
		12.9716, 77.5946, nil,
		10, decimal.NewFromInt(1500), "cheque", "morning")
	require.NoError(t, err)

	factory := new(MockOrderUoWFactory)

	handler := commands.NewCreateOrderCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	factory.AssertNotCalled(t, "Create")
}
