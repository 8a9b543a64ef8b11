package commands_test

import (
	"testing"
	"time"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/batch"
	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/driver"
	"dispatch/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// inTransitFixture assembles an order already out for delivery with its batch,
// driver and delivery record, and returns the code issued at arrival.
func inTransitFixture(t *testing.T, method order.PaymentMethod) (
	*order.Order, *batch.Batch, *driver.Driver, *delivery.Delivery, string,
) {
	t.Helper()

	o := fixtureOrder(t, method, 10)
	b := fixtureBatch(t, o)
	d := fixtureDriver(t)

	require.NoError(t, d.StartDelivery())
	require.NoError(t, b.AssignDriver(d.ID()))
	require.NoError(t, o.Assign(d.ID()))
	require.NoError(t, b.Start())
	require.NoError(t, o.Depart())

	record := fixtureDelivery(t, o, b.ID(), d.ID())
	require.NoError(t, record.MarkStarted(time.Now()))
	code, err := record.Arrive(time.Now())
	require.NoError(t, err)

	return o, b, d, record, code
}

func TestVerifyOTPCommandHandler_Handle_SuccessWithCashCollection(t *testing.T) {
	ctx := t.Context()

	o, b, d, record, code := inTransitFixture(t, order.PaymentCash)

	cmd, err := commands.NewVerifyOTPCommand(o.ID(), code)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	batchRepo := new(MockBatchRepository)
	driverRepo := new(MockDriverRepository)
	deliveryRepo := new(MockDeliveryRepository)
	paymentRepo := new(MockPaymentRepository)
	ledgerRepo := new(MockLedgerRepository)
	trackingRepo := new(MockTrackingRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("BatchRepository").Return(batchRepo)
	uow.On("DriverRepository").Return(driverRepo)
	uow.On("DeliveryRepository").Return(deliveryRepo)
	uow.On("PaymentRepository").Return(paymentRepo)
	uow.On("LedgerRepository").Return(ledgerRepo)
	uow.On("TrackingRepository").Return(trackingRepo)

	deliveryRepo.On("GetByOrderForUpdate", ctx, o.ID()).Return(record, nil).Once()
	deliveryRepo.On("Update", ctx, record).Return(nil).Once()
	orderRepo.On("GetForUpdate", ctx, o.ID()).Return(o, nil).Once()
	orderRepo.On("Update", ctx, o).Return(nil).Once()
	ledgerRepo.On("AddEntry", ctx, mock.AnythingOfType("*ledger.Entry")).Return(nil).Once()
	paymentRepo.On("GetByOrder", ctx, o.ID()).Return(nil, nil).Once()
	trackingRepo.On("AddEvent", ctx, mock.AnythingOfType("*tracking.Event")).Return(nil).Once()
	batchRepo.On("GetForUpdate", ctx, b.ID()).Return(b, nil).Once()
	orderRepo.On("GetByBatch", ctx, b.ID()).Return([]*order.Order{o}, nil).Once()
	batchRepo.On("Update", ctx, b).Return(nil).Once()
	driverRepo.On("GetForUpdate", ctx, d.ID()).Return(d, nil).Once()
	driverRepo.On("Update", ctx, d).Return(nil).Once()

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewVerifyOTPCommandHandler(factory, nopLocker{}, 10*time.Minute)
	result, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.True(t, result.PaymentUnlocked)
	assert.Equal(t, order.Delivered, o.Status())
	assert.Equal(t, batch.Completed, b.Status())
	assert.Equal(t, driver.Available, d.Status())
	assert.NotNil(t, record.CompletedAt())
	uow.AssertExpectations(t)
	ledgerRepo.AssertExpectations(t)
}

func TestVerifyOTPCommandHandler_Handle_WrongCode(t *testing.T) {
	ctx := t.Context()

	o, _, _, record, code := inTransitFixture(t, order.PaymentCash)

	wrong := "000000"
	if wrong == code {
		wrong = "000001"
	}
	cmd, err := commands.NewVerifyOTPCommand(o.ID(), wrong)
	require.NoError(t, err)

	deliveryRepo := new(MockDeliveryRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	uow.On("DeliveryRepository").Return(deliveryRepo)
	deliveryRepo.On("GetByOrderForUpdate", ctx, o.ID()).Return(record, nil).Once()

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewVerifyOTPCommandHandler(factory, nopLocker{}, 10*time.Minute)
	result, err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, delivery.ErrInvalidOTP)
	assert.True(t, commands.IsOTPFailure(err))
	assert.False(t, result.Success)
	assert.Equal(t, order.InTransit, o.Status())
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestVerifyOTPCommandHandler_Handle_ExpiredCode(t *testing.T) {
	ctx := t.Context()

	o, _, _, record, code := inTransitFixture(t, order.PaymentUPI)

	cmd, err := commands.NewVerifyOTPCommand(o.ID(), code)
	require.NoError(t, err)

	deliveryRepo := new(MockDeliveryRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	uow.On("DeliveryRepository").Return(deliveryRepo)
	deliveryRepo.On("GetByOrderForUpdate", ctx, o.ID()).Return(record, nil).Once()

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewVerifyOTPCommandHandler(factory, nopLocker{}, time.Nanosecond)
	result, err := handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, delivery.ErrExpiredOTP)
	assert.False(t, result.Success)
}
