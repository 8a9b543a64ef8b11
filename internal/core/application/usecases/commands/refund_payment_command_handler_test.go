package commands_test

import (
	"testing"
	"time"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/ledger"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/payment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func fixtureCompletedPayment(t *testing.T, o *order.Order) *payment.Payment {
	t.Helper()
	p, err := payment.NewPayment(kernel.NewUUID(), o.ID(), o.TotalAmount(),
		o.PaymentMethod(), "", time.Now())
	require.NoError(t, err)
	require.NoError(t, p.Complete())
	return p
}

func TestRefundPaymentCommandHandler_Handle_CashRefundLocksDriverLedger(t *testing.T) {
	ctx := t.Context()

	cashOrder := fixtureOrder(t, order.PaymentCash, 10)
	testDriver := fixtureDriver(t)
	record := fixtureDelivery(t, cashOrder, kernel.NewUUID(), testDriver.ID())
	testPayment := fixtureCompletedPayment(t, cashOrder)

	cmd, err := commands.NewRefundPaymentCommand(testPayment.ID())
	require.NoError(t, err)

	paymentRepo := new(MockPaymentRepository)
	deliveryRepo := new(MockDeliveryRepository)
	ledgerRepo := new(MockLedgerRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("PaymentRepository").Return(paymentRepo)
	uow.On("DeliveryRepository").Return(deliveryRepo)
	uow.On("LedgerRepository").Return(ledgerRepo)

	paymentRepo.On("GetForUpdate", ctx, testPayment.ID()).Return(testPayment, nil).Once()
	paymentRepo.On("Update", ctx, testPayment).Return(nil).Once()
	deliveryRepo.On("GetByOrder", ctx, cashOrder.ID()).Return(record, nil).Once()
	ledgerRepo.On("AddEntry", ctx, mock.MatchedBy(func(e *ledger.Entry) bool {
		return e.Type() == ledger.TypeAdjustment &&
			e.DriverID().IsEqual(testDriver.ID()) &&
			e.Amount().Equal(cashOrder.TotalAmount().Neg())
	})).Return(nil).Once()

	factory := new(MockPaymentUoWFactory)
	factory.On("Create").Return(uow).Once()

	locks := &recordingLocker{}
	handler := commands.NewRefundPaymentCommandHandler(factory, locks)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, payment.StatusRefunded, testPayment.Status())
	assert.Contains(t, locks.keys, "driver:"+testDriver.ID().String())
	uow.AssertExpectations(t)
	ledgerRepo.AssertExpectations(t)
}

func TestRefundPaymentCommandHandler_Handle_UPIRefundSkipsLedger(t *testing.T) {
	ctx := t.Context()

	upiOrder := fixtureOrder(t, order.PaymentUPI, 10)
	testPayment := fixtureCompletedPayment(t, upiOrder)

	cmd, err := commands.NewRefundPaymentCommand(testPayment.ID())
	require.NoError(t, err)

	paymentRepo := new(MockPaymentRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("PaymentRepository").Return(paymentRepo)

	paymentRepo.On("GetForUpdate", ctx, testPayment.ID()).Return(testPayment, nil).Once()
	paymentRepo.On("Update", ctx, testPayment).Return(nil).Once()

	factory := new(MockPaymentUoWFactory)
	factory.On("Create").Return(uow).Once()

	locks := &recordingLocker{}
	handler := commands.NewRefundPaymentCommandHandler(factory, locks)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, payment.StatusRefunded, testPayment.Status())
	assert.Empty(t, locks.keys)
	uow.AssertNotCalled(t, "DeliveryRepository")
	uow.AssertNotCalled(t, "LedgerRepository")
}
