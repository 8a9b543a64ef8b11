package commands

import (
	"context"
	"errors"
	"time"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/ledger"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/payment"
	"dispatch/internal/core/domain/model/tracking"
)

// VerifyOTPResult reports the outcome of a confirmation attempt.
type VerifyOTPResult struct {
	Success         bool
	PaymentUnlocked bool
}

// VerifyOTPCommandHandler is the atomic check-and-consume at the door. The
// order's entity lock plus the delivery row lock make a code single use even
// under concurrent verification attempts.
type VerifyOTPCommandHandler struct {
	uowFactory DeliveryUoWFactory
	locks      Locker
	otpTTL     time.Duration
}

// NewVerifyOTPCommandHandler creates a handler for code verification.
func NewVerifyOTPCommandHandler(
	uowFactory DeliveryUoWFactory,
	locks Locker,
	otpTTL time.Duration,
) VerifyOTPCommandHandler {
	return VerifyOTPCommandHandler{uowFactory: uowFactory, locks: locks, otpTTL: otpTTL}
}

// Handle verifies and consumes the code. On success the order is delivered,
// collect-on-delivery payment is unlocked, cash lands in the driver's ledger,
// and the batch is completed if this was its last open order. Code failures
// return a typed error alongside Success=false.
func (h VerifyOTPCommandHandler) Handle(ctx context.Context, cmd VerifyOTPCommand) (VerifyOTPResult, error) {
	if err := cmd.Validate(); err != nil {
		return VerifyOTPResult{}, err
	}

	release, err := h.locks.Acquire(ctx, orderLockKey(cmd.OrderID()))
	if err != nil {
		return VerifyOTPResult{}, err
	}
	defer release()

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return VerifyOTPResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	record, err := uow.DeliveryRepository().GetByOrderForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return VerifyOTPResult{}, err
	}

	now := time.Now()
	if err = record.VerifyCode(cmd.Code(), now, h.otpTTL); err != nil {
		return VerifyOTPResult{Success: false}, err
	}
	if err = uow.DeliveryRepository().Update(ctx, record); err != nil {
		return VerifyOTPResult{}, err
	}

	orderAggregate, err := uow.OrderRepository().GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return VerifyOTPResult{}, err
	}
	if err = orderAggregate.Deliver(); err != nil {
		return VerifyOTPResult{}, err
	}
	if err = uow.OrderRepository().Update(ctx, orderAggregate); err != nil {
		return VerifyOTPResult{}, err
	}

	if orderAggregate.PaymentMethod() == order.PaymentCash {
		if err = h.recordCashCollection(ctx, uow, record, now); err != nil {
			return VerifyOTPResult{}, err
		}
	}

	event, err := tracking.NewEvent(kernel.NewUUID(), cmd.OrderID(), orderAggregate.Status(),
		nil, "delivery confirmed by customer", now)
	if err != nil {
		return VerifyOTPResult{}, err
	}
	if err = uow.TrackingRepository().AddEvent(ctx, event); err != nil {
		return VerifyOTPResult{}, err
	}

	if batchID := orderAggregate.Batch(); batchID != nil {
		if err = settleBatchIfDone(ctx, uow, *batchID); err != nil {
			return VerifyOTPResult{}, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return VerifyOTPResult{}, err
	}

	return VerifyOTPResult{
		Success:         true,
		PaymentUnlocked: record.UnlocksPayment(),
	}, nil
}

// recordCashCollection appends the door cash to the driver's ledger and
// completes any pending cash payment recorded for the order.
func (h VerifyOTPCommandHandler) recordCashCollection(
	ctx context.Context,
	uow DeliveryUoW,
	record *delivery.Delivery,
	now time.Time,
) error {
	entry, err := ledger.NewCollection(kernel.NewUUID(), record.DriverID(),
		record.Amount(), record.OrderID(), now)
	if err != nil {
		return err
	}
	if err = uow.LedgerRepository().AddEntry(ctx, entry); err != nil {
		return err
	}

	payments, err := uow.PaymentRepository().GetByOrder(ctx, record.OrderID())
	if err != nil {
		return err
	}
	for _, p := range payments {
		if p.Status() != payment.StatusPending {
			continue
		}
		if err = p.Complete(); err != nil {
			return err
		}
		if err = uow.PaymentRepository().Update(ctx, p); err != nil {
			return err
		}
	}
	return nil
}

// IsOTPFailure reports whether the error is a code rejection rather than an
// infrastructure failure. HTTP maps these to 403.
func IsOTPFailure(err error) bool {
	return errors.Is(err, delivery.ErrInvalidOTP) ||
		errors.Is(err, delivery.ErrExpiredOTP) ||
		errors.Is(err, delivery.ErrOTPAlreadyConsumed) ||
		errors.Is(err, delivery.ErrOTPNotIssued)
}
