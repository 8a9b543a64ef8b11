package delivery

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Domain errors for the delivery confirmation flow.
var (
	// ErrDeliveryIsNotConstructed is returned when a Delivery was not created
	// through NewDelivery or RestoreDelivery.
	ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery constructor")
	// ErrOTPNotIssued is returned when verifying before any code was issued.
	ErrOTPNotIssued = errors.New("confirmation code has not been issued")
	// ErrInvalidOTP is returned when the presented code does not match.
	ErrInvalidOTP = errors.New("confirmation code is invalid")
	// ErrExpiredOTP is returned when the code's TTL has elapsed.
	ErrExpiredOTP = errors.New("confirmation code has expired")
	// ErrOTPAlreadyConsumed is returned when the code was already used.
	ErrOTPAlreadyConsumed = errors.New("confirmation code was already used")
)

// Delivery is the per-order handover record created when a batch is assigned
// to a driver. It owns the confirmation code lifecycle: a six digit code is
// issued on arrival, is valid for a TTL, is single use, and re-issuing
// replaces any earlier code.
type Delivery struct {
	id             kernel.UUID
	orderID        kernel.UUID
	batchID        kernel.UUID
	driverID       kernel.UUID
	otpCode        string
	otpGeneratedAt *time.Time
	otpConsumed    bool
	startedAt      time.Time
	arrivedAt      *time.Time
	completedAt    *time.Time
	paymentMethod  order.PaymentMethod
	amount         decimal.Decimal

	isConstructed bool
}

// NewDelivery creates the handover record at assignment time. No confirmation
// code exists until the driver arrives.
func NewDelivery(
	id kernel.UUID,
	orderID kernel.UUID,
	batchID kernel.UUID,
	driverID kernel.UUID,
	paymentMethod order.PaymentMethod,
	amount decimal.Decimal,
	now time.Time,
) (*Delivery, error) {
	if err := errors.Join(
		id.Validate(),
		orderID.Validate(),
		batchID.Validate(),
		driverID.Validate(),
		paymentMethod.Validate(),
	); err != nil {
		return nil, err
	}
	if amount.IsNegative() {
		return nil, errs.NewValueIsInvalidError("amount")
	}

	return &Delivery{
		id:            id,
		orderID:       orderID,
		batchID:       batchID,
		driverID:      driverID,
		paymentMethod: paymentMethod,
		amount:        amount,
		startedAt:     now.UTC(),
		isConstructed: true,
	}, nil
}

// RestoreDelivery reconstructs a Delivery from persistence.
func RestoreDelivery(
	id kernel.UUID,
	orderID kernel.UUID,
	batchID kernel.UUID,
	driverID kernel.UUID,
	otpCode string,
	otpGeneratedAt *time.Time,
	otpConsumed bool,
	startedAt time.Time,
	arrivedAt *time.Time,
	completedAt *time.Time,
	paymentMethod order.PaymentMethod,
	amount decimal.Decimal,
) (*Delivery, error) {
	d, err := NewDelivery(id, orderID, batchID, driverID, paymentMethod, amount, startedAt)
	if err != nil {
		return nil, err
	}
	if otpConsumed && otpCode == "" {
		return nil, errs.NewValueIsInvalidError("otp_code")
	}

	d.otpCode = otpCode
	d.otpGeneratedAt = otpGeneratedAt
	d.otpConsumed = otpConsumed
	d.arrivedAt = arrivedAt
	d.completedAt = completedAt
	return d, nil
}

// Validate ensures the Delivery was created through a constructor.
func (d *Delivery) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDeliveryIsNotConstructed
	}
	return nil
}

// ID returns the delivery record identifier.
func (d *Delivery) ID() kernel.UUID { return d.id }

// OrderID returns the order being handed over.
func (d *Delivery) OrderID() kernel.UUID { return d.orderID }

// BatchID returns the batch the order travelled in.
func (d *Delivery) BatchID() kernel.UUID { return d.batchID }

// DriverID returns the driver performing the handover.
func (d *Delivery) DriverID() kernel.UUID { return d.driverID }

// OTPCode returns the currently active confirmation code, empty if none.
func (d *Delivery) OTPCode() string { return d.otpCode }

// OTPGeneratedAt returns when the active code was issued, nil if none.
func (d *Delivery) OTPGeneratedAt() *time.Time { return d.otpGeneratedAt }

// OTPConsumed reports whether the code was already used.
func (d *Delivery) OTPConsumed() bool { return d.otpConsumed }

// StartedAt returns when the route began for this order.
func (d *Delivery) StartedAt() time.Time { return d.startedAt }

// ArrivedAt returns when the driver reported arrival, nil if not yet.
func (d *Delivery) ArrivedAt() *time.Time { return d.arrivedAt }

// CompletedAt returns when the handover was confirmed, nil if not yet.
func (d *Delivery) CompletedAt() *time.Time { return d.completedAt }

// PaymentMethod returns how the order is paid.
func (d *Delivery) PaymentMethod() order.PaymentMethod { return d.paymentMethod }

// Amount returns the amount due at the door, zero for prepaid orders.
func (d *Delivery) Amount() decimal.Decimal { return d.amount }

// IsCompleted reports whether the handover was confirmed.
func (d *Delivery) IsCompleted() bool { return d.completedAt != nil }

// Reassign re-points the handover at a different driver. Only valid before
// completion, when the batch itself is re-pointed.
func (d *Delivery) Reassign(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	if d.IsCompleted() {
		return errs.NewConflictError(errs.ReasonInvalidTransition,
			"cannot reassign a completed delivery")
	}
	d.driverID = driverID
	return nil
}

// MarkStarted stamps the moment the batch route actually departed.
func (d *Delivery) MarkStarted(now time.Time) {
	d.startedAt = now.UTC()
}

// CompletePrepaid closes the handover without a confirmation code. Only
// prepaid orders skip the code; collect-on-delivery orders must verify.
func (d *Delivery) CompletePrepaid(now time.Time) error {
	if !d.paymentMethod.IsPrepaid() {
		return errs.NewConflictError(errs.ReasonInvalidTransition,
			"only prepaid orders complete without a confirmation code")
	}
	if d.IsCompleted() {
		return errs.NewConflictError(errs.ReasonInvalidTransition,
			"delivery is already completed")
	}
	at := now.UTC()
	d.completedAt = &at
	return nil
}

// Arrive records the driver at the door and issues a fresh confirmation code.
// Calling it again re-issues: the previous code stops working immediately.
func (d *Delivery) Arrive(now time.Time) (string, error) {
	if d.IsCompleted() {
		return "", ErrOTPAlreadyConsumed
	}

	code, err := generateOTP()
	if err != nil {
		return "", err
	}

	at := now.UTC()
	d.otpCode = code
	d.otpGeneratedAt = &at
	d.otpConsumed = false
	d.arrivedAt = &at
	return code, nil
}

// VerifyCode checks and consumes the confirmation code. On success the
// delivery is completed and the code cannot be used again.
func (d *Delivery) VerifyCode(code string, now time.Time, ttl time.Duration) error {
	if d.otpGeneratedAt == nil {
		return ErrOTPNotIssued
	}
	if d.otpConsumed {
		return ErrOTPAlreadyConsumed
	}
	if now.UTC().Sub(*d.otpGeneratedAt) > ttl {
		return ErrExpiredOTP
	}
	if code != d.otpCode {
		return ErrInvalidOTP
	}

	at := now.UTC()
	d.otpConsumed = true
	d.completedAt = &at
	return nil
}

// UnlocksPayment reports whether confirming this delivery releases a door
// payment. Prepaid orders have nothing to collect.
func (d *Delivery) UnlocksPayment() bool {
	return !d.paymentMethod.IsPrepaid()
}
