package payment

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrPaymentIsNotConstructed is returned when a Payment instance was not
// created through NewPayment or RestorePayment.
var ErrPaymentIsNotConstructed = errors.New("Payment must be created via NewPayment constructor")

// Status is the capture state of a payment.
type Status string

const (
	// StatusPending means the payment has been initiated but not captured.
	StatusPending Status = "pending"
	// StatusCompleted means funds were collected.
	StatusCompleted Status = "completed"
	// StatusFailed means the capture attempt did not go through.
	StatusFailed Status = "failed"
	// StatusRefunded means a completed payment was returned to the customer.
	StatusRefunded Status = "refunded"
)

// StatusFromString parses the wire representation of a payment status.
func StatusFromString(s string) (Status, error) {
	switch st := Status(s); st {
	case StatusPending, StatusCompleted, StatusFailed, StatusRefunded:
		return st, nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%q is not a payment status", s))
	}
}

// Validate checks the status is one of the defined variants.
func (s Status) Validate() error {
	_, err := StatusFromString(string(s))
	return err
}

func (s Status) String() string { return string(s) }

// Payment records one capture attempt against an order. Collect-on-delivery
// payments stay Pending until the handover confirmation unlocks them.
type Payment struct {
	id        kernel.UUID
	orderID   kernel.UUID
	amount    decimal.Decimal
	method    order.PaymentMethod
	status    Status
	reference string
	createdAt time.Time

	isConstructed bool
}

// NewPayment creates a Pending payment for the order.
func NewPayment(
	id kernel.UUID,
	orderID kernel.UUID,
	amount decimal.Decimal,
	method order.PaymentMethod,
	reference string,
	now time.Time,
) (*Payment, error) {
	if err := errors.Join(
		id.Validate(),
		orderID.Validate(),
		method.Validate(),
	); err != nil {
		return nil, err
	}
	if !amount.IsPositive() {
		return nil, errs.NewValueIsInvalidError("amount")
	}

	return &Payment{
		id:            id,
		orderID:       orderID,
		amount:        amount,
		method:        method,
		status:        StatusPending,
		reference:     strings.TrimSpace(reference),
		createdAt:     now.UTC(),
		isConstructed: true,
	}, nil
}

// RestorePayment reconstructs a Payment from persistence.
func RestorePayment(
	id kernel.UUID,
	orderID kernel.UUID,
	amount decimal.Decimal,
	method order.PaymentMethod,
	status Status,
	reference string,
	createdAt time.Time,
) (*Payment, error) {
	p, err := NewPayment(id, orderID, amount, method, reference, createdAt)
	if err != nil {
		return nil, err
	}
	if err = status.Validate(); err != nil {
		return nil, err
	}

	p.status = status
	return p, nil
}

// Validate ensures the Payment was created through a constructor.
func (p *Payment) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPaymentIsNotConstructed
	}
	return nil
}

// ID returns the payment identifier.
func (p *Payment) ID() kernel.UUID { return p.id }

// OrderID returns the order being paid for.
func (p *Payment) OrderID() kernel.UUID { return p.orderID }

// Amount returns the payment amount.
func (p *Payment) Amount() decimal.Decimal { return p.amount }

// Method returns the payment channel.
func (p *Payment) Method() order.PaymentMethod { return p.method }

// Status returns the capture state.
func (p *Payment) Status() Status { return p.status }

// Reference returns the external transaction reference, empty for cash.
func (p *Payment) Reference() string { return p.reference }

// CreatedAt returns when the payment was initiated, in UTC.
func (p *Payment) CreatedAt() time.Time { return p.createdAt }

// Complete marks the payment captured.
func (p *Payment) Complete() error {
	if p.status != StatusPending {
		return errs.NewConflictError(errs.ReasonInvalidTransition,
			fmt.Sprintf("payment %s is %s, not pending", p.id, p.status))
	}
	p.status = StatusCompleted
	return nil
}

// Fail marks a capture attempt as unsuccessful.
func (p *Payment) Fail() error {
	if p.status != StatusPending {
		return errs.NewConflictError(errs.ReasonInvalidTransition,
			fmt.Sprintf("payment %s is %s, not pending", p.id, p.status))
	}
	p.status = StatusFailed
	return nil
}

// Refund returns a completed payment to the customer.
func (p *Payment) Refund() error {
	if p.status != StatusCompleted {
		return errs.NewConflictError(errs.ReasonInvalidTransition,
			fmt.Sprintf("payment %s is %s, only completed payments refund", p.id, p.status))
	}
	p.status = StatusRefunded
	return nil
}
