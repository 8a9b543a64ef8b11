package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrRecordPaymentCommandIsNotConstructed = errors.New(
	"RecordPaymentCommand must be created via NewRecordPaymentCommand constructor",
)

// RecordPaymentCommand represents a request to record a payment against an
// order. UPI payments carry a gateway reference; cash payments stay pending
// until the handover confirmation unlocks them.
type RecordPaymentCommand struct { //nolint:recvcheck //using for validation
	paymentID kernel.UUID
	orderID   kernel.UUID
	amount    decimal.Decimal
	method    order.PaymentMethod
	reference string

	guard guard.ConstructorGuard
}

// NewRecordPaymentCommand creates a command to record a payment.
func NewRecordPaymentCommand(
	paymentID kernel.UUID,
	orderID kernel.UUID,
	amount decimal.Decimal,
	method string,
	reference string,
) (RecordPaymentCommand, error) {
	cmd := RecordPaymentCommand{
		amount:    amount,
		reference: reference,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPaymentID(paymentID),
		cmd.setOrderID(orderID),
		cmd.setMethod(method),
		cmd.setAmount(amount),
	); err != nil {
		return RecordPaymentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RecordPaymentCommand) Validate() error {
	return c.guard.Validate(ErrRecordPaymentCommandIsNotConstructed)
}

// PaymentID returns the identifier for the new payment.
func (c RecordPaymentCommand) PaymentID() kernel.UUID { return c.paymentID }

// OrderID returns the order being paid for.
func (c RecordPaymentCommand) OrderID() kernel.UUID { return c.orderID }

// Amount returns the payment amount.
func (c RecordPaymentCommand) Amount() decimal.Decimal { return c.amount }

// Method returns the payment channel.
func (c RecordPaymentCommand) Method() order.PaymentMethod { return c.method }

// Reference returns the gateway transaction reference, empty for cash.
func (c RecordPaymentCommand) Reference() string { return c.reference }

func (c *RecordPaymentCommand) setPaymentID(paymentID kernel.UUID) error {
	if err := paymentID.Validate(); err != nil {
		return err
	}
	c.paymentID = paymentID
	return nil
}

func (c *RecordPaymentCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *RecordPaymentCommand) setMethod(method string) error {
	parsed, err := order.PaymentMethodFromString(method)
	if err != nil {
		return err
	}
	if parsed == order.PaymentPrepaid {
		return errs.NewValueIsInvalidError("method")
	}
	c.method = parsed
	return nil
}

func (c *RecordPaymentCommand) setAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return errs.NewValueIsInvalidError("amount")
	}
	c.amount = amount
	return nil
}
