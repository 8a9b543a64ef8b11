package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrRefundPaymentCommandIsNotConstructed = errors.New(
	"RefundPaymentCommand must be created via NewRefundPaymentCommand constructor",
)

// RefundPaymentCommand represents a request to refund a completed payment.
type RefundPaymentCommand struct { //nolint:recvcheck //using for validation
	paymentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRefundPaymentCommand creates a command to refund a payment.
func NewRefundPaymentCommand(paymentID kernel.UUID) (RefundPaymentCommand, error) {
	cmd := RefundPaymentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setPaymentID(paymentID); err != nil {
		return RefundPaymentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RefundPaymentCommand) Validate() error {
	return c.guard.Validate(ErrRefundPaymentCommandIsNotConstructed)
}

// PaymentID returns the payment to refund.
func (c RefundPaymentCommand) PaymentID() kernel.UUID { return c.paymentID }

func (c *RefundPaymentCommand) setPaymentID(paymentID kernel.UUID) error {
	if err := paymentID.Validate(); err != nil {
		return err
	}
	c.paymentID = paymentID
	return nil
}
