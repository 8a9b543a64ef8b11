package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrVerifyOTPCommandIsNotConstructed = errors.New(
	"VerifyOTPCommand must be created via NewVerifyOTPCommand constructor",
)

// VerifyOTPCommand represents a customer's confirmation code presented at
// handover.
type VerifyOTPCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	code    string

	guard guard.ConstructorGuard
}

// NewVerifyOTPCommand creates a command to verify a confirmation code.
func NewVerifyOTPCommand(orderID kernel.UUID, code string) (VerifyOTPCommand, error) {
	cmd := VerifyOTPCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCode(code),
	); err != nil {
		return VerifyOTPCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c VerifyOTPCommand) Validate() error {
	return c.guard.Validate(ErrVerifyOTPCommandIsNotConstructed)
}

// OrderID returns the order being handed over.
func (c VerifyOTPCommand) OrderID() kernel.UUID { return c.orderID }

// Code returns the presented confirmation code.
func (c VerifyOTPCommand) Code() string { return c.code }

func (c *VerifyOTPCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *VerifyOTPCommand) setCode(code string) error {
	if code == "" {
		return errs.NewValueIsRequiredError("otp")
	}
	c.code = code
	return nil
}
