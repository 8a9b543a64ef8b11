package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrSettleCommandIsNotConstructed = errors.New(
	"SettleCommand must be created via NewSettleCommand constructor",
)

// SettleCommand represents a driver handing collected cash back to the
// depot. The settlement id comes from the caller and makes retries
// idempotent.
type SettleCommand struct { //nolint:recvcheck //using for validation
	settlementID kernel.UUID
	driverID     kernel.UUID
	amount       decimal.Decimal

	guard guard.ConstructorGuard
}

// NewSettleCommand creates a command to settle driver cash.
func NewSettleCommand(settlementID, driverID kernel.UUID, amount decimal.Decimal) (SettleCommand, error) {
	cmd := SettleCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setSettlementID(settlementID),
		cmd.setDriverID(driverID),
		cmd.setAmount(amount),
	); err != nil {
		return SettleCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SettleCommand) Validate() error {
	return c.guard.Validate(ErrSettleCommandIsNotConstructed)
}

// SettlementID returns the client-supplied idempotency key.
func (c SettleCommand) SettlementID() kernel.UUID { return c.settlementID }

// DriverID returns the settling driver.
func (c SettleCommand) DriverID() kernel.UUID { return c.driverID }

// Amount returns the cash being handed back.
func (c SettleCommand) Amount() decimal.Decimal { return c.amount }

func (c *SettleCommand) setSettlementID(settlementID kernel.UUID) error {
	if err := settlementID.Validate(); err != nil {
		return err
	}
	c.settlementID = settlementID
	return nil
}

func (c *SettleCommand) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	c.driverID = driverID
	return nil
}

func (c *SettleCommand) setAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return errs.NewValueIsInvalidError("amount")
	}
	c.amount = amount
	return nil
}
