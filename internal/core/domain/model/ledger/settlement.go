package ledger

import (
	"errors"
	"fmt"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrSettlementIsNotConstructed is returned when a Settlement was not created
// through NewSettlement or RestoreSettlement.
var ErrSettlementIsNotConstructed = errors.New("Settlement must be created via NewSettlement constructor")

// Settlement is the immutable record of a driver handing collected cash back
// to the depot. The id is supplied by the caller and acts as the idempotency
// key: retrying the same settlement id must not move money twice.
type Settlement struct {
	id           kernel.UUID
	driverID     kernel.UUID
	amount       decimal.Decimal
	balanceAfter decimal.Decimal
	settledAt    time.Time

	isConstructed bool
}

// NewSettlement records a cash handback.
func NewSettlement(
	id kernel.UUID,
	driverID kernel.UUID,
	amount decimal.Decimal,
	balanceAfter decimal.Decimal,
	settledAt time.Time,
) (*Settlement, error) {
	if err := errors.Join(
		id.Validate(),
		driverID.Validate(),
	); err != nil {
		return nil, err
	}
	if !amount.IsPositive() {
		return nil, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("settlement of %s is not positive", amount))
	}
	if balanceAfter.IsNegative() {
		return nil, errs.NewValueIsInvalidErrorWithCause("balance_after",
			fmt.Errorf("balance of %s is negative", balanceAfter))
	}

	return &Settlement{
		id:            id,
		driverID:      driverID,
		amount:        amount,
		balanceAfter:  balanceAfter,
		settledAt:     settledAt.UTC(),
		isConstructed: true,
	}, nil
}

// RestoreSettlement reconstructs a Settlement from persistence.
func RestoreSettlement(
	id kernel.UUID,
	driverID kernel.UUID,
	amount decimal.Decimal,
	balanceAfter decimal.Decimal,
	settledAt time.Time,
) (*Settlement, error) {
	return NewSettlement(id, driverID, amount, balanceAfter, settledAt)
}

// Validate ensures the Settlement was created through a constructor.
func (s *Settlement) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrSettlementIsNotConstructed
	}
	return nil
}

// ID returns the client-supplied settlement identifier.
func (s *Settlement) ID() kernel.UUID { return s.id }

// DriverID returns the driver who settled.
func (s *Settlement) DriverID() kernel.UUID { return s.driverID }

// Amount returns the cash handed back.
func (s *Settlement) Amount() decimal.Decimal { return s.amount }

// BalanceAfter returns the driver's cash in hand after the settlement.
func (s *Settlement) BalanceAfter() decimal.Decimal { return s.balanceAfter }

// SettledAt returns when the cash changed hands, in UTC.
func (s *Settlement) SettledAt() time.Time { return s.settledAt }
