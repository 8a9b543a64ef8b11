package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/ledger"
	"dispatch/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// SettleResult reports the outcome of a settlement: its id and the driver's
// remaining cash in hand.
type SettleResult struct {
	SettlementID kernel.UUID
	NewBalance   decimal.Decimal
}

// SettleCommandHandler moves collected cash from a driver back to the depot.
// Replays of the same settlement id return the original result without
// moving money twice; the ledger's sum is conserved by appending a negated
// settlement entry rather than rewriting history.
type SettleCommandHandler struct {
	uowFactory SettlementUoWFactory
	locks      Locker
}

// NewSettleCommandHandler creates a handler for cash settlement.
func NewSettleCommandHandler(uowFactory SettlementUoWFactory, locks Locker) SettleCommandHandler {
	return SettleCommandHandler{uowFactory: uowFactory, locks: locks}
}

// Handle settles up to the requested amount: oldest unsettled entries are
// stamped with the settlement id, a negated settlement entry is appended, and
// the immutable settlement record is written, all in one transaction.
func (h SettleCommandHandler) Handle(ctx context.Context, cmd SettleCommand) (SettleResult, error) {
	if err := cmd.Validate(); err != nil {
		return SettleResult{}, err
	}

	release, err := h.locks.Acquire(ctx, driverLockKey(cmd.DriverID()))
	if err != nil {
		return SettleResult{}, err
	}
	defer release()

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return SettleResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	existing, err := uow.LedgerRepository().GetSettlement(ctx, cmd.SettlementID())
	if err == nil {
		if !existing.DriverID().IsEqual(cmd.DriverID()) {
			return SettleResult{}, errs.NewConflictError(errs.ReasonInvalidTransition,
				"settlement id was already used by a different driver")
		}
		return SettleResult{
			SettlementID: existing.ID(),
			NewBalance:   existing.BalanceAfter(),
		}, nil
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return SettleResult{}, err
	}

	balance, err := uow.LedgerRepository().GetBalance(ctx, cmd.DriverID())
	if err != nil {
		return SettleResult{}, err
	}
	if cmd.Amount().GreaterThan(balance) {
		return SettleResult{}, errs.NewConflictError(errs.ReasonInsufficientBalance,
			fmt.Sprintf("cannot settle %s against an unsettled balance of %s",
				cmd.Amount(), balance))
	}

	entries, err := uow.LedgerRepository().GetUnsettledByDriver(ctx, cmd.DriverID())
	if err != nil {
		return SettleResult{}, err
	}

	// Stamp oldest entries whose running total fits inside the settled
	// amount. Later entries stay unsettled for the next handback.
	covered := decimal.Zero
	for _, entry := range entries {
		next := covered.Add(entry.Amount())
		if next.GreaterThan(cmd.Amount()) {
			break
		}
		if err = entry.MarkSettled(cmd.SettlementID()); err != nil {
			return SettleResult{}, err
		}
		if err = uow.LedgerRepository().UpdateEntry(ctx, entry); err != nil {
			return SettleResult{}, err
		}
		covered = next
	}

	now := time.Now()
	settlementEntry, err := ledger.NewSettlementEntry(kernel.NewUUID(), cmd.DriverID(),
		cmd.Amount(), cmd.SettlementID(), now)
	if err != nil {
		return SettleResult{}, err
	}
	if err = uow.LedgerRepository().AddEntry(ctx, settlementEntry); err != nil {
		return SettleResult{}, err
	}

	newBalance := balance.Sub(cmd.Amount())
	settlement, err := ledger.NewSettlement(cmd.SettlementID(), cmd.DriverID(),
		cmd.Amount(), newBalance, now)
	if err != nil {
		return SettleResult{}, err
	}
	if err = uow.LedgerRepository().AddSettlement(ctx, settlement); err != nil {
		return SettleResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return SettleResult{}, err
	}

	return SettleResult{SettlementID: cmd.SettlementID(), NewBalance: newBalance}, nil
}
