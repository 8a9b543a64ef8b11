package ports

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/ledger"

	"github.com/shopspring/decimal"
)

// LedgerRepository defines the persistence contract for the driver cash
// ledger. Entries are append-only; the only permitted mutation is stamping a
// settlement id.
type LedgerRepository interface {
	// AddEntry appends a ledger entry.
	AddEntry(ctx context.Context, entry *ledger.Entry) error

	// UpdateEntry persists a settlement stamp on an existing entry.
	UpdateEntry(ctx context.Context, entry *ledger.Entry) error

	// GetBalance sums every entry for the driver. Collections add, refunds
	// and settlements subtract, so the result is cash in hand.
	GetBalance(ctx context.Context, driverID kernel.UUID) (decimal.Decimal, error)

	// GetUnsettledByDriver retrieves the driver's entries not yet absorbed
	// by a settlement, oldest first, with row locks held for the remainder
	// of the transaction.
	GetUnsettledByDriver(ctx context.Context, driverID kernel.UUID) ([]*ledger.Entry, error)

	// AddSettlement persists a settlement record.
	AddSettlement(ctx context.Context, settlement *ledger.Settlement) error

	// GetSettlement retrieves a settlement by its client-supplied id, or
	// ErrObjectNotFound when it has not happened yet.
	GetSettlement(ctx context.Context, id kernel.UUID) (*ledger.Settlement, error)
}
