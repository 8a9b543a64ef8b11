package queries

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetCashLedgerQueryIsNotConstructed = errors.New(
	"GetCashLedgerQuery must be created via NewGetCashLedgerQuery constructor",
)

// GetCashLedgerQuery retrieves a driver's cash position: what they hold,
// what they collected today, and what has not been absorbed by a settlement
// yet.
type GetCashLedgerQuery struct { //nolint:recvcheck //using for validation
	driverID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCashLedgerQuery creates a query for a driver's cash ledger summary.
func NewGetCashLedgerQuery(driverID kernel.UUID) (GetCashLedgerQuery, error) {
	q := GetCashLedgerQuery{guard: guard.NewConstructorGuard()}
	if err := q.setDriverID(driverID); err != nil {
		return GetCashLedgerQuery{}, err
	}
	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCashLedgerQuery) Validate() error {
	return q.guard.Validate(ErrGetCashLedgerQueryIsNotConstructed)
}

// DriverID returns the driver whose ledger is requested.
func (q GetCashLedgerQuery) DriverID() kernel.UUID { return q.driverID }

func (q *GetCashLedgerQuery) setDriverID(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	q.driverID = driverID
	return nil
}

// GetCashLedgerQueryResponse summarizes a driver's cash position.
type GetCashLedgerQueryResponse struct {
	DriverID          kernel.UUID
	CurrentBalance    decimal.Decimal
	TodayCollections  decimal.Decimal
	PendingSettlement decimal.Decimal
}
