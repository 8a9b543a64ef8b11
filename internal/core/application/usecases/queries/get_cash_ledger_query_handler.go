package queries

import (
	"context"
	"time"

	"dispatch/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetCashLedgerQueryHandler reads a driver's cash ledger summary. All three
// figures come from one aggregation pass over the entries.
type GetCashLedgerQueryHandler struct {
	db *gorm.DB
}

// NewGetCashLedgerQueryHandler creates a handler for cash ledger reads.
func NewGetCashLedgerQueryHandler(db *gorm.DB) GetCashLedgerQueryHandler {
	return GetCashLedgerQueryHandler{db: db}
}

// Handle returns the driver's cash position. The balance sums every entry.
// Pending settlement is collections net of settlements: a settlement can
// cover part of an entry, so the unstamped-entry sum would overstate what
// the driver still owes.
func (h GetCashLedgerQueryHandler) Handle(
	ctx context.Context,
	query GetCashLedgerQuery,
) (GetCashLedgerQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCashLedgerQueryResponse{}, err
	}

	var driverCount int64
	err := h.db.WithContext(ctx).
		Raw(`SELECT COUNT(*) FROM drivers WHERE id = ?`, query.DriverID().Bytes()).
		Scan(&driverCount).Error
	if err != nil {
		return GetCashLedgerQueryResponse{}, err
	}
	if driverCount == 0 {
		return GetCashLedgerQueryResponse{}, errs.NewObjectNotFoundError("driver", query.DriverID().String())
	}

	now := time.Now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	var balance, todayCollections, pendingSettlement string
	row := h.db.WithContext(ctx).Raw(`
		SELECT
			COALESCE(SUM(amount), 0),
			COALESCE(SUM(amount) FILTER (WHERE entry_type = 'collection' AND recorded_at >= ?), 0),
			COALESCE(SUM(amount) FILTER (WHERE entry_type IN ('collection', 'settlement')), 0)
		FROM ledger_entries
		WHERE driver_id = ?
	`, midnight, query.DriverID().Bytes()).Row()
	if err = row.Scan(&balance, &todayCollections, &pendingSettlement); err != nil {
		return GetCashLedgerQueryResponse{}, err
	}

	response := GetCashLedgerQueryResponse{DriverID: query.DriverID()}
	if response.CurrentBalance, err = decimal.NewFromString(balance); err != nil {
		return GetCashLedgerQueryResponse{}, err
	}
	if response.TodayCollections, err = decimal.NewFromString(todayCollections); err != nil {
		return GetCashLedgerQueryResponse{}, err
	}
	if response.PendingSettlement, err = decimal.NewFromString(pendingSettlement); err != nil {
		return GetCashLedgerQueryResponse{}, err
	}

	return response, nil
}
