package ledgerrepo

import (
	"context"
	"database/sql"
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/ledger"
	"dispatch/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormLedgerRepository implements LedgerRepository using GORM.
type GormLedgerRepository struct {
	db *gorm.DB
}

// NewGormLedgerRepository creates a new GORM ledger repository.
func NewGormLedgerRepository(db *gorm.DB) *GormLedgerRepository {
	return &GormLedgerRepository{db: db}
}

// AddEntry appends a ledger entry.
func (r *GormLedgerRepository) AddEntry(ctx context.Context, entry *ledger.Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	dto := entryFromDomain(entry)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// UpdateEntry persists a settlement stamp on an existing entry.
func (r *GormLedgerRepository) UpdateEntry(ctx context.Context, entry *ledger.Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	dto := entryFromDomain(entry)
	result := r.db.WithContext(ctx).Where("id = ?", dto.ID).Save(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("ledger entry", entry.ID().String())
	}
	return nil
}

// GetBalance sums every entry for the driver. A driver with no entries has a
// zero balance.
func (r *GormLedgerRepository) GetBalance(ctx context.Context, driverID kernel.UUID) (decimal.Decimal, error) {
	if err := driverID.Validate(); err != nil {
		return decimal.Decimal{}, err
	}

	var balance sql.NullString
	err := r.db.WithContext(ctx).
		Model(&EntryDTO{}).
		Select("SUM(amount)").
		Where("driver_id = ?", driverID.Bytes()).
		Scan(&balance).Error
	if err != nil {
		return decimal.Decimal{}, err
	}
	if !balance.Valid {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(balance.String)
}

// GetUnsettledByDriver retrieves the driver's unsettled entries, oldest
// first, with row locks held until the transaction finishes.
func (r *GormLedgerRepository) GetUnsettledByDriver(ctx context.Context, driverID kernel.UUID) ([]*ledger.Entry, error) {
	if err := driverID.Validate(); err != nil {
		return nil, err
	}

	var dtos []EntryDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Order("recorded_at, id").
		Find(&dtos, "driver_id = ? AND settlement_id IS NULL AND entry_type = ?",
			driverID.Bytes(), string(ledger.TypeCollection)).Error
	if err != nil {
		return nil, err
	}

	entries := make([]*ledger.Entry, 0, len(dtos))
	for _, dto := range dtos {
		e, domainErr := entryToDomain(dto)
		if domainErr != nil {
			return nil, domainErr
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// AddSettlement persists a settlement record.
func (r *GormLedgerRepository) AddSettlement(ctx context.Context, settlement *ledger.Settlement) error {
	if err := settlement.Validate(); err != nil {
		return err
	}

	dto := settlementFromDomain(settlement)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetSettlement retrieves a settlement by its client-supplied id.
func (r *GormLedgerRepository) GetSettlement(ctx context.Context, id kernel.UUID) (*ledger.Settlement, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto SettlementDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("settlement", id.String())
		}
		return nil, err
	}

	return settlementToDomain(dto)
}
