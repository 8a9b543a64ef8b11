// Package ledgerrepo persists the driver cash ledger and its settlements.
// Entries are append-only rows; the balance is an aggregation, never a stored
// column.
package ledgerrepo

import (
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/ledger"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EntryDTO represents one ledger entry row.
type EntryDTO struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	DriverID     uuid.UUID       `gorm:"type:uuid;index"`
	Amount       decimal.Decimal `gorm:"type:numeric(12,2)"`
	EntryType    string
	ReferenceID  uuid.UUID  `gorm:"type:uuid"`
	SettlementID *uuid.UUID `gorm:"type:uuid;index"`
	RecordedAt   time.Time
}

// TableName overrides GORM's default naming convention.
func (EntryDTO) TableName() string {
	return "ledger_entries"
}

// SettlementDTO represents one settlement row, keyed by the client-supplied
// idempotency id.
type SettlementDTO struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	DriverID     uuid.UUID       `gorm:"type:uuid;index"`
	Amount       decimal.Decimal `gorm:"type:numeric(12,2)"`
	BalanceAfter decimal.Decimal `gorm:"type:numeric(12,2)"`
	SettledAt    time.Time
}

// TableName overrides GORM's default naming convention.
func (SettlementDTO) TableName() string {
	return "settlements"
}

func entryFromDomain(entry *ledger.Entry) EntryDTO {
	var settlementID *uuid.UUID
	if id := entry.SettlementID(); id != nil {
		raw := id.Bytes()
		settlementID = &raw
	}

	return EntryDTO{
		ID:           entry.ID().Bytes(),
		DriverID:     entry.DriverID().Bytes(),
		Amount:       entry.Amount(),
		EntryType:    string(entry.Type()),
		ReferenceID:  entry.ReferenceID().Bytes(),
		SettlementID: settlementID,
		RecordedAt:   entry.RecordedAt(),
	}
}

func entryToDomain(dto EntryDTO) (*ledger.Entry, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	driverID, err := kernel.UUIDFromBytes(dto.DriverID[:])
	if err != nil {
		return nil, err
	}
	referenceID, err := kernel.UUIDFromBytes(dto.ReferenceID[:])
	if err != nil {
		return nil, err
	}

	var settlementID *kernel.UUID
	if dto.SettlementID != nil {
		parsed, settlementErr := kernel.UUIDFromBytes((*dto.SettlementID)[:])
		if settlementErr != nil {
			return nil, settlementErr
		}
		settlementID = &parsed
	}

	return ledger.RestoreEntry(id, driverID, dto.Amount,
		ledger.EntryType(dto.EntryType), referenceID, settlementID, dto.RecordedAt)
}

func settlementFromDomain(settlement *ledger.Settlement) SettlementDTO {
	return SettlementDTO{
		ID:           settlement.ID().Bytes(),
		DriverID:     settlement.DriverID().Bytes(),
		Amount:       settlement.Amount(),
		BalanceAfter: settlement.BalanceAfter(),
		SettledAt:    settlement.SettledAt(),
	}
}

func settlementToDomain(dto SettlementDTO) (*ledger.Settlement, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	driverID, err := kernel.UUIDFromBytes(dto.DriverID[:])
	if err != nil {
		return nil, err
	}

	return ledger.RestoreSettlement(id, driverID, dto.Amount, dto.BalanceAfter, dto.SettledAt)
}
