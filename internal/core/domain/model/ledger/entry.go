package ledger

import (
	"errors"
	"fmt"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrEntryIsNotConstructed is returned when an Entry was not created through
// one of the package constructors.
var ErrEntryIsNotConstructed = errors.New("Entry must be created via a ledger constructor")

// EntryType classifies a cash ledger entry.
type EntryType string

const (
	// TypeCollection is cash taken at the door. Always positive.
	TypeCollection EntryType = "collection"
	// TypeAdjustment is a manual correction, for example a refund paid out
	// of the driver's cash. Signed.
	TypeAdjustment EntryType = "adjustment"
	// TypeSettlement is cash handed back to the depot. Always negative.
	TypeSettlement EntryType = "settlement"
)

// EntryTypeFromString parses the wire representation of an entry type.
func EntryTypeFromString(s string) (EntryType, error) {
	switch t := EntryType(s); t {
	case TypeCollection, TypeAdjustment, TypeSettlement:
		return t, nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("entry_type",
			fmt.Errorf("%q is not a ledger entry type", s))
	}
}

// Validate checks the entry type is one of the defined variants.
func (t EntryType) Validate() error {
	_, err := EntryTypeFromString(string(t))
	return err
}

func (t EntryType) String() string { return string(t) }

// Entry is one immutable line in a driver's cash ledger. The driver's cash in
// hand is the sum of all entry amounts; the pending settlement figure is the
// sum of entries not yet stamped with a settlement id.
type Entry struct {
	id           kernel.UUID
	driverID     kernel.UUID
	amount       decimal.Decimal
	entryType    EntryType
	referenceID  kernel.UUID
	settlementID *kernel.UUID
	recordedAt   time.Time

	isConstructed bool
}

// NewCollection records cash collected for an order at the door.
func NewCollection(
	id kernel.UUID,
	driverID kernel.UUID,
	amount decimal.Decimal,
	orderID kernel.UUID,
	at time.Time,
) (*Entry, error) {
	if !amount.IsPositive() {
		return nil, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("collection of %s is not positive", amount))
	}
	return newEntry(id, driverID, amount, TypeCollection, orderID, at)
}

// NewAdjustment records a manual correction against the driver's cash, for
// example a refund handed back to a customer.
func NewAdjustment(
	id kernel.UUID,
	driverID kernel.UUID,
	amount decimal.Decimal,
	referenceID kernel.UUID,
	at time.Time,
) (*Entry, error) {
	if amount.IsZero() {
		return nil, errs.NewValueIsInvalidErrorWithCause("amount",
			errors.New("adjustment amount is zero"))
	}
	return newEntry(id, driverID, amount, TypeAdjustment, referenceID, at)
}

// NewSettlementEntry records cash the driver handed back to the depot. The
// amount passed is the settled sum; it is stored negated so the ledger keeps
// summing to cash in hand.
func NewSettlementEntry(
	id kernel.UUID,
	driverID kernel.UUID,
	settledAmount decimal.Decimal,
	settlementID kernel.UUID,
	at time.Time,
) (*Entry, error) {
	if !settledAmount.IsPositive() {
		return nil, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("settled amount of %s is not positive", settledAmount))
	}

	e, err := newEntry(id, driverID, settledAmount.Neg(), TypeSettlement, settlementID, at)
	if err != nil {
		return nil, err
	}
	e.settlementID = &settlementID
	return e, nil
}

// RestoreEntry reconstructs an Entry from persistence.
func RestoreEntry(
	id kernel.UUID,
	driverID kernel.UUID,
	amount decimal.Decimal,
	entryType EntryType,
	referenceID kernel.UUID,
	settlementID *kernel.UUID,
	recordedAt time.Time,
) (*Entry, error) {
	if err := entryType.Validate(); err != nil {
		return nil, err
	}
	if settlementID != nil {
		if err := settlementID.Validate(); err != nil {
			return nil, err
		}
	}

	e, err := newEntry(id, driverID, amount, entryType, referenceID, recordedAt)
	if err != nil {
		return nil, err
	}
	e.settlementID = settlementID
	return e, nil
}

func newEntry(
	id kernel.UUID,
	driverID kernel.UUID,
	amount decimal.Decimal,
	entryType EntryType,
	referenceID kernel.UUID,
	at time.Time,
) (*Entry, error) {
	if err := errors.Join(
		id.Validate(),
		driverID.Validate(),
		referenceID.Validate(),
	); err != nil {
		return nil, err
	}

	return &Entry{
		id:            id,
		driverID:      driverID,
		amount:        amount,
		entryType:     entryType,
		referenceID:   referenceID,
		recordedAt:    at.UTC(),
		isConstructed: true,
	}, nil
}

// Validate ensures the Entry was created through a constructor.
func (e *Entry) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrEntryIsNotConstructed
	}
	return nil
}

// ID returns the entry identifier.
func (e *Entry) ID() kernel.UUID { return e.id }

// DriverID returns the driver whose ledger this entry belongs to.
func (e *Entry) DriverID() kernel.UUID { return e.driverID }

// Amount returns the signed amount.
func (e *Entry) Amount() decimal.Decimal { return e.amount }

// Type returns the entry classification.
func (e *Entry) Type() EntryType { return e.entryType }

// ReferenceID returns the order, payment or settlement this entry points at.
func (e *Entry) ReferenceID() kernel.UUID { return e.referenceID }

// SettlementID returns the settlement that absorbed this entry, nil while the
// cash is still with the driver.
func (e *Entry) SettlementID() *kernel.UUID { return e.settlementID }

// RecordedAt returns when the entry was written, in UTC.
func (e *Entry) RecordedAt() time.Time { return e.recordedAt }

// IsSettled reports whether the entry has been absorbed by a settlement.
func (e *Entry) IsSettled() bool { return e.settlementID != nil }

// MarkSettled stamps the entry with the settlement that absorbed it.
func (e *Entry) MarkSettled(settlementID kernel.UUID) error {
	if err := settlementID.Validate(); err != nil {
		return err
	}
	if e.settlementID != nil {
		return errs.NewConflictError(errs.ReasonInvalidTransition,
			fmt.Sprintf("ledger entry %s is already settled", e.id))
	}
	e.settlementID = &settlementID
	return nil
}
