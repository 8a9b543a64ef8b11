package queries

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrVerifyPaymentQueryIsNotConstructed = errors.New(
	"VerifyPaymentQuery must be created via NewVerifyPaymentQuery constructor",
)

// VerifyPaymentQuery retrieves the current state of one payment so callers
// can confirm whether money actually moved.
type VerifyPaymentQuery struct { //nolint:recvcheck //using for validation
	paymentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewVerifyPaymentQuery creates a query for a payment's current state.
func NewVerifyPaymentQuery(paymentID kernel.UUID) (VerifyPaymentQuery, error) {
	q := VerifyPaymentQuery{guard: guard.NewConstructorGuard()}
	if err := q.setPaymentID(paymentID); err != nil {
		return VerifyPaymentQuery{}, err
	}
	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q VerifyPaymentQuery) Validate() error {
	return q.guard.Validate(ErrVerifyPaymentQueryIsNotConstructed)
}

// PaymentID returns the payment being verified.
func (q VerifyPaymentQuery) PaymentID() kernel.UUID { return q.paymentID }

func (q *VerifyPaymentQuery) setPaymentID(paymentID kernel.UUID) error {
	if err := paymentID.Validate(); err != nil {
		return err
	}
	q.paymentID = paymentID
	return nil
}

// VerifyPaymentQueryResponse is the payment state read model.
type VerifyPaymentQueryResponse struct {
	ID        kernel.UUID
	OrderID   kernel.UUID
	Amount    decimal.Decimal
	Method    string
	Status    string
	Reference string
	CreatedAt time.Time
}
