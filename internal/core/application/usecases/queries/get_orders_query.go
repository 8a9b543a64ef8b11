package queries

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

// GetOrdersQuery retrieves orders, optionally narrowed to one lifecycle
// status. An empty status filter returns everything.
type GetOrdersQuery struct {
	status *order.Status

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates a query for the order list. The status filter is
// the wire representation; pass an empty string for no filter.
func NewGetOrdersQuery(statusFilter string) (GetOrdersQuery, error) {
	q := GetOrdersQuery{guard: guard.NewConstructorGuard()}

	if statusFilter != "" {
		status, err := order.StatusFromString(statusFilter)
		if err != nil {
			return GetOrdersQuery{}, err
		}
		q.status = &status
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// Status returns the parsed status filter, nil when absent.
func (q GetOrdersQuery) Status() *order.Status { return q.status }

// OrderSummaryResponse is one order row in list reads.
type OrderSummaryResponse struct {
	ID            kernel.UUID
	CustomerName  string
	Pincode       string
	TotalWeight   float64
	TotalAmount   decimal.Decimal
	PaymentMethod string
	Status        string
	DeliverySlot  string
	BatchID       *kernel.UUID
	DriverID      *kernel.UUID
}
