package queries

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrGetBatchOrdersQueryIsNotConstructed = errors.New(
	"GetBatchOrdersQuery must be created via NewGetBatchOrdersQuery constructor",
)

// GetBatchOrdersQuery retrieves the member orders of one batch.
type GetBatchOrdersQuery struct { //nolint:recvcheck //using for validation
	batchID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetBatchOrdersQuery creates a query for a batch's member orders.
func NewGetBatchOrdersQuery(batchID kernel.UUID) (GetBatchOrdersQuery, error) {
	q := GetBatchOrdersQuery{guard: guard.NewConstructorGuard()}
	if err := q.setBatchID(batchID); err != nil {
		return GetBatchOrdersQuery{}, err
	}
	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetBatchOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetBatchOrdersQueryIsNotConstructed)
}

// BatchID returns the batch whose members are requested.
func (q GetBatchOrdersQuery) BatchID() kernel.UUID { return q.batchID }

func (q *GetBatchOrdersQuery) setBatchID(batchID kernel.UUID) error {
	if err := batchID.Validate(); err != nil {
		return err
	}
	q.batchID = batchID
	return nil
}
