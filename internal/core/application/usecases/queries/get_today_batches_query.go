// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries bypass the domain model and read optimized projections straight
// from the database.
package queries

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrGetTodayBatchesQueryIsNotConstructed = errors.New(
	"GetTodayBatchesQuery must be created via NewGetTodayBatchesQuery constructor",
)

// GetTodayBatchesQuery retrieves all batches built since local midnight with
// their aggregate load figures for the dispatch board.
type GetTodayBatchesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetTodayBatchesQuery creates a query for today's batches.
func NewGetTodayBatchesQuery() GetTodayBatchesQuery {
	return GetTodayBatchesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetTodayBatchesQuery) Validate() error {
	return q.guard.Validate(ErrGetTodayBatchesQueryIsNotConstructed)
}

// GetTodayBatchesQueryResponse is one batch row on the dispatch board.
type GetTodayBatchesQueryResponse struct {
	ID            kernel.UUID
	Status        string
	CurrentWeight float64
	CurrentOrders int
	EstimatedKm   float64
	DriverID      *kernel.UUID
}
