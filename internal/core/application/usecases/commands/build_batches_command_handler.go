package commands

import (
	"context"
	"time"

	"dispatch/internal/core/domain/model/batch"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/tracking"
	"dispatch/internal/core/domain/services"
)

// BuiltBatch summarizes one batch produced by a builder run.
type BuiltBatch struct {
	BatchID     kernel.UUID
	OrderIDs    []kernel.UUID
	Weight      float64
	EstimatedKm float64
}

// BuildBatchesResult reports what a builder run produced: the batches written
// and the orders that fit nowhere and stayed pending.
type BuildBatchesResult struct {
	Batches     []BuiltBatch
	Unbatchable []services.UnbatchableOrder
}

// BuildBatchesCommandHandler runs the batch builder over all pending orders.
// Runs are serialized by a builder-wide lock and committed all-or-nothing, so
// two concurrent build requests cannot double-batch an order.
type BuildBatchesCommandHandler struct {
	uowFactory BatchUoWFactory
	locks      Locker
	planner    services.BatchPlanner
}

// NewBuildBatchesCommandHandler creates a handler for batch building.
func NewBuildBatchesCommandHandler(uowFactory BatchUoWFactory, locks Locker) BuildBatchesCommandHandler {
	return BuildBatchesCommandHandler{
		uowFactory: uowFactory,
		locks:      locks,
		planner:    services.NewBatchPlanner(),
	}
}

// Handle loads pending orders, plans batches, and persists the plan: batch
// rows plus every member order flipped to batched. An empty pending set is a
// successful empty run.
func (h BuildBatchesCommandHandler) Handle(ctx context.Context, cmd BuildBatchesCommand) (BuildBatchesResult, error) {
	if err := cmd.Validate(); err != nil {
		return BuildBatchesResult{}, err
	}

	release, err := h.locks.Acquire(ctx, batchBuildLockKey)
	if err != nil {
		return BuildBatchesResult{}, err
	}
	defer release()

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return BuildBatchesResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	pending, err := uow.OrderRepository().GetAllPending(ctx)
	if err != nil {
		return BuildBatchesResult{}, err
	}

	plan, err := h.planner.Plan(pending, cmd.Algorithm(), cmd.MaxWeight(), cmd.MaxOrders())
	if err != nil {
		return BuildBatchesResult{}, err
	}

	byID := make(map[kernel.UUID]*order.Order, len(pending))
	for _, o := range pending {
		byID[o.ID()] = o
	}

	now := time.Now()
	result := BuildBatchesResult{Unbatchable: plan.Unbatchable}
	for _, proposal := range plan.Proposals {
		built, err := h.persistProposal(ctx, uow, proposal, byID, cmd, now)
		if err != nil {
			return BuildBatchesResult{}, err
		}
		result.Batches = append(result.Batches, built)
	}

	if err = uow.Commit(ctx); err != nil {
		return BuildBatchesResult{}, err
	}
	return result, nil
}

func (h BuildBatchesCommandHandler) persistProposal(
	ctx context.Context,
	uow BatchUoW,
	proposal services.BatchProposal,
	byID map[kernel.UUID]*order.Order,
	cmd BuildBatchesCommand,
	now time.Time,
) (BuiltBatch, error) {
	aggregate, err := batch.NewBatch(kernel.NewUUID(), cmd.MaxWeight(), cmd.MaxOrders(),
		proposal.Center, proposal.EstimatedKm, now)
	if err != nil {
		return BuiltBatch{}, err
	}

	for _, orderID := range proposal.OrderIDs {
		member := byID[orderID]
		if err = aggregate.AddOrder(orderID, member.TotalWeight()); err != nil {
			return BuiltBatch{}, err
		}
		if err = member.MarkBatched(aggregate.ID()); err != nil {
			return BuiltBatch{}, err
		}
		if err = uow.OrderRepository().Update(ctx, member); err != nil {
			return BuiltBatch{}, err
		}

		event, err := tracking.NewEvent(kernel.NewUUID(), orderID, member.Status(),
			nil, "order grouped into a delivery batch", now)
		if err != nil {
			return BuiltBatch{}, err
		}
		if err = uow.TrackingRepository().AddEvent(ctx, event); err != nil {
			return BuiltBatch{}, err
		}
	}

	if err = uow.BatchRepository().Add(ctx, aggregate); err != nil {
		return BuiltBatch{}, err
	}

	return BuiltBatch{
		BatchID:     aggregate.ID(),
		OrderIDs:    proposal.OrderIDs,
		Weight:      aggregate.CurrentWeight(),
		EstimatedKm: aggregate.EstimatedKm(),
	}, nil
}
