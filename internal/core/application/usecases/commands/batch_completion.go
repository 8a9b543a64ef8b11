package commands

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
)

// batchCompletionRepos is the repository slice needed to settle a batch once
// its last order reaches a terminal state.
type batchCompletionRepos interface {
	OrderRepoFactory
	BatchRepoFactory
	DriverRepoFactory
}

// settleBatchIfDone completes the batch when every member order is delivered
// or cancelled, and returns its driver to the available pool. Callers invoke
// it inside their own transaction after flipping an order to a terminal
// state.
func settleBatchIfDone(ctx context.Context, repos batchCompletionRepos, batchID kernel.UUID) error {
	batchAggregate, err := repos.BatchRepository().GetForUpdate(ctx, batchID)
	if err != nil {
		return err
	}
	if !batchAggregate.Status().IsActive() {
		return nil
	}

	orders, err := repos.OrderRepository().GetByBatch(ctx, batchID)
	if err != nil {
		return err
	}
	for _, o := range orders {
		if !o.Status().IsTerminal() {
			return nil
		}
	}

	if err = batchAggregate.Complete(); err != nil {
		return err
	}
	if err = repos.BatchRepository().Update(ctx, batchAggregate); err != nil {
		return err
	}

	driverID := batchAggregate.Driver()
	if driverID == nil {
		return nil
	}

	driverAggregate, err := repos.DriverRepository().GetForUpdate(ctx, *driverID)
	if err != nil {
		return err
	}
	if err = driverAggregate.FinishDelivery(); err != nil {
		return err
	}
	return repos.DriverRepository().Update(ctx, driverAggregate)
}
