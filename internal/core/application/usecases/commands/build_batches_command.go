package commands

import (
	"errors"

	"dispatch/internal/core/domain/services"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var ErrBuildBatchesCommandIsNotConstructed = errors.New(
	"BuildBatchesCommand must be created via NewBuildBatchesCommand constructor",
)

// BuildBatchesCommand represents a request to group all pending orders into
// capacity-bounded batches.
type BuildBatchesCommand struct { //nolint:recvcheck //using for validation
	algorithm services.Algorithm
	maxWeight float64
	maxOrders int

	guard guard.ConstructorGuard
}

// NewBuildBatchesCommand creates a command to run the batch builder.
func NewBuildBatchesCommand(algorithm string, maxWeight float64, maxOrders int) (BuildBatchesCommand, error) {
	cmd := BuildBatchesCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setAlgorithm(algorithm),
		cmd.setMaxWeight(maxWeight),
		cmd.setMaxOrders(maxOrders),
	); err != nil {
		return BuildBatchesCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c BuildBatchesCommand) Validate() error {
	return c.guard.Validate(ErrBuildBatchesCommandIsNotConstructed)
}

// Algorithm returns the clustering strategy.
func (c BuildBatchesCommand) Algorithm() services.Algorithm { return c.algorithm }

// MaxWeight returns the per-batch weight cap in kilograms.
func (c BuildBatchesCommand) MaxWeight() float64 { return c.maxWeight }

// MaxOrders returns the per-batch order count cap.
func (c BuildBatchesCommand) MaxOrders() int { return c.maxOrders }

func (c *BuildBatchesCommand) setAlgorithm(algorithm string) error {
	parsed, err := services.AlgorithmFromString(algorithm)
	if err != nil {
		return err
	}
	c.algorithm = parsed
	return nil
}

func (c *BuildBatchesCommand) setMaxWeight(maxWeight float64) error {
	if maxWeight <= 0 {
		return errs.NewValueIsInvalidError("max_weight")
	}
	c.maxWeight = maxWeight
	return nil
}

func (c *BuildBatchesCommand) setMaxOrders(maxOrders int) error {
	if maxOrders <= 0 {
		return errs.NewValueIsInvalidError("max_orders")
	}
	c.maxOrders = maxOrders
	return nil
}
