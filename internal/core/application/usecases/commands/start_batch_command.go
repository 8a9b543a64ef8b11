package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrStartBatchCommandIsNotConstructed = errors.New(
	"StartBatchCommand must be created via NewStartBatchCommand constructor",
)

// StartBatchCommand represents a request to mark an assigned batch as
// departed.
type StartBatchCommand struct { //nolint:recvcheck //using for validation
	batchID kernel.UUID

	guard guard.ConstructorGuard
}

// NewStartBatchCommand creates a command to start a batch route.
func NewStartBatchCommand(batchID kernel.UUID) (StartBatchCommand, error) {
	cmd := StartBatchCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setBatchID(batchID); err != nil {
		return StartBatchCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c StartBatchCommand) Validate() error {
	return c.guard.Validate(ErrStartBatchCommandIsNotConstructed)
}

// BatchID returns the batch to start.
func (c StartBatchCommand) BatchID() kernel.UUID { return c.batchID }

func (c *StartBatchCommand) setBatchID(batchID kernel.UUID) error {
	if err := batchID.Validate(); err != nil {
		return err
	}
	c.batchID = batchID
	return nil
}
