package commands

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
)

// Locker serializes access to one entity across concurrent command handlers.
// Acquisition is context-bounded and returns ErrContention on timeout.
// internal/pkg/keylock provides the production implementation.
type Locker interface {
	Acquire(ctx context.Context, key string) (release func(), err error)
}

// Lock keys are role-prefixed, and handlers that hold more than one lock
// always acquire in the order driver, then batch, then order. A single
// builder-wide key serializes batch building.

const batchBuildLockKey = "batch:build"

func driverLockKey(id kernel.UUID) string { return "driver:" + id.String() }

func batchLockKey(id kernel.UUID) string { return "batch:" + id.String() }

func orderLockKey(id kernel.UUID) string { return "order:" + id.String() }
