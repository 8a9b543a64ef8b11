package order

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// Status represents the lifecycle state of an order. It implements a state
// machine whose transitions are monotonic forward, with cancellation reachable
// from any non-terminal state:
//
//	Pending ──> Batched ──> Assigned ──> InTransit ──> Delivered
//	    │           │            │            │
//	    └───────────┴────────────┴────────────┴──> Cancelled
//
// Assigned -> Assigned is additionally allowed to support driver reassignment
// while a batch has not started.
type Status int

const (
	// Unknown represents an invalid or undefined status. This value (0) helps
	// catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of a submitted order awaiting batching.
	Pending

	// Batched indicates the order has been grouped into a batch.
	Batched

	// Assigned indicates the order's batch has been assigned to a driver.
	Assigned

	// InTransit indicates the driver has departed with the order.
	InTransit

	// Delivered is the successful terminal state, reached on handoff.
	Delivered

	// Cancelled is the terminal state for orders withdrawn before delivery.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Pending:   "pending",
		Batched:   "batched",
		Assigned:  "assigned",
		InTransit: "in_transit",
		Delivered: "delivered",
		Cancelled: "cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "pending",
		Batched:   "batched",
		Assigned:  "assigned",
		InTransit: "in_transit",
		Delivered: "delivered",
		Cancelled: "cancelled",
	}
}

// StatusFromString parses the wire representation of a status.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid order status", s))
}

// Validate checks if the Status value is one of the defined lifecycle states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the lowercase wire name of the status. Implements
// fmt.Stringer; safe to call on any value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// Batch transitions the status to Batched. Only Pending orders can be batched.
func (s Status) Batch() (Status, error) {
	if s != Pending {
		return 0, invalidTransition(s, "batch")
	}
	return Batched, nil
}

// Assign transitions the status to Assigned. Valid from Batched (initial
// assignment) and Assigned (driver reassignment before departure).
func (s Status) Assign() (Status, error) {
	if s != Batched && s != Assigned {
		return 0, invalidTransition(s, "assign")
	}
	return Assigned, nil
}

// Depart transitions the status to InTransit when the driver leaves for
// delivery. Valid only from Assigned.
func (s Status) Depart() (Status, error) {
	if s != Assigned {
		return 0, invalidTransition(s, "depart")
	}
	return InTransit, nil
}

// Deliver transitions the status to Delivered. Valid only from InTransit.
func (s Status) Deliver() (Status, error) {
	if s != InTransit {
		return 0, invalidTransition(s, "deliver")
	}
	return Delivered, nil
}

// Cancel transitions the status to Cancelled. Valid from any non-terminal
// state.
func (s Status) Cancel() (Status, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	if s.IsTerminal() {
		return 0, invalidTransition(s, "cancel")
	}
	return Cancelled, nil
}

func invalidTransition(s Status, action string) error {
	return errs.NewConflictError(errs.ReasonInvalidTransition,
		fmt.Sprintf("cannot %s order in %s status", action, s))
}
