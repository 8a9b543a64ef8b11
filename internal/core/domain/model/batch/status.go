package batch

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// Status represents the lifecycle state of a batch:
//
//	Pending ──> Assigned ──> InProgress ──> Completed
//	    │           │
//	    └───────────┘
//	(driver reassignment allowed until departure)
//
// Completion is derived: a batch completes exactly when every contained order
// is delivered or cancelled, which can happen from any earlier state when all
// orders are cancelled before dispatch.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Pending is the initial status of a freshly built batch awaiting a driver.
	Pending

	// Assigned indicates a driver has been bound to the batch.
	Assigned

	// InProgress indicates the driver has departed on the route.
	InProgress

	// Completed is the terminal state once every order is delivered or cancelled.
	Completed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "unknown",
		Pending:    "pending",
		Assigned:   "assigned",
		InProgress: "in_progress",
		Completed:  "completed",
	}
}

// Validate checks if the Status value is one of the defined lifecycle states.
func (s Status) Validate() error {
	if s < Pending || s > Completed {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid batch status", s))
	}
	return nil
}

// String returns the lowercase wire name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsActive reports whether the batch occupies its driver: a driver with a
// batch in Assigned or InProgress cannot take another one.
func (s Status) IsActive() bool {
	return s == Assigned || s == InProgress
}

// Assign transitions the status to Assigned. Valid from Pending (initial
// assignment) and Assigned (driver reassignment before departure).
func (s Status) Assign() (Status, error) {
	if s != Pending && s != Assigned {
		return 0, errs.NewConflictError(errs.ReasonAlreadyAssigned,
			fmt.Sprintf("cannot assign driver to batch in %s status", s))
	}
	return Assigned, nil
}

// Start transitions the status to InProgress when the driver departs.
func (s Status) Start() (Status, error) {
	if s != Assigned {
		return 0, errs.NewConflictError(errs.ReasonInvalidTransition,
			fmt.Sprintf("cannot start batch in %s status", s))
	}
	return InProgress, nil
}

// Complete transitions the status to Completed. Allowed from any earlier
// state: a batch whose orders are all cancelled completes without ever being
// dispatched.
func (s Status) Complete() (Status, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	if s == Completed {
		return 0, errs.NewConflictError(errs.ReasonInvalidTransition,
			"batch is already completed")
	}
	return Completed, nil
}
