package driver

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// Status represents the driver's availability state.
type Status int

const (
	// Unknown is the zero value and is never valid.
	Unknown Status = iota
	// Available means the driver is online and can take a batch.
	Available
	// OnDelivery means the driver is out delivering a batch.
	OnDelivery
	// Offline means the driver is not accepting work.
	Offline
)

var statusNames = map[Status]string{
	Available:  "available",
	OnDelivery: "on_delivery",
	Offline:    "offline",
}

// StatusFromString parses a wire representation of a driver status.
func StatusFromString(s string) (Status, error) {
	for status, name := range statusNames {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a driver status", s))
}

// Validate checks that the status is one of the defined states.
func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a driver status", int(s)))
	}
	return nil
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "unknown"
}
