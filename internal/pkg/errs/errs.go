package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the application's failure taxonomy. Concrete error
// structs unwrap to these so callers can route with errors.Is.
var (
	ErrValueIsRequired   = errors.New("value is required")
	ErrValueIsInvalid    = errors.New("value is invalid")
	ErrValueIsOutOfRange = errors.New("value is out of range")
	ErrObjectNotFound    = errors.New("object not found")
	ErrConflict          = errors.New("conflict")
	ErrContention        = errors.New("contention")
)

// ConflictReason distinguishes the concrete conflict a request ran into.
type ConflictReason string

const (
	// ReasonAlreadyAssigned means a batch already has an active driver and is
	// no longer reassignable.
	ReasonAlreadyAssigned ConflictReason = "already_assigned"
	// ReasonDriverUnavailable means the driver is not in available status.
	ReasonDriverUnavailable ConflictReason = "driver_unavailable"
	// ReasonCapacityExceeded means a batch capacity limit would be violated.
	ReasonCapacityExceeded ConflictReason = "capacity_exceeded"
	// ReasonInsufficientBalance means a settlement exceeds the driver's
	// unsettled cash balance.
	ReasonInsufficientBalance ConflictReason = "insufficient_unsettled_balance"
	// ReasonInvalidTransition means an aggregate rejected a state change.
	ReasonInvalidTransition ConflictReason = "invalid_transition"
)

func sanitize(v any) string {
	return strings.ReplaceAll(fmt.Sprintf("%v", v), "\n", " ")
}

// ValueIsRequiredError indicates a required value is missing.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError for the named parameter.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping a cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ValueIsInvalidError indicates a value is malformed or violates a rule.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError for the named parameter.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping a cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError indicates a numeric value is outside its allowed bounds.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

// NewValueIsOutOfRangeError creates a ValueIsOutOfRangeError with the offending
// value and its allowed range.
func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

// NewValueIsOutOfRangeErrorWithCause creates a ValueIsOutOfRangeError wrapping a cause.
func NewValueIsOutOfRangeErrorWithCause(
	paramName string, value, minValue, maxValue any, cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	msg := fmt.Sprintf("%s: %s is %s, min value is %s, max value is %s",
		ErrValueIsInvalid, sanitize(e.Value), e.ParamName, sanitize(e.Min), sanitize(e.Max))
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %s)", msg, e.Cause)
	}
	return msg
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ObjectNotFoundError indicates a requested object does not exist.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError for the object named
// by paramName with the given identifier.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping a cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, e.ParamName, sanitize(e.ID), e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrObjectNotFound, sanitize(e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ConflictError indicates the request contradicts the current state of an
// entity. The Reason field tells callers which business rule was violated so
// they can retry with corrected input.
type ConflictError struct {
	Reason  ConflictReason
	Details string
	Cause   error
}

// NewConflictError creates a ConflictError with a reason and human-readable details.
func NewConflictError(reason ConflictReason, details string) *ConflictError {
	return &ConflictError{Reason: reason, Details: details}
}

// NewConflictErrorWithCause creates a ConflictError wrapping a cause.
func NewConflictErrorWithCause(reason ConflictReason, details string, cause error) *ConflictError {
	return &ConflictError{Reason: reason, Details: details, Cause: cause}
}

func (e *ConflictError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %s (cause: %s)", ErrConflict, e.Reason, e.Details, e.Cause)
	}
	return fmt.Sprintf("%s: %s: %s", ErrConflict, e.Reason, e.Details)
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}

// ContentionError indicates a per-entity lock could not be acquired within the
// configured timeout. The operation did not run; callers may retry with backoff.
type ContentionError struct {
	Resource string
	Cause    error
}

// NewContentionError creates a ContentionError for the named resource.
func NewContentionError(resource string) *ContentionError {
	return &ContentionError{Resource: resource}
}

// NewContentionErrorWithCause creates a ContentionError wrapping a cause.
func NewContentionErrorWithCause(resource string, cause error) *ContentionError {
	return &ContentionError{Resource: resource, Cause: cause}
}

func (e *ContentionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: lock timeout on %s (cause: %s)", ErrContention, e.Resource, e.Cause)
	}
	return fmt.Sprintf("%s: lock timeout on %s", ErrContention, e.Resource)
}

func (e *ContentionError) Unwrap() error {
	return ErrContention
}
