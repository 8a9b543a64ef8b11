// Package errs provides standardized error types for the dispatch engine.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// The package includes error types for the engine's whole failure taxonomy:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value is malformed
//   - ValueIsOutOfRangeError: a numeric value is outside its allowed bounds
//   - ObjectNotFoundError: an order, batch, driver or payment cannot be found
//   - ConflictError: the request contradicts current state (a batch already
//     has an active driver, a driver is busy, a capacity limit would be
//     exceeded, an unsettled balance is too small)
//   - ContentionError: a per-entity lock could not be acquired in time;
//     transient and safe to retry with backoff
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is can route on the sentinel
//
// Conflict errors additionally carry a Reason constant so HTTP adapters and
// callers can distinguish AlreadyAssigned from DriverUnavailable without
// string matching.
package errs
