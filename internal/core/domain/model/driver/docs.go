// Package driver contains the Driver aggregate: identity, vehicle details,
// availability and last reported position. Availability gates batch
// assignment, one active batch per driver at a time.
package driver
