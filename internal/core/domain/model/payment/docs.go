// Package payment contains the Payment aggregate: one capture attempt per
// order with a pending, completed, failed, refunded lifecycle.
package payment
