// Package ledger contains the driver cash ledger: append-only signed entries
// (collections, adjustments, settlements) whose sum is the driver's cash in
// hand, and the immutable Settlement records that zero out unsettled entries.
package ledger
