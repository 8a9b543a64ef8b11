// Package tracking contains the append-only order tracking events that feed
// the customer facing tracking view.
package tracking
