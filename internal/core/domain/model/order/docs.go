// Package order provides the Order aggregate and its lifecycle state machine.
//
// The package includes:
//   - Order: aggregate root owning identity, customer contact, delivery
//     coordinate, weighted item lines, amounts and lifecycle status
//   - Status: state machine enforcing pending -> batched -> assigned ->
//     in_transit -> delivered, with cancellation from any non-terminal state
//   - Customer, Item: validated value objects
//   - PaymentMethod: upi/cash/prepaid variant deciding whether delivery
//     completion is OTP-gated
//
// Orders are mutated only through transition methods, each of which enforces
// the monotonic forward rule of the lifecycle. Delivered and cancelled orders
// accept no further mutation.
package order
