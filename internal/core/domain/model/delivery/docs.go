// Package delivery contains the Delivery aggregate: the per-order handover
// record tying an order, batch and driver together, and the confirmation code
// lifecycle. Codes are six digits, single use, expire after a TTL, and
// re-issuing on repeat arrival invalidates the previous code.
package delivery
