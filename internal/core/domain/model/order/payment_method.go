package order

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// PaymentMethod is how the customer pays for an order. It decides whether
// delivery completion is OTP-gated: prepaid orders hand off directly, upi and
// cash orders require OTP verification before payment capture unlocks.
type PaymentMethod string

const (
	// PaymentUPI is collect-on-delivery via a UPI transfer.
	PaymentUPI PaymentMethod = "upi"
	// PaymentCash is collect-on-delivery in cash, tracked in the driver's
	// cash ledger.
	PaymentCash PaymentMethod = "cash"
	// PaymentPrepaid means the order was paid before dispatch.
	PaymentPrepaid PaymentMethod = "prepaid"
)

// PaymentMethodFromString parses the wire representation of a payment method.
func PaymentMethodFromString(s string) (PaymentMethod, error) {
	switch m := PaymentMethod(s); m {
	case PaymentUPI, PaymentCash, PaymentPrepaid:
		return m, nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("payment_method",
			fmt.Errorf("%q is not a valid payment method", s))
	}
}

// Validate checks the payment method is one of the defined variants.
func (m PaymentMethod) Validate() error {
	_, err := PaymentMethodFromString(string(m))
	return err
}

// IsPrepaid reports whether delivery completion skips the OTP gate.
func (m PaymentMethod) IsPrepaid() bool {
	return m == PaymentPrepaid
}

// String implements fmt.Stringer.
func (m PaymentMethod) String() string {
	return string(m)
}
