package order

import (
	"errors"

	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// ErrCustomerIsNotConstructed is returned when a Customer was not created via
// the NewCustomer constructor.
var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")

// Customer is the immutable contact block of an order: who receives the
// delivery and where, down to the pincode used by the pincode clustering
// algorithm.
type Customer struct { //nolint:recvcheck //using for validation
	name    string
	phone   string
	address string
	pincode string

	guard guard.ConstructorGuard
}

// NewCustomer creates a validated customer contact. All fields are required.
func NewCustomer(name, phone, address, pincode string) (Customer, error) {
	c := Customer{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setName(name),
		c.setPhone(phone),
		c.setAddress(address),
		c.setPincode(pincode),
	); err != nil {
		return Customer{}, err
	}

	return c, nil
}

// Validate ensures the Customer was created through the constructor.
func (c Customer) Validate() error {
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

// Name returns the customer's name.
func (c Customer) Name() string { return c.name }

// Phone returns the customer's phone number, the destination for OTP delivery.
func (c Customer) Phone() string { return c.phone }

// Address returns the free-form delivery address.
func (c Customer) Address() string { return c.address }

// Pincode returns the postal code of the delivery address.
func (c Customer) Pincode() string { return c.pincode }

func (c *Customer) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("customer name")
	}
	c.name = name
	return nil
}

func (c *Customer) setPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("customer phone")
	}
	c.phone = phone
	return nil
}

func (c *Customer) setAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("customer address")
	}
	c.address = address
	return nil
}

func (c *Customer) setPincode(pincode string) error {
	if pincode == "" {
		return errs.NewValueIsRequiredError("pincode")
	}
	c.pincode = pincode
	return nil
}
