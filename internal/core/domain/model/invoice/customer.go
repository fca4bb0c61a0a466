package invoice

import (
	"fulfillment/internal/pkg/errs"
)

// Customer identifies the ordering customer on an invoice. It is a value
// object: two customers with the same code and name are interchangeable.
type Customer struct {
	code string
	name string
}

// NewCustomer creates a customer reference. Both code and name are required.
func NewCustomer(code, name string) (Customer, error) {
	if code == "" {
		return Customer{}, errs.NewValueIsRequiredError("customer code")
	}
	if name == "" {
		return Customer{}, errs.NewValueIsRequiredError("customer name")
	}
	return Customer{code: code, name: name}, nil
}

func (c Customer) Code() string { return c.code }
func (c Customer) Name() string { return c.name }

// IsZero reports whether the customer reference is unset.
func (c Customer) IsZero() bool {
	return c.code == "" && c.name == ""
}
