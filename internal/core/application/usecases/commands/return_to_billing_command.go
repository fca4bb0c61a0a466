package commands

import (
	"errors"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrReturnToBillingCommandIsNotConstructed = errors.New(
	"ReturnToBillingCommand must be created via NewReturnToBillingCommand constructor",
)

// ReturnToBillingCommand represents an operator sending an invoice back to
// the billing department because something about it is wrong (quantities,
// prices, damaged stock).
type ReturnToBillingCommand struct { //nolint:recvcheck //using for validation
	invoiceNo string
	userEmail string
	reason    string

	guard guard.ConstructorGuard
}

// NewReturnToBillingCommand creates a command to return an invoice to billing.
func NewReturnToBillingCommand(invoiceNo, userEmail, reason string) (ReturnToBillingCommand, error) {
	cmd := ReturnToBillingCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setInvoiceNo(invoiceNo),
		cmd.setUserEmail(userEmail),
		cmd.setReason(reason),
	); err != nil {
		return ReturnToBillingCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ReturnToBillingCommand) Validate() error {
	return c.guard.Validate(ErrReturnToBillingCommandIsNotConstructed)
}

func (c ReturnToBillingCommand) InvoiceNo() string { return c.invoiceNo }
func (c ReturnToBillingCommand) UserEmail() string { return c.userEmail }
func (c ReturnToBillingCommand) Reason() string    { return c.reason }

func (c *ReturnToBillingCommand) setInvoiceNo(invoiceNo string) error {
	if invoiceNo == "" {
		return errs.NewValueIsRequiredError("invoice number")
	}
	c.invoiceNo = invoiceNo
	return nil
}

func (c *ReturnToBillingCommand) setUserEmail(userEmail string) error {
	if userEmail == "" {
		return errs.NewValueIsRequiredError("user email")
	}
	c.userEmail = userEmail
	return nil
}

func (c *ReturnToBillingCommand) setReason(reason string) error {
	if reason == "" {
		return errs.NewValueIsRequiredError("return reason")
	}
	c.reason = reason
	return nil
}
