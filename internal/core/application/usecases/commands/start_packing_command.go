package commands

import (
	"errors"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrStartPackingCommandIsNotConstructed = errors.New(
	"StartPackingCommand must be created via NewStartPackingCommand constructor",
)

// StartPackingCommand represents an operator scanning a picked invoice to
// begin packing its goods into boxes.
type StartPackingCommand struct { //nolint:recvcheck //using for validation
	invoiceNo string
	userEmail string
	notes     string

	guard guard.ConstructorGuard
}

// NewStartPackingCommand creates a command to start packing an invoice.
func NewStartPackingCommand(invoiceNo, userEmail, notes string) (StartPackingCommand, error) {
	cmd := StartPackingCommand{
		notes: notes,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setInvoiceNo(invoiceNo),
		cmd.setUserEmail(userEmail),
	); err != nil {
		return StartPackingCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c StartPackingCommand) Validate() error {
	return c.guard.Validate(ErrStartPackingCommandIsNotConstructed)
}

func (c StartPackingCommand) InvoiceNo() string { return c.invoiceNo }
func (c StartPackingCommand) UserEmail() string { return c.userEmail }
func (c StartPackingCommand) Notes() string     { return c.notes }

func (c *StartPackingCommand) setInvoiceNo(invoiceNo string) error {
	if invoiceNo == "" {
		return errs.NewValueIsRequiredError("invoice number")
	}
	c.invoiceNo = invoiceNo
	return nil
}

func (c *StartPackingCommand) setUserEmail(userEmail string) error {
	if userEmail == "" {
		return errs.NewValueIsRequiredError("user email")
	}
	c.userEmail = userEmail
	return nil
}
