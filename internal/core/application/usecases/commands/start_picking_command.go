package commands

import (
	"errors"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrStartPickingCommandIsNotConstructed = errors.New(
	"StartPickingCommand must be created via NewStartPickingCommand constructor",
)

// StartPickingCommand represents an operator scanning an invoice to begin
// picking its goods.
type StartPickingCommand struct { //nolint:recvcheck //using for validation
	invoiceNo string
	userEmail string
	notes     string

	guard guard.ConstructorGuard
}

// NewStartPickingCommand creates a command to start picking an invoice.
func NewStartPickingCommand(invoiceNo, userEmail, notes string) (StartPickingCommand, error) {
	cmd := StartPickingCommand{
		notes: notes,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setInvoiceNo(invoiceNo),
		cmd.setUserEmail(userEmail),
	); err != nil {
		return StartPickingCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c StartPickingCommand) Validate() error {
	return c.guard.Validate(ErrStartPickingCommandIsNotConstructed)
}

func (c StartPickingCommand) InvoiceNo() string { return c.invoiceNo }
func (c StartPickingCommand) UserEmail() string { return c.userEmail }
func (c StartPickingCommand) Notes() string     { return c.notes }

func (c *StartPickingCommand) setInvoiceNo(invoiceNo string) error {
	if invoiceNo == "" {
		return errs.NewValueIsRequiredError("invoice number")
	}
	c.invoiceNo = invoiceNo
	return nil
}

func (c *StartPickingCommand) setUserEmail(userEmail string) error {
	if userEmail == "" {
		return errs.NewValueIsRequiredError("user email")
	}
	c.userEmail = userEmail
	return nil
}
