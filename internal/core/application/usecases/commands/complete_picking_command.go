package commands

import (
	"errors"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrCompletePickingCommandIsNotConstructed = errors.New(
	"CompletePickingCommand must be created via NewCompletePickingCommand constructor",
)

// CompletePickingCommand represents an operator confirming all goods of an
// invoice are picked. With isRepick set a supervisor-sanctioned re-pick may
// complete a session that already completed once, or one assigned to another
// operator.
type CompletePickingCommand struct { //nolint:recvcheck //using for validation
	invoiceNo string
	userEmail string
	isRepick  bool

	guard guard.ConstructorGuard
}

// NewCompletePickingCommand creates a command to complete picking an invoice.
func NewCompletePickingCommand(invoiceNo, userEmail string, isRepick bool) (CompletePickingCommand, error) {
	cmd := CompletePickingCommand{
		isRepick: isRepick,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setInvoiceNo(invoiceNo),
		cmd.setUserEmail(userEmail),
	); err != nil {
		return CompletePickingCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CompletePickingCommand) Validate() error {
	return c.guard.Validate(ErrCompletePickingCommandIsNotConstructed)
}

func (c CompletePickingCommand) InvoiceNo() string { return c.invoiceNo }
func (c CompletePickingCommand) UserEmail() string { return c.userEmail }
func (c CompletePickingCommand) IsRepick() bool    { return c.isRepick }

func (c *CompletePickingCommand) setInvoiceNo(invoiceNo string) error {
	if invoiceNo == "" {
		return errs.NewValueIsRequiredError("invoice number")
	}
	c.invoiceNo = invoiceNo
	return nil
}

func (c *CompletePickingCommand) setUserEmail(userEmail string) error {
	if userEmail == "" {
		return errs.NewValueIsRequiredError("user email")
	}
	c.userEmail = userEmail
	return nil
}
