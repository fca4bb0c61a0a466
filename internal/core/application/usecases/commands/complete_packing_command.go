package commands

import (
	"errors"

	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrCompletePackingCommandIsNotConstructed = errors.New(
	"CompletePackingCommand must be created via NewCompletePackingCommand constructor",
)

// CompletePackingCommand represents an operator submitting the packed boxes
// of an invoice. The boxes must reconcile exactly against the invoice line
// items before the stage completes. With holdForConsolidation set, the packed
// invoice is kept back to be dispatched together with other invoices of the
// same customer. With isRepack set a supervisor-sanctioned re-pack may
// complete a session that already completed once, or one assigned to another
// operator.
type CompletePackingCommand struct { //nolint:recvcheck //using for validation
	invoiceNo            string
	userEmail            string
	boxes                []services.BoxProposal
	holdForConsolidation bool
	isRepack             bool

	guard guard.ConstructorGuard
}

// NewCompletePackingCommand creates a command to complete packing an invoice.
func NewCompletePackingCommand(
	invoiceNo, userEmail string,
	boxes []services.BoxProposal,
	holdForConsolidation bool,
	isRepack bool,
) (CompletePackingCommand, error) {
	cmd := CompletePackingCommand{
		holdForConsolidation: holdForConsolidation,
		isRepack:             isRepack,
		guard:                guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setInvoiceNo(invoiceNo),
		cmd.setUserEmail(userEmail),
		cmd.setBoxes(boxes),
	); err != nil {
		return CompletePackingCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CompletePackingCommand) Validate() error {
	return c.guard.Validate(ErrCompletePackingCommandIsNotConstructed)
}

func (c CompletePackingCommand) InvoiceNo() string             { return c.invoiceNo }
func (c CompletePackingCommand) UserEmail() string             { return c.userEmail }
func (c CompletePackingCommand) Boxes() []services.BoxProposal { return c.boxes }
func (c CompletePackingCommand) HoldForConsolidation() bool    { return c.holdForConsolidation }
func (c CompletePackingCommand) IsRepack() bool                { return c.isRepack }

func (c *CompletePackingCommand) setInvoiceNo(invoiceNo string) error {
	if invoiceNo == "" {
		return errs.NewValueIsRequiredError("invoice number")
	}
	c.invoiceNo = invoiceNo
	return nil
}

func (c *CompletePackingCommand) setUserEmail(userEmail string) error {
	if userEmail == "" {
		return errs.NewValueIsRequiredError("user email")
	}
	c.userEmail = userEmail
	return nil
}

func (c *CompletePackingCommand) setBoxes(boxes []services.BoxProposal) error {
	if len(boxes) == 0 {
		return errs.NewValueIsRequiredError("boxes")
	}
	c.boxes = boxes
	return nil
}
