package commands

import (
	"errors"
	"time"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrResolveInvoiceCommandIsNotConstructed = errors.New(
	"ResolveInvoiceCommand must be created via NewResolveInvoiceCommand constructor",
)

// InvoiceCorrections carries the field-level changes the billing department
// made while resolving a return. Nil fields are left unchanged. Correcting
// the customer requires both code and name. Items are matched against the
// existing line items by barcode, then item code; with ReplaceItems set,
// existing items absent from the payload are removed.
type InvoiceCorrections struct {
	Date         *time.Time
	CustomerCode *string
	CustomerName *string
	SalesmanName *string
	Priority     *string
	TotalAmount  *decimal.Decimal
	Remarks      *string
	Items        []ImportInvoiceItem
	ReplaceItems bool
}

// ResolveInvoiceCommand represents the billing department closing an open
// return: recording how it was resolved, applying the corrections, and
// reopening the invoice at the stage it was returned from.
type ResolveInvoiceCommand struct { //nolint:recvcheck //using for validation
	invoiceNo   string
	userEmail   string
	note        string
	corrections *InvoiceCorrections

	guard guard.ConstructorGuard
}

// NewResolveInvoiceCommand creates a command to resolve a returned invoice.
// Corrections are optional; a return can be resolved as-is.
func NewResolveInvoiceCommand(invoiceNo, userEmail, note string, corrections *InvoiceCorrections) (ResolveInvoiceCommand, error) {
	cmd := ResolveInvoiceCommand{
		note:        note,
		corrections: corrections,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setInvoiceNo(invoiceNo),
		cmd.setUserEmail(userEmail),
	); err != nil {
		return ResolveInvoiceCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ResolveInvoiceCommand) Validate() error {
	return c.guard.Validate(ErrResolveInvoiceCommandIsNotConstructed)
}

func (c ResolveInvoiceCommand) InvoiceNo() string                { return c.invoiceNo }
func (c ResolveInvoiceCommand) UserEmail() string                { return c.userEmail }
func (c ResolveInvoiceCommand) Note() string                     { return c.note }
func (c ResolveInvoiceCommand) Corrections() *InvoiceCorrections { return c.corrections }

func (c *ResolveInvoiceCommand) setInvoiceNo(invoiceNo string) error {
	if invoiceNo == "" {
		return errs.NewValueIsRequiredError("invoice number")
	}
	c.invoiceNo = invoiceNo
	return nil
}

func (c *ResolveInvoiceCommand) setUserEmail(userEmail string) error {
	if userEmail == "" {
		return errs.NewValueIsRequiredError("user email")
	}
	c.userEmail = userEmail
	return nil
}
