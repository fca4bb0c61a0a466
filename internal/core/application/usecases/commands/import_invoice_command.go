package commands

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/invoice"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrImportInvoiceCommandIsNotConstructed = errors.New(
	"ImportInvoiceCommand must be created via NewImportInvoiceCommand constructor",
)

// ImportInvoiceItem is one invoice line as delivered by the billing system.
type ImportInvoiceItem struct {
	Name          string
	ItemCode      string
	Barcode       string
	Quantity      int
	UnitPrice     decimal.Decimal
	BatchNo       string
	ExpiryDate    *time.Time
	ShelfLocation string
	Company       string
	PackingSize   string
}

// ImportInvoiceCommand represents a finalized invoice pushed in from the
// billing system to enter the fulfillment workflow.
type ImportInvoiceCommand struct { //nolint:recvcheck //using for validation
	invoiceNo    string
	date         time.Time
	customerCode string
	customerName string
	salesmanName string
	priority     invoice.Priority
	totalAmount  decimal.Decimal
	remarks      string
	createdBy    string
	items        []ImportInvoiceItem

	guard guard.ConstructorGuard
}

// NewImportInvoiceCommand creates a command to import an invoice. The
// priority is parsed from its wire name; an empty priority defaults to Medium.
func NewImportInvoiceCommand(
	invoiceNo string,
	date time.Time,
	customerCode string,
	customerName string,
	salesmanName string,
	priority string,
	totalAmount decimal.Decimal,
	remarks string,
	createdBy string,
	items []ImportInvoiceItem,
) (ImportInvoiceCommand, error) {
	cmd := ImportInvoiceCommand{
		date:         date,
		customerCode: customerCode,
		customerName: customerName,
		salesmanName: salesmanName,
		totalAmount:  totalAmount,
		remarks:      remarks,
		createdBy:    createdBy,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setInvoiceNo(invoiceNo),
		cmd.setPriority(priority),
		cmd.setItems(items),
	); err != nil {
		return ImportInvoiceCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ImportInvoiceCommand) Validate() error {
	return c.guard.Validate(ErrImportInvoiceCommandIsNotConstructed)
}

func (c ImportInvoiceCommand) InvoiceNo() string            { return c.invoiceNo }
func (c ImportInvoiceCommand) Date() time.Time              { return c.date }
func (c ImportInvoiceCommand) CustomerCode() string         { return c.customerCode }
func (c ImportInvoiceCommand) CustomerName() string         { return c.customerName }
func (c ImportInvoiceCommand) SalesmanName() string         { return c.salesmanName }
func (c ImportInvoiceCommand) Priority() invoice.Priority   { return c.priority }
func (c ImportInvoiceCommand) TotalAmount() decimal.Decimal { return c.totalAmount }
func (c ImportInvoiceCommand) Remarks() string              { return c.remarks }
func (c ImportInvoiceCommand) CreatedBy() string            { return c.createdBy }
func (c ImportInvoiceCommand) Items() []ImportInvoiceItem   { return c.items }

func (c *ImportInvoiceCommand) setInvoiceNo(invoiceNo string) error {
	if invoiceNo == "" {
		return errs.NewValueIsRequiredError("invoice number")
	}
	c.invoiceNo = invoiceNo
	return nil
}

func (c *ImportInvoiceCommand) setPriority(priority string) error {
	if priority == "" {
		c.priority = invoice.PriorityMedium
		return nil
	}

	parsed, err := invoice.PriorityFromString(priority)
	if err != nil {
		return err
	}
	c.priority = parsed
	return nil
}

func (c *ImportInvoiceCommand) setItems(items []ImportInvoiceItem) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("invoice items")
	}
	c.items = items
	return nil
}
