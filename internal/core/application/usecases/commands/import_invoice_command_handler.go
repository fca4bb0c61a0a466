package commands

import (
	"context"
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/invoice"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// ImportInvoiceCommandHandler handles the invoice import from the billing
// system. Imported invoices enter the workflow in Invoiced status.
type ImportInvoiceCommandHandler struct {
	uowFactory InvoiceUoWFactory
}

// NewImportInvoiceCommandHandler creates a handler for invoice imports.
func NewImportInvoiceCommandHandler(uowFactory InvoiceUoWFactory) ImportInvoiceCommandHandler {
	return ImportInvoiceCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the invoice import command and returns the identifier of
// the created invoice. Importing an invoice number that already exists is a
// conflict; corrections to existing invoices go through the review
// resolution instead.
func (h *ImportInvoiceCommandHandler) Handle(ctx context.Context, cmd ImportInvoiceCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	invoiceRepo := uow.InvoiceRepository()

	_, err := invoiceRepo.GetByNumber(ctx, cmd.InvoiceNo())
	if err == nil {
		return kernel.UUID{}, errs.NewConflictError("invoice", cmd.InvoiceNo()+" already exists")
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return kernel.UUID{}, err
	}

	inv, err := buildInvoice(cmd)
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = invoiceRepo.Add(ctx, inv); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return inv.ID(), nil
}

func buildInvoice(cmd ImportInvoiceCommand) (*invoice.Invoice, error) {
	customer, err := invoice.NewCustomer(cmd.CustomerCode(), cmd.CustomerName())
	if err != nil {
		return nil, err
	}

	items, err := buildItems(cmd.Items())
	if err != nil {
		return nil, err
	}

	return invoice.NewInvoice(
		kernel.NewUUID(),
		cmd.InvoiceNo(),
		cmd.Date(),
		customer,
		cmd.SalesmanName(),
		cmd.Priority(),
		cmd.TotalAmount(),
		cmd.Remarks(),
		cmd.CreatedBy(),
		time.Now(),
		items,
	)
}

func buildItems(lines []ImportInvoiceItem) ([]*invoice.InvoiceItem, error) {
	items := make([]*invoice.InvoiceItem, 0, len(lines))
	for _, line := range lines {
		item, err := invoice.NewInvoiceItem(
			kernel.NewUUID(),
			line.Name,
			line.ItemCode,
			line.Barcode,
			line.Quantity,
			line.UnitPrice,
			line.BatchNo,
			line.ExpiryDate,
			line.ShelfLocation,
			line.Company,
			line.PackingSize,
		)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}
