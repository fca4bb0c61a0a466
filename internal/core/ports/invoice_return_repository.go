package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/invoicereturn"
	"fulfillment/internal/core/domain/model/kernel"
)

// InvoiceReturnRepository defines the persistence contract for
// return-to-billing records.
type InvoiceReturnRepository interface {
	// Add persists a new return record.
	Add(ctx context.Context, aggregate *invoicereturn.InvoiceReturn) error

	// Update persists changes to an existing return record.
	Update(ctx context.Context, aggregate *invoicereturn.InvoiceReturn) error

	// FindOpenByInvoiceID retrieves the unresolved return for the given
	// invoice. Returns (nil, nil) when no open return exists.
	FindOpenByInvoiceID(ctx context.Context, invoiceID kernel.UUID) (*invoicereturn.InvoiceReturn, error)
}
