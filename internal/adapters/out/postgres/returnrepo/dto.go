// Package returnrepo provides data transfer objects and mapping functions
// for return-to-billing records.
package returnrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/invoicereturn"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/session"

	"github.com/google/uuid"
)

// InvoiceReturnDTO represents a return-to-billing row. Resolved returns stay
// in the table as the correction history of the invoice; the partial unique
// index holds the at-most-one-open-return rule against concurrent writers.
type InvoiceReturnDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	InvoiceID      uuid.UUID `gorm:"type:uuid;index;not null;uniqueIndex:ux_invoice_returns_open,where:not resolved"`
	Section        int
	Reason         string
	ReturnedBy     string
	ReturnedAt     time.Time
	Resolved       bool `gorm:"index"`
	ResolvedBy     string
	ResolvedAt     *time.Time
	ResolutionNote string
}

// TableName specifies the database table name for invoice returns.
func (InvoiceReturnDTO) TableName() string {
	return "invoice_returns"
}

func fromDomain(r *invoicereturn.InvoiceReturn) InvoiceReturnDTO {
	return InvoiceReturnDTO{
		ID:             r.ID().Bytes(),
		InvoiceID:      r.InvoiceID().Bytes(),
		Section:        int(r.Section()),
		Reason:         r.Reason(),
		ReturnedBy:     r.ReturnedBy(),
		ReturnedAt:     r.ReturnedAt(),
		Resolved:       r.Resolved(),
		ResolvedBy:     r.ResolvedBy(),
		ResolvedAt:     r.ResolvedAt(),
		ResolutionNote: r.ResolutionNote(),
	}
}

func toDomain(dto InvoiceReturnDTO) (*invoicereturn.InvoiceReturn, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	invoiceID, err := kernel.UUIDFromBytes(dto.InvoiceID[:])
	if err != nil {
		return nil, err
	}

	return invoicereturn.RestoreInvoiceReturn(
		id,
		invoiceID,
		session.Stage(dto.Section),
		dto.Reason,
		dto.ReturnedBy,
		dto.ReturnedAt,
		dto.Resolved,
		dto.ResolvedBy,
		dto.ResolvedAt,
		dto.ResolutionNote,
	)
}
