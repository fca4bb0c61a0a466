// Package invoicerepo provides data transfer objects and mapping functions
// for invoice persistence. It implements the repository pattern for the
// invoice aggregate, converting between domain entities and database rows.
package invoicerepo

import (
	"time"

	"fulfillment/internal/core/domain/model/invoice"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InvoiceDTO represents the database structure for persisting invoice
// aggregates. The invoice number carries a unique index so a duplicate
// import is rejected by the database rather than by a racy read.
type InvoiceDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	InvoiceNo     string    `gorm:"uniqueIndex;not null"`
	InvoiceDate   time.Time
	CustomerCode  string `gorm:"index"`
	CustomerName  string
	SalesmanName  string
	Priority      int
	Status        int `gorm:"index"`
	BillingStatus int
	TotalAmount   decimal.Decimal `gorm:"type:numeric(14,2)"`
	Remarks       string
	CreatedAt     time.Time
	CreatedBy     string

	Items []InvoiceItemDTO `gorm:"foreignKey:InvoiceID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for invoice entities.
func (InvoiceDTO) TableName() string {
	return "invoices"
}

// InvoiceItemDTO represents one invoice line in the database.
type InvoiceItemDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	InvoiceID     uuid.UUID `gorm:"type:uuid;index;not null"`
	Name          string
	ItemCode      string
	Barcode       string
	Quantity      int
	UnitPrice     decimal.Decimal `gorm:"type:numeric(14,2)"`
	BatchNo       string
	ExpiryDate    *time.Time
	ShelfLocation string
	Company       string
	PackingSize   string
}

// TableName specifies the database table name for invoice line entities.
func (InvoiceItemDTO) TableName() string {
	return "invoice_items"
}

// fromDomain converts an invoice aggregate to its database representation,
// including every line item.
func fromDomain(inv *invoice.Invoice) InvoiceDTO {
	items := make([]InvoiceItemDTO, 0, len(inv.Items()))
	for _, item := range inv.Items() {
		items = append(items, InvoiceItemDTO{
			ID:            item.ID().Bytes(),
			InvoiceID:     inv.ID().Bytes(),
			Name:          item.Name(),
			ItemCode:      item.ItemCode(),
			Barcode:       item.Barcode(),
			Quantity:      item.Quantity(),
			UnitPrice:     item.UnitPrice(),
			BatchNo:       item.BatchNo(),
			ExpiryDate:    item.ExpiryDate(),
			ShelfLocation: item.ShelfLocation(),
			Company:       item.Company(),
			PackingSize:   item.PackingSize(),
		})
	}

	return InvoiceDTO{
		ID:            inv.ID().Bytes(),
		InvoiceNo:     inv.Number(),
		InvoiceDate:   inv.Date(),
		CustomerCode:  inv.Customer().Code(),
		CustomerName:  inv.Customer().Name(),
		SalesmanName:  inv.SalesmanName(),
		Priority:      int(inv.Priority()),
		Status:        int(inv.Status()),
		BillingStatus: int(inv.BillingStatus()),
		TotalAmount:   inv.TotalAmount(),
		Remarks:       inv.Remarks(),
		CreatedAt:     inv.CreatedAt(),
		CreatedBy:     inv.CreatedBy(),
		Items:         items,
	}
}

// toDomain converts a database DTO back to an invoice aggregate using
// RestoreInvoice.
func toDomain(dto InvoiceDTO) (*invoice.Invoice, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customer, err := invoice.NewCustomer(dto.CustomerCode, dto.CustomerName)
	if err != nil {
		return nil, err
	}

	items := make([]*invoice.InvoiceItem, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		itemID, itemErr := kernel.UUIDFromBytes(itemDTO.ID[:])
		if itemErr != nil {
			return nil, itemErr
		}

		item, itemErr := invoice.RestoreInvoiceItem(
			itemID,
			itemDTO.Name,
			itemDTO.ItemCode,
			itemDTO.Barcode,
			itemDTO.Quantity,
			itemDTO.UnitPrice,
			itemDTO.BatchNo,
			itemDTO.ExpiryDate,
			itemDTO.ShelfLocation,
			itemDTO.Company,
			itemDTO.PackingSize,
		)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return invoice.RestoreInvoice(
		id,
		dto.InvoiceNo,
		dto.InvoiceDate,
		customer,
		dto.SalesmanName,
		invoice.Priority(dto.Priority),
		dto.TotalAmount,
		dto.Remarks,
		invoice.Status(dto.Status),
		invoice.BillingStatus(dto.BillingStatus),
		dto.CreatedBy,
		dto.CreatedAt,
		items,
	)
}
