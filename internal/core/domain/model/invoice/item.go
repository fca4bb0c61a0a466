package invoice

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrInvoiceItemIsNotConstructed is returned when an InvoiceItem was not
// created through NewInvoiceItem or RestoreInvoiceItem.
var ErrInvoiceItemIsNotConstructed = errors.New("InvoiceItem must be created via NewInvoiceItem constructor")

// InvoiceItem is one line item belonging to exactly one Invoice. Items are
// owned by their invoice: they are created at import and replaced wholesale
// when the invoice is corrected during review resolution.
type InvoiceItem struct {
	id            kernel.UUID
	name          string
	itemCode      string
	barcode       string
	quantity      int
	unitPrice     decimal.Decimal
	batchNo       string
	expiryDate    *time.Time
	shelfLocation string
	company       string
	packingSize   string

	isConstructed bool
}

// NewInvoiceItem creates a line item with validation. The barcode is
// optional; name and item code are required and quantity must be positive.
func NewInvoiceItem(
	id kernel.UUID,
	name string,
	itemCode string,
	barcode string,
	quantity int,
	unitPrice decimal.Decimal,
	batchNo string,
	expiryDate *time.Time,
	shelfLocation string,
	company string,
	packingSize string,
) (*InvoiceItem, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("item name")
	}
	if itemCode == "" {
		return nil, errs.NewValueIsRequiredError("item code")
	}
	if quantity <= 0 {
		return nil, errs.NewValueIsOutOfRangeError("item quantity", quantity, 1, "unbounded")
	}
	if unitPrice.IsNegative() {
		return nil, errs.NewValueIsInvalidError("unit price")
	}

	return &InvoiceItem{
		id:            id,
		name:          name,
		itemCode:      itemCode,
		barcode:       barcode,
		quantity:      quantity,
		unitPrice:     unitPrice,
		batchNo:       batchNo,
		expiryDate:    expiryDate,
		shelfLocation: shelfLocation,
		company:       company,
		packingSize:   packingSize,
		isConstructed: true,
	}, nil
}

// RestoreInvoiceItem reconstructs a line item from persistence.
// It applies the same validation rules as NewInvoiceItem.
func RestoreInvoiceItem(
	id kernel.UUID,
	name string,
	itemCode string,
	barcode string,
	quantity int,
	unitPrice decimal.Decimal,
	batchNo string,
	expiryDate *time.Time,
	shelfLocation string,
	company string,
	packingSize string,
) (*InvoiceItem, error) {
	return NewInvoiceItem(id, name, itemCode, barcode, quantity, unitPrice,
		batchNo, expiryDate, shelfLocation, company, packingSize)
}

// Validate ensures the item was created through a constructor.
func (i *InvoiceItem) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrInvoiceItemIsNotConstructed
	}
	return nil
}

func (i *InvoiceItem) ID() kernel.UUID              { return i.id }
func (i *InvoiceItem) Name() string                 { return i.name }
func (i *InvoiceItem) ItemCode() string             { return i.itemCode }
func (i *InvoiceItem) Barcode() string              { return i.barcode }
func (i *InvoiceItem) Quantity() int                { return i.quantity }
func (i *InvoiceItem) UnitPrice() decimal.Decimal   { return i.unitPrice }
func (i *InvoiceItem) BatchNo() string              { return i.batchNo }
func (i *InvoiceItem) ExpiryDate() *time.Time       { return i.expiryDate }
func (i *InvoiceItem) ShelfLocation() string        { return i.shelfLocation }
func (i *InvoiceItem) Company() string              { return i.company }
func (i *InvoiceItem) PackingSize() string          { return i.packingSize }
func (i *InvoiceItem) RequiredQty() decimal.Decimal { return decimal.NewFromInt(int64(i.quantity)) }

// matches reports whether a corrected payload entry refers to this item:
// barcode match first when both carry one, item code match second.
func (i *InvoiceItem) matches(other *InvoiceItem) bool {
	if i.barcode != "" && other.barcode != "" {
		return i.barcode == other.barcode
	}
	return i.itemCode == other.itemCode
}

// applyCorrection copies the corrected fields from the payload entry,
// preserving this item's identity.
func (i *InvoiceItem) applyCorrection(other *InvoiceItem) {
	i.name = other.name
	i.itemCode = other.itemCode
	if other.barcode != "" {
		i.barcode = other.barcode
	}
	i.quantity = other.quantity
	i.unitPrice = other.unitPrice
	i.batchNo = other.batchNo
	i.expiryDate = other.expiryDate
	i.shelfLocation = other.shelfLocation
	i.company = other.company
	i.packingSize = other.packingSize
}
