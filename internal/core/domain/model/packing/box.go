package packing

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrBoxIsNotConstructed is returned when a Box instance was not created
// through the NewBox or RestoreBox factory methods.
var ErrBoxIsNotConstructed = errors.New("Box must be created via NewBox constructor")

// BoxItem assigns a quantity of one invoice line item to a box. Quantities
// are decimal because pharmaceutical goods are sold in fractional units.
type BoxItem struct {
	invoiceItemID kernel.UUID
	quantity      decimal.Decimal
}

// NewBoxItem creates a box line referencing an invoice item. The quantity
// must be strictly positive; removing goods from a box is done by omitting
// the line, never by a zero or negative entry.
func NewBoxItem(invoiceItemID kernel.UUID, quantity decimal.Decimal) (BoxItem, error) {
	if err := invoiceItemID.Validate(); err != nil {
		return BoxItem{}, err
	}
	if !quantity.IsPositive() {
		return BoxItem{}, errs.NewValueIsInvalidError("box item quantity")
	}
	return BoxItem{invoiceItemID: invoiceItemID, quantity: quantity}, nil
}

func (bi BoxItem) InvoiceItemID() kernel.UUID { return bi.invoiceItemID }
func (bi BoxItem) Quantity() decimal.Decimal  { return bi.quantity }

// Box is one physical carton packed during a packing session. Boxes are
// numbered sequentially within their session and sealed when packing
// completes; a sealed box is immutable.
type Box struct {
	id               kernel.UUID
	packingSessionID kernel.UUID
	invoiceID        kernel.UUID
	number           int
	sealed           bool
	sealedAt         *time.Time
	items            []BoxItem

	isConstructed bool
}

// NewBox creates an unsealed box holding the given item assignments.
// A box without items has no reason to exist and is rejected.
func NewBox(id, packingSessionID, invoiceID kernel.UUID, number int, items []BoxItem) (*Box, error) {
	box := &Box{
		number:        number,
		items:         items,
		isConstructed: true,
	}

	if err := errors.Join(
		box.setID(id),
		box.setPackingSessionID(packingSessionID),
		box.setInvoiceID(invoiceID),
	); err != nil {
		return nil, err
	}

	if number <= 0 {
		return nil, errs.NewValueIsOutOfRangeError("box number", number, 1, "unbounded")
	}
	if len(items) == 0 {
		return nil, errs.NewValueIsRequiredError("box items")
	}

	return box, nil
}

// RestoreBox reconstructs a box from persistence, including its seal state.
func RestoreBox(
	id, packingSessionID, invoiceID kernel.UUID,
	number int,
	sealed bool,
	sealedAt *time.Time,
	items []BoxItem,
) (*Box, error) {
	box, err := NewBox(id, packingSessionID, invoiceID, number, items)
	if err != nil {
		return nil, err
	}
	box.sealed = sealed
	box.sealedAt = sealedAt
	return box, nil
}

// Validate ensures the Box instance was properly constructed.
func (b *Box) Validate() error {
	if b == nil || !b.isConstructed {
		return ErrBoxIsNotConstructed
	}
	return nil
}

func (b *Box) ID() kernel.UUID               { return b.id }
func (b *Box) PackingSessionID() kernel.UUID { return b.packingSessionID }
func (b *Box) InvoiceID() kernel.UUID        { return b.invoiceID }
func (b *Box) Number() int                   { return b.number }
func (b *Box) Sealed() bool                  { return b.sealed }
func (b *Box) SealedAt() *time.Time          { return b.sealedAt }

// Items returns the item assignments in the box. Callers must not mutate the
// returned slice.
func (b *Box) Items() []BoxItem { return b.items }

// TotalQuantity returns the sum of all item quantities in the box.
func (b *Box) TotalQuantity() decimal.Decimal {
	total := decimal.Zero
	for _, item := range b.items {
		total = total.Add(item.quantity)
	}
	return total
}

// Seal closes the box. Sealing happens once, when the packing session
// completes after reconciliation.
func (b *Box) Seal(at time.Time) error {
	if b.sealed {
		return errs.NewInvalidStateError("sealed", "seal box")
	}
	if at.IsZero() {
		return errs.NewValueIsRequiredError("sealed at")
	}
	b.sealed = true
	b.sealedAt = &at
	return nil
}

func (b *Box) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	b.id = id
	return nil
}

func (b *Box) setPackingSessionID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	b.packingSessionID = id
	return nil
}

func (b *Box) setInvoiceID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	b.invoiceID = id
	return nil
}
