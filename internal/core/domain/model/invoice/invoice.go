package invoice

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrInvoiceIsNotConstructed is returned when an Invoice instance was not
// created through the NewInvoice or RestoreInvoice factory methods.
var ErrInvoiceIsNotConstructed = errors.New("Invoice must be created via NewInvoice constructor")

// Invoice represents one customer order and is the aggregate root of the
// fulfillment workflow. It holds the authoritative lifecycle status and the
// parallel billing status, and is the single serialization point per order:
// only the stage transition handlers and the return/review handlers mutate
// status and billing status.
//
// Invariants:
//   - The invoice number is unique and immutable once set
//   - Status transitions follow the Status state machine exclusively
//   - The billing status changes only alongside the Review transitions
//   - Line items always belong to exactly one invoice
type Invoice struct {
	id           kernel.UUID
	number       string
	date         time.Time
	customer     Customer
	salesmanName string
	totalAmount  decimal.Decimal
	remarks      string
	priority     Priority
	status       Status
	billing      BillingStatus
	createdAt    time.Time
	createdBy    string
	items        []*InvoiceItem

	isConstructed bool
}

// NewInvoice creates an invoice at import time. The invoice starts in
// Invoiced status with Normal billing status. Every line item must be
// constructed beforehand; an invoice without items cannot be fulfilled and is
// rejected.
func NewInvoice(
	id kernel.UUID,
	number string,
	date time.Time,
	customer Customer,
	salesmanName string,
	priority Priority,
	totalAmount decimal.Decimal,
	remarks string,
	createdBy string,
	createdAt time.Time,
	items []*InvoiceItem,
) (*Invoice, error) {
	inv := &Invoice{
		status:        StatusInvoiced,
		billing:       BillingNormal,
		remarks:       remarks,
		createdBy:     createdBy,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		inv.setID(id),
		inv.setNumber(number),
		inv.setDate(date),
		inv.setCustomer(customer),
		inv.setSalesmanName(salesmanName),
		inv.setPriority(priority),
		inv.setTotalAmount(totalAmount),
		inv.setItems(items),
	); err != nil {
		return nil, err
	}

	return inv, nil
}

// RestoreInvoice reconstructs an invoice from persistence, including its
// current lifecycle and billing status.
func RestoreInvoice(
	id kernel.UUID,
	number string,
	date time.Time,
	customer Customer,
	salesmanName string,
	priority Priority,
	totalAmount decimal.Decimal,
	remarks string,
	status Status,
	billing BillingStatus,
	createdBy string,
	createdAt time.Time,
	items []*InvoiceItem,
) (*Invoice, error) {
	inv, err := NewInvoice(id, number, date, customer, salesmanName, priority,
		totalAmount, remarks, createdBy, createdAt, items)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	if err = billing.Validate(); err != nil {
		return nil, err
	}

	inv.status = status
	inv.billing = billing
	return inv, nil
}

// Validate ensures the Invoice instance was properly constructed.
// Called when reconstructing invoices from persistence.
func (inv *Invoice) Validate() error {
	if inv == nil || !inv.isConstructed {
		return ErrInvoiceIsNotConstructed
	}
	return nil
}

// IsEqual compares two invoices by their unique identifiers.
func (inv *Invoice) IsEqual(other *Invoice) bool {
	return other != nil && inv.id.IsEqual(other.id)
}

func (inv *Invoice) ID() kernel.UUID              { return inv.id }
func (inv *Invoice) Number() string               { return inv.number }
func (inv *Invoice) Date() time.Time              { return inv.date }
func (inv *Invoice) Customer() Customer           { return inv.customer }
func (inv *Invoice) SalesmanName() string         { return inv.salesmanName }
func (inv *Invoice) TotalAmount() decimal.Decimal { return inv.totalAmount }
func (inv *Invoice) Remarks() string              { return inv.remarks }
func (inv *Invoice) Priority() Priority           { return inv.priority }
func (inv *Invoice) Status() Status               { return inv.status }
func (inv *Invoice) BillingStatus() BillingStatus { return inv.billing }
func (inv *Invoice) CreatedAt() time.Time         { return inv.createdAt }
func (inv *Invoice) CreatedBy() string            { return inv.createdBy }

// Items returns the invoice line items. The slice must not be mutated by
// callers; corrections go through ApplyCorrections.
func (inv *Invoice) Items() []*InvoiceItem { return inv.items }

// ItemByID returns the line item with the given identity, or nil.
func (inv *Invoice) ItemByID(id kernel.UUID) *InvoiceItem {
	for _, item := range inv.items {
		if item.ID().IsEqual(id) {
			return item
		}
	}
	return nil
}

// StartPicking moves the invoice into the Picking status.
// Valid only from Invoiced.
func (inv *Invoice) StartPicking() error { return inv.transition(Status.StartPicking) }

// CompletePicking moves the invoice into the Picked status.
// Valid only from Picking.
func (inv *Invoice) CompletePicking() error { return inv.transition(Status.CompletePicking) }

// StartPacking moves the invoice into the Packing status.
// Valid only from Picked.
func (inv *Invoice) StartPacking() error { return inv.transition(Status.StartPacking) }

// CompletePacking moves the invoice into the Packed status.
// Valid only from Packing.
func (inv *Invoice) CompletePacking() error { return inv.transition(Status.CompletePacking) }

// StartDelivery moves the invoice into the Dispatched status.
// Valid only from Packed.
func (inv *Invoice) StartDelivery() error { return inv.transition(Status.StartDelivery) }

// CompleteDelivery moves the invoice into the terminal Delivered status.
// Valid only from Dispatched.
func (inv *Invoice) CompleteDelivery() error { return inv.transition(Status.CompleteDelivery) }

// SendToReview moves the invoice into the Review status and flags the billing
// dimension as under review. Driven only by "return to billing".
func (inv *Invoice) SendToReview() error {
	if err := inv.transition(Status.SendToReview); err != nil {
		return err
	}
	inv.billing = BillingReview
	return nil
}

// Reopen resolves a review: the invoice returns to the stage-appropriate
// forward status and the billing status becomes ReInvoiced. It never advances
// the invoice past where it was returned from.
func (inv *Invoice) Reopen(target Status) error {
	newStatus, err := inv.status.Reopen(target)
	if err != nil {
		return err
	}
	inv.status = newStatus
	inv.billing = BillingReInvoiced
	return nil
}

func (inv *Invoice) transition(op func(Status) (Status, error)) error {
	newStatus, err := op(inv.status)
	if err != nil {
		return err
	}
	inv.status = newStatus
	return nil
}

// Corrections carries the field-level updates applied when a returned invoice
// is fixed. Nil pointer fields are left unchanged. Items are matched against
// existing line items by barcode first, then item code; unmatched entries are
// inserted as new items. With ReplaceItems set, existing items absent from
// the payload are deleted.
type Corrections struct {
	Date         *time.Time
	Customer     *Customer
	SalesmanName *string
	Priority     *Priority
	TotalAmount  *decimal.Decimal
	Remarks      *string
	Items        []*InvoiceItem
	ReplaceItems bool
}

// ApplyCorrections applies field-level corrections to the invoice and its
// line items. The invoice number is immutable and never corrected.
func (inv *Invoice) ApplyCorrections(c Corrections) error {
	if c.Date != nil {
		if err := inv.setDate(*c.Date); err != nil {
			return err
		}
	}
	if c.Customer != nil {
		if err := inv.setCustomer(*c.Customer); err != nil {
			return err
		}
	}
	if c.SalesmanName != nil {
		if err := inv.setSalesmanName(*c.SalesmanName); err != nil {
			return err
		}
	}
	if c.Priority != nil {
		if err := inv.setPriority(*c.Priority); err != nil {
			return err
		}
	}
	if c.TotalAmount != nil {
		if err := inv.setTotalAmount(*c.TotalAmount); err != nil {
			return err
		}
	}
	if c.Remarks != nil {
		inv.remarks = *c.Remarks
	}

	if len(c.Items) == 0 {
		return nil
	}

	matched := make(map[*InvoiceItem]bool, len(inv.items))
	for _, corrected := range c.Items {
		if err := corrected.Validate(); err != nil {
			return err
		}

		var target *InvoiceItem
		for _, existing := range inv.items {
			if existing.matches(corrected) {
				target = existing
				break
			}
		}

		if target != nil {
			target.applyCorrection(corrected)
			matched[target] = true
			continue
		}
		inv.items = append(inv.items, corrected)
		matched[corrected] = true
	}

	if c.ReplaceItems {
		kept := make([]*InvoiceItem, 0, len(inv.items))
		for _, item := range inv.items {
			if matched[item] {
				kept = append(kept, item)
			}
		}
		inv.items = kept
	}

	return nil
}

func (inv *Invoice) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	inv.id = id
	return nil
}

func (inv *Invoice) setNumber(number string) error {
	if number == "" {
		return errs.NewValueIsRequiredError("invoice number")
	}
	inv.number = number
	return nil
}

func (inv *Invoice) setDate(date time.Time) error {
	if date.IsZero() {
		return errs.NewValueIsRequiredError("invoice date")
	}
	inv.date = date
	return nil
}

func (inv *Invoice) setCustomer(customer Customer) error {
	if customer.IsZero() {
		return errs.NewValueIsRequiredError("customer")
	}
	inv.customer = customer
	return nil
}

func (inv *Invoice) setSalesmanName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("salesman name")
	}
	inv.salesmanName = name
	return nil
}

func (inv *Invoice) setPriority(priority Priority) error {
	if err := priority.Validate(); err != nil {
		return err
	}
	inv.priority = priority
	return nil
}

func (inv *Invoice) setTotalAmount(total decimal.Decimal) error {
	if total.IsNegative() {
		return errs.NewValueIsInvalidError("total amount")
	}
	inv.totalAmount = total
	return nil
}

func (inv *Invoice) setItems(items []*InvoiceItem) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("invoice items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	inv.items = items
	return nil
}
