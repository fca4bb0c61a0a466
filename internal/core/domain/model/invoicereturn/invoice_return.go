package invoicereturn

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/session"
	"fulfillment/internal/pkg/errs"
)

// ErrInvoiceReturnIsNotConstructed is returned when an InvoiceReturn instance
// was not created through NewInvoiceReturn or RestoreInvoiceReturn.
var ErrInvoiceReturnIsNotConstructed = errors.New("InvoiceReturn must be created via NewInvoiceReturn constructor")

// InvoiceReturn records one return-to-billing event: which invoice came back,
// from which fulfillment section, why, and later how the billing department
// resolved it. At most one open return exists per invoice; resolving it is
// what moves the invoice out of Review.
type InvoiceReturn struct {
	id         kernel.UUID
	invoiceID  kernel.UUID
	section    session.Stage
	reason     string
	returnedBy string
	returnedAt time.Time

	resolved       bool
	resolvedBy     string
	resolvedAt     *time.Time
	resolutionNote string

	isConstructed bool
}

// NewInvoiceReturn opens a return for the given invoice. The section is the
// stage the invoice was returned from and decides where fulfillment restarts
// after resolution.
func NewInvoiceReturn(
	id, invoiceID kernel.UUID,
	section session.Stage,
	reason string,
	returnedBy string,
	returnedAt time.Time,
) (*InvoiceReturn, error) {
	r := &InvoiceReturn{
		reason:        reason,
		returnedBy:    returnedBy,
		returnedAt:    returnedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		r.setID(id),
		r.setInvoiceID(invoiceID),
		r.setSection(section),
	); err != nil {
		return nil, err
	}

	if reason == "" {
		return nil, errs.NewValueIsRequiredError("return reason")
	}
	if returnedBy == "" {
		return nil, errs.NewValueIsRequiredError("returned by")
	}
	if returnedAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("returned at")
	}

	return r, nil
}

// RestoreInvoiceReturn reconstructs a return from persistence.
func RestoreInvoiceReturn(
	id, invoiceID kernel.UUID,
	section session.Stage,
	reason string,
	returnedBy string,
	returnedAt time.Time,
	resolved bool,
	resolvedBy string,
	resolvedAt *time.Time,
	resolutionNote string,
) (*InvoiceReturn, error) {
	r, err := NewInvoiceReturn(id, invoiceID, section, reason, returnedBy, returnedAt)
	if err != nil {
		return nil, err
	}
	r.resolved = resolved
	r.resolvedBy = resolvedBy
	r.resolvedAt = resolvedAt
	r.resolutionNote = resolutionNote
	return r, nil
}

// Validate ensures the InvoiceReturn instance was properly constructed.
func (r *InvoiceReturn) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrInvoiceReturnIsNotConstructed
	}
	return nil
}

func (r *InvoiceReturn) ID() kernel.UUID        { return r.id }
func (r *InvoiceReturn) InvoiceID() kernel.UUID { return r.invoiceID }
func (r *InvoiceReturn) Section() session.Stage { return r.section }
func (r *InvoiceReturn) Reason() string         { return r.reason }
func (r *InvoiceReturn) ReturnedBy() string     { return r.returnedBy }
func (r *InvoiceReturn) ReturnedAt() time.Time  { return r.returnedAt }
func (r *InvoiceReturn) Resolved() bool         { return r.resolved }
func (r *InvoiceReturn) ResolvedBy() string     { return r.resolvedBy }
func (r *InvoiceReturn) ResolvedAt() *time.Time { return r.resolvedAt }
func (r *InvoiceReturn) ResolutionNote() string { return r.resolutionNote }

// IsOpen reports whether the return still awaits a billing resolution.
func (r *InvoiceReturn) IsOpen() bool { return !r.resolved }

// Resolve closes the return with the billing user's note. A return is
// resolved exactly once.
func (r *InvoiceReturn) Resolve(by string, at time.Time, note string) error {
	if r.resolved {
		return errs.NewAlreadyCompletedError("RETURN", r.invoiceID.String())
	}
	if by == "" {
		return errs.NewValueIsRequiredError("resolved by")
	}
	if at.IsZero() {
		return errs.NewValueIsRequiredError("resolved at")
	}

	r.resolved = true
	r.resolvedBy = by
	r.resolvedAt = &at
	r.resolutionNote = note
	return nil
}

func (r *InvoiceReturn) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *InvoiceReturn) setInvoiceID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.invoiceID = id
	return nil
}

func (r *InvoiceReturn) setSection(section session.Stage) error {
	if err := section.Validate(); err != nil {
		return err
	}
	r.section = section
	return nil
}
