package session

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// ErrPackingSessionIsNotConstructed is returned when a PackingSession instance
// was not created through NewPackingSession or RestorePackingSession.
var ErrPackingSessionIsNotConstructed = errors.New("PackingSession must be created via NewPackingSession constructor")

// PackingSession records one operator packing the picked goods of one invoice
// into boxes. It moves InProgress -> Packed. The boxes themselves live in the
// packing model and are attached when the session completes; the session only
// tracks who packs and whether the packed boxes are held back for
// consolidation with other invoices of the same customer.
type PackingSession struct {
	base

	holdForConsolidation  bool
	consolidationCustomer string
	heldBy                string
}

// NewPackingSession starts a packing session for the given invoice.
func NewPackingSession(id, invoiceID kernel.UUID, operator Operator, startedAt time.Time, notes string) (*PackingSession, error) {
	b, err := newBase(id, invoiceID, StagePacking, operator, startedAt, notes)
	if err != nil {
		return nil, err
	}
	return &PackingSession{base: b}, nil
}

// RestorePackingSession reconstructs a packing session from persistence.
func RestorePackingSession(
	id, invoiceID kernel.UUID,
	operator Operator,
	subStatus SubStatus,
	startedAt time.Time,
	endedAt *time.Time,
	notes string,
	holdForConsolidation bool,
	consolidationCustomer string,
	heldBy string,
) (*PackingSession, error) {
	s, err := NewPackingSession(id, invoiceID, operator, startedAt, notes)
	if err != nil {
		return nil, err
	}
	if err = s.restore(subStatus, endedAt); err != nil {
		return nil, err
	}
	s.holdForConsolidation = holdForConsolidation
	s.consolidationCustomer = consolidationCustomer
	s.heldBy = heldBy
	return s, nil
}

// Validate ensures the session was properly constructed.
func (s *PackingSession) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrPackingSessionIsNotConstructed
	}
	return nil
}

func (s *PackingSession) HoldForConsolidation() bool    { return s.holdForConsolidation }
func (s *PackingSession) ConsolidationCustomer() string { return s.consolidationCustomer }
func (s *PackingSession) HeldBy() string                { return s.heldBy }

// Complete marks the packing as done. Box contents must have been reconciled
// against the invoice items before calling. With repack set a session that
// already completed once may be completed again, stamping a fresh end time.
func (s *PackingSession) Complete(at time.Time, repack bool) error {
	return s.complete(at, repack)
}

// Hold flags the completed boxes to be kept back and dispatched together with
// other invoices of the same customer.
func (s *PackingSession) Hold(customerCode, heldBy string) error {
	if customerCode == "" {
		return errs.NewValueIsRequiredError("consolidation customer")
	}
	if heldBy == "" {
		return errs.NewValueIsRequiredError("held by")
	}
	s.holdForConsolidation = true
	s.consolidationCustomer = customerCode
	s.heldBy = heldBy
	return nil
}

// Release clears the consolidation hold so the invoice can be dispatched.
func (s *PackingSession) Release() {
	s.holdForConsolidation = false
	s.consolidationCustomer = ""
	s.heldBy = ""
}

// Reopen rolls a reviewed session back to InProgress after the billing
// correction so the invoice can be re-packed.
func (s *PackingSession) Reopen(note string) error {
	return s.reopen(note)
}
