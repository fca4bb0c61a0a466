package session

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
)

// ErrPickingSessionIsNotConstructed is returned when a PickingSession instance
// was not created through NewPickingSession or RestorePickingSession.
var ErrPickingSessionIsNotConstructed = errors.New("PickingSession must be created via NewPickingSession constructor")

// PickingSession records one operator picking the goods of one invoice.
// It is created when picking starts and moves Preparing -> Picked, with the
// Review side state when the invoice is returned to billing mid-stage.
type PickingSession struct {
	base
}

// NewPickingSession starts a picking session for the given invoice, assigned
// to the operator who scanned in.
func NewPickingSession(id, invoiceID kernel.UUID, operator Operator, startedAt time.Time, notes string) (*PickingSession, error) {
	b, err := newBase(id, invoiceID, StagePicking, operator, startedAt, notes)
	if err != nil {
		return nil, err
	}
	return &PickingSession{base: b}, nil
}

// RestorePickingSession reconstructs a picking session from persistence.
func RestorePickingSession(
	id, invoiceID kernel.UUID,
	operator Operator,
	subStatus SubStatus,
	startedAt time.Time,
	endedAt *time.Time,
	notes string,
) (*PickingSession, error) {
	s, err := NewPickingSession(id, invoiceID, operator, startedAt, notes)
	if err != nil {
		return nil, err
	}
	if err = s.restore(subStatus, endedAt); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate ensures the session was properly constructed.
func (s *PickingSession) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrPickingSessionIsNotConstructed
	}
	return nil
}

// Complete marks the picking as done. With repick set, a session that already
// reached Picked may be completed again by the current operator, stamping a
// fresh end time.
func (s *PickingSession) Complete(at time.Time, repick bool) error {
	return s.complete(at, repick)
}

// Reopen rolls a reviewed session back to Preparing after the billing
// correction so the goods can be re-picked.
func (s *PickingSession) Reopen(note string) error {
	return s.reopen(note)
}
