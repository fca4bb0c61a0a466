package session

import (
	"strings"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// base carries the state shared by every stage session: identity, the invoice
// being worked, the assigned operator and the session lifecycle. The concrete
// session types embed it and add their stage-specific fields.
//
// Invariants:
//   - Exactly one session of a stage exists per invoice (enforced by storage)
//   - Sub-status moves initial -> terminal, or initial -> Review -> initial
//   - endedAt is set exactly when the session is in its terminal sub-status
type base struct {
	id        kernel.UUID
	invoiceID kernel.UUID
	stage     Stage
	operator  Operator
	subStatus SubStatus
	startedAt time.Time
	endedAt   *time.Time
	notes     string

	isConstructed bool
}

func newBase(id, invoiceID kernel.UUID, stage Stage, operator Operator, startedAt time.Time, notes string) (base, error) {
	if err := id.Validate(); err != nil {
		return base{}, err
	}
	if err := invoiceID.Validate(); err != nil {
		return base{}, err
	}
	if operator.IsZero() {
		return base{}, errs.NewValueIsRequiredError("operator")
	}
	if startedAt.IsZero() {
		return base{}, errs.NewValueIsRequiredError("started at")
	}

	return base{
		id:            id,
		invoiceID:     invoiceID,
		stage:         stage,
		operator:      operator,
		subStatus:     stage.InitialSubStatus(),
		startedAt:     startedAt,
		notes:         notes,
		isConstructed: true,
	}, nil
}

func (b *base) restore(subStatus SubStatus, endedAt *time.Time) error {
	if err := subStatus.Validate(); err != nil {
		return err
	}
	b.subStatus = subStatus
	b.endedAt = endedAt
	return nil
}

func (b *base) ID() kernel.UUID        { return b.id }
func (b *base) InvoiceID() kernel.UUID { return b.invoiceID }
func (b *base) Stage() Stage           { return b.stage }
func (b *base) Operator() Operator     { return b.operator }
func (b *base) SubStatus() SubStatus   { return b.subStatus }
func (b *base) StartedAt() time.Time   { return b.startedAt }
func (b *base) EndedAt() *time.Time    { return b.endedAt }
func (b *base) Notes() string          { return b.notes }

// IsCompleted reports whether the session reached its terminal sub-status.
func (b *base) IsCompleted() bool {
	return b.subStatus == b.stage.TerminalSubStatus()
}

// IsOpen reports whether the session is still in its in-progress sub-status.
func (b *base) IsOpen() bool {
	return b.subStatus == b.stage.InitialSubStatus()
}

// IsUnderReview reports whether the session's invoice was returned to billing
// while this session was open.
func (b *base) IsUnderReview() bool {
	return b.subStatus == SubStatusReview
}

// IsAssignedTo reports whether the given user email matches the operator the
// session was started by. The comparison is case-insensitive.
func (b *base) IsAssignedTo(email string) bool {
	return strings.EqualFold(b.operator.email, email)
}

// Reassign hands the session over to another operator.
func (b *base) Reassign(operator Operator) error {
	if operator.IsZero() {
		return errs.NewValueIsRequiredError("operator")
	}
	b.operator = operator
	return nil
}

// complete moves the session to its terminal sub-status. With redo set a
// session already in the terminal sub-status may be completed again, stamping
// a fresh end time.
func (b *base) complete(at time.Time, redo bool) error {
	if at.IsZero() {
		return errs.NewValueIsRequiredError("completed at")
	}
	if b.IsCompleted() && !redo {
		return errs.NewAlreadyCompletedError(b.stage.String(), b.invoiceID.String())
	}
	if !b.IsCompleted() && !b.IsOpen() {
		return errs.NewInvalidStateError(b.subStatus.String(), "complete "+strings.ToLower(b.stage.String()))
	}

	b.subStatus = b.stage.TerminalSubStatus()
	b.endedAt = &at
	return nil
}

// SendToReview parks the session while its invoice goes back to billing.
// Valid from the in-progress or terminal sub-status.
func (b *base) SendToReview() error {
	if b.subStatus == SubStatusReview {
		return errs.NewInvalidStateError(b.subStatus.String(), "send to review")
	}
	b.subStatus = SubStatusReview
	return nil
}

// reopen rolls a reviewed session back to its in-progress sub-status so the
// stage can be redone after the billing correction. The resolution note is
// appended to the session notes.
func (b *base) reopen(note string) error {
	if b.subStatus != SubStatusReview {
		return errs.NewInvalidStateError(b.subStatus.String(), "reopen")
	}
	b.subStatus = b.stage.InitialSubStatus()
	b.endedAt = nil
	b.appendNote(note)
	return nil
}

func (b *base) appendNote(note string) {
	if note == "" {
		return
	}
	if b.notes == "" {
		b.notes = note
		return
	}
	b.notes = b.notes + "; " + note
}
