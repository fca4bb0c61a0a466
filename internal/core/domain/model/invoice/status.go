package invoice

import (
	"fulfillment/internal/pkg/errs"
)

// Status represents the lifecycle state of an invoice as it moves through
// operator-driven fulfillment stages. It implements a state machine with
// defined transitions so invoices always follow the correct workflow.
//
// State transitions:
//
//	Invoiced ──> Picking ──> Picked ──> Packing ──> Packed ──> Dispatched ──> Delivered
//	                │           │          │           │            │
//	                └───────────┴──────────┴───────────┴────────────┘
//	                                       │
//	                                       v
//	                                    Review ──> (Picking | Packing | Packed)
//
// The Review side state is reachable only through "return to billing" and is
// left only by resolving the associated InvoiceReturn, which reopens the stage
// the invoice was returned from. Delivered is terminal: no transitions leave it.
//
// Status is a value object that validates state transitions and provides
// string representations for persistence and display.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusInvoiced is the initial status assigned at import.
	// Invoices in this status are waiting for a picker to start work.
	StatusInvoiced

	// StatusPicking indicates an open picking session exists for the invoice.
	StatusPicking

	// StatusPicked indicates picking has completed and the invoice is waiting
	// for a packer.
	StatusPicked

	// StatusPacking indicates an open packing session exists for the invoice.
	StatusPacking

	// StatusPacked indicates packing has completed, every box is sealed, and
	// the invoice is waiting for dispatch.
	StatusPacked

	// StatusDispatched indicates an open delivery session exists for the invoice.
	StatusDispatched

	// StatusDelivered indicates the order reached the customer.
	// This is a final state with no further transitions allowed.
	StatusDelivered

	// StatusReview indicates the invoice was returned to billing for
	// correction. Paired with an unresolved InvoiceReturn record.
	StatusReview
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:    "Unknown",
		StatusInvoiced:   "Invoiced",
		StatusPicking:    "Picking",
		StatusPicked:     "Picked",
		StatusPacking:    "Packing",
		StatusPacked:     "Packed",
		StatusDispatched: "Dispatched",
		StatusDelivered:  "Delivered",
		StatusReview:     "Review",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusInvoiced:   "Invoiced",
		StatusPicking:    "Picking",
		StatusPicked:     "Picked",
		StatusPacking:    "Packing",
		StatusPacked:     "Packed",
		StatusDispatched: "Dispatched",
		StatusDelivered:  "Delivered",
		StatusReview:     "Review",
	}
}

// Validate checks if the Status value is valid.
// StatusUnknown (0) and any other values are invalid.
//
// This method is used to ensure Status values from external sources
// (e.g., database, API) are valid before use.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidError("status")
	}
	return nil
}

// String returns the human-readable name of the status.
// It implements fmt.Stringer and is safe to call on any Status value,
// including invalid ones, for which it returns "Unknown".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// StatusFromString parses a status name as stored or supplied by callers.
// The comparison is exact; an unrecognized name yields an error.
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidError("status")
}

// StartPicking transitions the status to Picking.
//
// Valid transitions:
//   - Invoiced -> Picking
//
// Returns (0, InvalidStateError) from any other status: a stage may never be
// skipped and work may not start twice.
func (s Status) StartPicking() (Status, error) {
	if s != StatusInvoiced {
		return 0, errs.NewInvalidStateError(s.String(), "start picking")
	}
	return StatusPicking, nil
}

// CompletePicking transitions the status to Picked.
//
// Valid transitions:
//   - Picking -> Picked
func (s Status) CompletePicking() (Status, error) {
	if s != StatusPicking {
		return 0, errs.NewInvalidStateError(s.String(), "complete picking")
	}
	return StatusPicked, nil
}

// StartPacking transitions the status to Packing.
//
// Valid transitions:
//   - Picked -> Packing
func (s Status) StartPacking() (Status, error) {
	if s != StatusPicked {
		return 0, errs.NewInvalidStateError(s.String(), "start packing")
	}
	return StatusPacking, nil
}

// CompletePacking transitions the status to Packed.
//
// Valid transitions:
//   - Packing -> Packed
func (s Status) CompletePacking() (Status, error) {
	if s != StatusPacking {
		return 0, errs.NewInvalidStateError(s.String(), "complete packing")
	}
	return StatusPacked, nil
}

// StartDelivery transitions the status to Dispatched.
//
// Valid transitions:
//   - Packed -> Dispatched
func (s Status) StartDelivery() (Status, error) {
	if s != StatusPacked {
		return 0, errs.NewInvalidStateError(s.String(), "start delivery")
	}
	return StatusDispatched, nil
}

// CompleteDelivery transitions the status to Delivered, the terminal state.
//
// Valid transitions:
//   - Dispatched -> Delivered
func (s Status) CompleteDelivery() (Status, error) {
	if s != StatusDispatched {
		return 0, errs.NewInvalidStateError(s.String(), "complete delivery")
	}
	return StatusDelivered, nil
}

// SendToReview transitions the status to Review.
//
// Valid transitions:
//   - Picking | Picked | Packing | Packed | Dispatched -> Review
//
// Invoiced invoices have nothing to return from, Delivered is terminal, and a
// Review invoice is already under review.
func (s Status) SendToReview() (Status, error) {
	if !s.CanReturnToBilling() {
		return 0, errs.NewInvalidStateError(s.String(), "return to billing")
	}
	return StatusReview, nil
}

// CanReturnToBilling reports whether "return to billing" is permitted from
// this status, without performing the transition.
func (s Status) CanReturnToBilling() bool {
	switch s {
	case StatusPicking, StatusPicked, StatusPacking, StatusPacked, StatusDispatched:
		return true
	default:
		return false
	}
}

// Reopen transitions the status out of Review back to a forward state.
//
// Valid targets are Picking, Packing, and Packed: the stage-appropriate
// restart point recorded when the invoice was returned. Resolving a review
// never advances an invoice past where it was returned from.
func (s Status) Reopen(target Status) (Status, error) {
	if s != StatusReview {
		return 0, errs.NewInvalidStateError(s.String(), "reopen")
	}
	switch target {
	case StatusPicking, StatusPacking, StatusPacked:
		return target, nil
	default:
		return 0, errs.NewInvalidStateError(target.String(), "reopen to")
	}
}
