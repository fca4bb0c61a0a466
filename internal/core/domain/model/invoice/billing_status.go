package invoice

import (
	"fulfillment/internal/pkg/errs"
)

// BillingStatus tracks the correction dimension of an invoice, parallel to the
// lifecycle Status. It records whether the invoice is mid-correction.
//
//	Normal ──> Review ──> ReInvoiced
//	              ^            │
//	              └────────────┘
//
// Review is entered by "return to billing" and left by resolving the return,
// which marks the invoice ReInvoiced. A re-invoiced invoice may be returned
// again later, moving back to Review.
type BillingStatus int

const (
	// BillingUnknown represents an invalid or undefined billing status.
	BillingUnknown BillingStatus = iota

	// BillingNormal is the default: the invoice has never been returned.
	BillingNormal

	// BillingReview indicates an unresolved InvoiceReturn exists.
	BillingReview

	// BillingReInvoiced indicates the latest return was resolved and the
	// reopened stage may be redone, relaxing identity/completion checks on
	// the flagged re-pick path.
	BillingReInvoiced
)

func getBillingStatusStrings() map[BillingStatus]string {
	return map[BillingStatus]string{
		BillingUnknown:    "Unknown",
		BillingNormal:     "Normal",
		BillingReview:     "Review",
		BillingReInvoiced: "ReInvoiced",
	}
}

// Validate checks if the BillingStatus value is valid.
func (s BillingStatus) Validate() error {
	switch s {
	case BillingNormal, BillingReview, BillingReInvoiced:
		return nil
	default:
		return errs.NewValueIsInvalidError("billing status")
	}
}

// String returns the human-readable name of the billing status.
func (s BillingStatus) String() string {
	if str, ok := getBillingStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}
