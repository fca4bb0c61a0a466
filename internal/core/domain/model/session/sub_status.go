package session

import (
	"fulfillment/internal/pkg/errs"
)

// SubStatus represents the state of a single stage session, distinct from the
// invoice lifecycle status. Each stage uses its own in-progress and terminal
// values plus a shared Review side state:
//
//	Preparing  ──> Picked      (picking)
//	InProgress ──> Packed      (packing)
//	InTransit  ──> Delivered   (delivery)
//	     │            │
//	     └──> Review <┘        (return to billing; rolled back only by resolution)
type SubStatus int

const (
	SubStatusUnknown SubStatus = iota

	// SubStatusPreparing is the in-progress value of a picking session.
	SubStatusPreparing

	// SubStatusInProgress is the in-progress value of a packing session.
	SubStatusInProgress

	// SubStatusInTransit is the in-progress value of a delivery session.
	SubStatusInTransit

	// SubStatusPicked is the terminal value of a picking session.
	SubStatusPicked

	// SubStatusPacked is the terminal value of a packing session.
	SubStatusPacked

	// SubStatusDelivered is the terminal value of a delivery session.
	SubStatusDelivered

	// SubStatusReview marks a session whose invoice was returned to billing.
	SubStatusReview
)

func getSubStatusStrings() map[SubStatus]string {
	return map[SubStatus]string{
		SubStatusUnknown:    "Unknown",
		SubStatusPreparing:  "Preparing",
		SubStatusInProgress: "InProgress",
		SubStatusInTransit:  "InTransit",
		SubStatusPicked:     "Picked",
		SubStatusPacked:     "Packed",
		SubStatusDelivered:  "Delivered",
		SubStatusReview:     "Review",
	}
}

// Validate checks if the SubStatus value is valid.
func (s SubStatus) Validate() error {
	if s <= SubStatusUnknown || s > SubStatusReview {
		return errs.NewValueIsInvalidError("sub-status")
	}
	return nil
}

// String returns the human-readable name of the sub-status.
func (s SubStatus) String() string {
	if str, ok := getSubStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// InitialSubStatus returns the in-progress value a freshly started session of
// the stage carries.
func (s Stage) InitialSubStatus() SubStatus {
	switch s {
	case StagePicking:
		return SubStatusPreparing
	case StagePacking:
		return SubStatusInProgress
	case StageDelivery:
		return SubStatusInTransit
	default:
		return SubStatusUnknown
	}
}

// TerminalSubStatus returns the value a completed session of the stage carries.
func (s Stage) TerminalSubStatus() SubStatus {
	switch s {
	case StagePicking:
		return SubStatusPicked
	case StagePacking:
		return SubStatusPacked
	case StageDelivery:
		return SubStatusDelivered
	default:
		return SubStatusUnknown
	}
}
