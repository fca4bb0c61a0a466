package invoice

import (
	"strings"

	"fulfillment/internal/pkg/errs"
)

// Priority orders invoices for operator attention. It does not affect the
// status machine.
type Priority int

const (
	PriorityUnknown Priority = iota
	PriorityLow
	PriorityMedium
	PriorityHigh
)

func getPriorityStrings() map[Priority]string {
	return map[Priority]string{
		PriorityUnknown: "Unknown",
		PriorityLow:     "Low",
		PriorityMedium:  "Medium",
		PriorityHigh:    "High",
	}
}

// Validate checks if the Priority value is valid.
func (p Priority) Validate() error {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return nil
	default:
		return errs.NewValueIsInvalidError("priority")
	}
}

// String returns the human-readable name of the priority.
func (p Priority) String() string {
	if str, ok := getPriorityStrings()[p]; ok {
		return str
	}
	return "Unknown"
}

// PriorityFromString parses a priority name supplied by callers.
// Matching is case-insensitive because the billing system sends upper-case
// names while the API uses mixed case.
func PriorityFromString(s string) (Priority, error) {
	switch strings.ToUpper(s) {
	case "LOW":
		return PriorityLow, nil
	case "MEDIUM":
		return PriorityMedium, nil
	case "HIGH":
		return PriorityHigh, nil
	default:
		return PriorityUnknown, errs.NewValueIsInvalidError("priority")
	}
}
