package session

import (
	"fulfillment/internal/core/domain/model/invoice"
	"fulfillment/internal/pkg/errs"
)

// Stage identifies one operator-performed phase of invoice fulfillment.
type Stage int

const (
	StageUnknown Stage = iota
	StagePicking
	StagePacking
	StageDelivery
)

func getStageStrings() map[Stage]string {
	return map[Stage]string{
		StageUnknown:  "Unknown",
		StagePicking:  "PICKING",
		StagePacking:  "PACKING",
		StageDelivery: "DELIVERY",
	}
}

// Validate checks if the Stage value is valid.
func (s Stage) Validate() error {
	switch s {
	case StagePicking, StagePacking, StageDelivery:
		return nil
	default:
		return errs.NewValueIsInvalidError("stage")
	}
}

// String returns the section name as recorded on InvoiceReturn rows.
func (s Stage) String() string {
	if str, ok := getStageStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// StageFromString parses a section name as stored on InvoiceReturn rows.
func StageFromString(s string) (Stage, error) {
	switch s {
	case "PICKING":
		return StagePicking, nil
	case "PACKING":
		return StagePacking, nil
	case "DELIVERY":
		return StageDelivery, nil
	default:
		return StageUnknown, errs.NewValueIsInvalidError("stage")
	}
}

// MenuCode returns the menu-access capability an operator needs to work the
// stage.
func (s Stage) MenuCode() string {
	switch s {
	case StagePicking:
		return "my_assigned_picking"
	case StagePacking:
		return "my_assigned_packing"
	case StageDelivery:
		return "my_assigned_delivery"
	default:
		return ""
	}
}

// ReturnStageFor maps an invoice status to the section a return-to-billing
// from that status is recorded against: an invoice returned while picking or
// picked went wrong in picking, and so on.
func ReturnStageFor(status invoice.Status) (Stage, error) {
	switch status {
	case invoice.StatusPicking, invoice.StatusPicked:
		return StagePicking, nil
	case invoice.StatusPacking, invoice.StatusPacked:
		return StagePacking, nil
	case invoice.StatusDispatched:
		return StageDelivery, nil
	default:
		return StageUnknown, errs.NewInvalidStateError(status.String(), "return to billing")
	}
}

// ReopenStatusFor maps a returned-from section to the invoice status a
// resolved review reopens at: picking and packing restart mid-stage, delivery
// restarts from Packed.
func ReopenStatusFor(stage Stage) (invoice.Status, error) {
	switch stage {
	case StagePicking:
		return invoice.StatusPicking, nil
	case StagePacking:
		return invoice.StatusPacking, nil
	case StageDelivery:
		return invoice.StatusPacked, nil
	default:
		return invoice.StatusUnknown, errs.NewValueIsInvalidError("stage")
	}
}
