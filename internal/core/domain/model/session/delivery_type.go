package session

import (
	"fulfillment/internal/pkg/errs"
)

// DeliveryType distinguishes how a dispatched order reaches the customer.
type DeliveryType int

const (
	DeliveryTypeUnknown DeliveryType = iota

	// DeliveryDirect is a company-vehicle or counter-pickup delivery.
	DeliveryDirect

	// DeliveryCourier hands the order to a third-party courier. Completing a
	// courier delivery requires a courier name.
	DeliveryCourier

	// DeliveryInternal moves the order to another branch or department.
	DeliveryInternal
)

func getDeliveryTypeStrings() map[DeliveryType]string {
	return map[DeliveryType]string{
		DeliveryTypeUnknown: "Unknown",
		DeliveryDirect:      "DIRECT",
		DeliveryCourier:     "COURIER",
		DeliveryInternal:    "INTERNAL",
	}
}

// Validate checks if the DeliveryType value is valid.
func (t DeliveryType) Validate() error {
	switch t {
	case DeliveryDirect, DeliveryCourier, DeliveryInternal:
		return nil
	default:
		return errs.NewValueIsInvalidError("delivery type")
	}
}

// String returns the wire name of the delivery type.
func (t DeliveryType) String() string {
	if str, ok := getDeliveryTypeStrings()[t]; ok {
		return str
	}
	return "Unknown"
}

// DeliveryTypeFromString parses a delivery type name supplied by callers.
func DeliveryTypeFromString(s string) (DeliveryType, error) {
	switch s {
	case "DIRECT":
		return DeliveryDirect, nil
	case "COURIER":
		return DeliveryCourier, nil
	case "INTERNAL":
		return DeliveryInternal, nil
	default:
		return DeliveryTypeUnknown, errs.NewValueIsInvalidError("delivery type")
	}
}
