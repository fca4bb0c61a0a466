package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/session"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrCompleteDeliveryCommandIsNotConstructed = errors.New(
	"CompleteDeliveryCommand must be created via NewCompleteDeliveryCommand constructor",
)

// CompleteDeliveryCommand represents an operator confirming the hand-over of
// an invoice to the customer, optionally with the geolocation captured by the
// delivery device.
type CompleteDeliveryCommand struct { //nolint:recvcheck //using for validation
	invoiceNo   string
	userEmail   string
	courierName string
	trackingNo  string
	geo         *session.GeoPoint

	guard guard.ConstructorGuard
}

// NewCompleteDeliveryCommand creates a command to complete a delivery.
// Latitude and longitude are optional; when both are given they must form a
// valid geographic point.
func NewCompleteDeliveryCommand(
	invoiceNo, userEmail, courierName, trackingNo string,
	lat, lon *float64,
) (CompleteDeliveryCommand, error) {
	cmd := CompleteDeliveryCommand{
		courierName: courierName,
		trackingNo:  trackingNo,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setInvoiceNo(invoiceNo),
		cmd.setUserEmail(userEmail),
		cmd.setGeo(lat, lon),
	); err != nil {
		return CompleteDeliveryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCompleteDeliveryCommandIsNotConstructed)
}

func (c CompleteDeliveryCommand) InvoiceNo() string      { return c.invoiceNo }
func (c CompleteDeliveryCommand) UserEmail() string      { return c.userEmail }
func (c CompleteDeliveryCommand) CourierName() string    { return c.courierName }
func (c CompleteDeliveryCommand) TrackingNo() string     { return c.trackingNo }
func (c CompleteDeliveryCommand) Geo() *session.GeoPoint { return c.geo }

func (c *CompleteDeliveryCommand) setInvoiceNo(invoiceNo string) error {
	if invoiceNo == "" {
		return errs.NewValueIsRequiredError("invoice number")
	}
	c.invoiceNo = invoiceNo
	return nil
}

func (c *CompleteDeliveryCommand) setUserEmail(userEmail string) error {
	if userEmail == "" {
		return errs.NewValueIsRequiredError("user email")
	}
	c.userEmail = userEmail
	return nil
}

func (c *CompleteDeliveryCommand) setGeo(lat, lon *float64) error {
	if lat == nil && lon == nil {
		return nil
	}
	if lat == nil || lon == nil {
		return errs.NewValueIsRequiredError("both latitude and longitude")
	}

	geo, err := session.NewGeoPoint(*lat, *lon)
	if err != nil {
		return err
	}
	c.geo = &geo
	return nil
}
