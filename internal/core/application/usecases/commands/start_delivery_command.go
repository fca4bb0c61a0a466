package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/session"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrStartDeliveryCommandIsNotConstructed = errors.New(
	"StartDeliveryCommand must be created via NewStartDeliveryCommand constructor",
)

// StartDeliveryCommand represents an operator dispatching a packed invoice.
// Counter-pickup details are captured up front because the customer
// representative collects the goods at dispatch time.
type StartDeliveryCommand struct { //nolint:recvcheck //using for validation
	invoiceNo     string
	userEmail     string
	deliveryType  session.DeliveryType
	counterPickup bool
	pickupPerson  string
	pickupCompany string
	notes         string

	guard guard.ConstructorGuard
}

// NewStartDeliveryCommand creates a command to dispatch an invoice. The
// delivery type is parsed from its wire name (DIRECT, COURIER or INTERNAL).
func NewStartDeliveryCommand(
	invoiceNo, userEmail, deliveryType string,
	counterPickup bool,
	pickupPerson, pickupCompany, notes string,
) (StartDeliveryCommand, error) {
	cmd := StartDeliveryCommand{
		counterPickup: counterPickup,
		pickupPerson:  pickupPerson,
		pickupCompany: pickupCompany,
		notes:         notes,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setInvoiceNo(invoiceNo),
		cmd.setUserEmail(userEmail),
		cmd.setDeliveryType(deliveryType),
	); err != nil {
		return StartDeliveryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c StartDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrStartDeliveryCommandIsNotConstructed)
}

func (c StartDeliveryCommand) InvoiceNo() string                  { return c.invoiceNo }
func (c StartDeliveryCommand) UserEmail() string                  { return c.userEmail }
func (c StartDeliveryCommand) DeliveryType() session.DeliveryType { return c.deliveryType }
func (c StartDeliveryCommand) CounterPickup() bool                { return c.counterPickup }
func (c StartDeliveryCommand) PickupPerson() string               { return c.pickupPerson }
func (c StartDeliveryCommand) PickupCompany() string              { return c.pickupCompany }
func (c StartDeliveryCommand) Notes() string                      { return c.notes }

func (c *StartDeliveryCommand) setInvoiceNo(invoiceNo string) error {
	if invoiceNo == "" {
		return errs.NewValueIsRequiredError("invoice number")
	}
	c.invoiceNo = invoiceNo
	return nil
}

func (c *StartDeliveryCommand) setUserEmail(userEmail string) error {
	if userEmail == "" {
		return errs.NewValueIsRequiredError("user email")
	}
	c.userEmail = userEmail
	return nil
}

func (c *StartDeliveryCommand) setDeliveryType(deliveryType string) error {
	parsed, err := session.DeliveryTypeFromString(deliveryType)
	if err != nil {
		return err
	}
	c.deliveryType = parsed
	return nil
}
