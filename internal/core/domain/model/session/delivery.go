package session

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// ErrDeliverySessionIsNotConstructed is returned when a DeliverySession
// instance was not created through NewDeliverySession or
// RestoreDeliverySession.
var ErrDeliverySessionIsNotConstructed = errors.New("DeliverySession must be created via NewDeliverySession constructor")

// DeliverySession records the dispatch and delivery of one packed invoice.
// It moves InTransit -> Delivered. Courier details are captured when the
// delivery completes; counter-pickup details are captured up front because
// the customer representative is present at dispatch time.
type DeliverySession struct {
	base

	deliveryType  DeliveryType
	courierName   string
	trackingNo    string
	counterPickup bool
	pickupPerson  string
	pickupCompany string
	deliveredBy   string
	geo           *GeoPoint
}

// NewDeliverySession starts a delivery session for the given invoice. A
// counter pickup is only possible on a direct delivery and must name the
// person collecting the goods.
func NewDeliverySession(
	id, invoiceID kernel.UUID,
	operator Operator,
	startedAt time.Time,
	deliveryType DeliveryType,
	counterPickup bool,
	pickupPerson, pickupCompany string,
	notes string,
) (*DeliverySession, error) {
	b, err := newBase(id, invoiceID, StageDelivery, operator, startedAt, notes)
	if err != nil {
		return nil, err
	}
	if err = deliveryType.Validate(); err != nil {
		return nil, err
	}
	if counterPickup {
		if deliveryType != DeliveryDirect {
			return nil, errs.NewValueIsInvalidError("counter pickup on non-direct delivery")
		}
		if pickupPerson == "" {
			return nil, errs.NewValueIsRequiredError("pickup person")
		}
	}

	return &DeliverySession{
		base:          b,
		deliveryType:  deliveryType,
		counterPickup: counterPickup,
		pickupPerson:  pickupPerson,
		pickupCompany: pickupCompany,
	}, nil
}

// RestoreDeliverySession reconstructs a delivery session from persistence.
func RestoreDeliverySession(
	id, invoiceID kernel.UUID,
	operator Operator,
	subStatus SubStatus,
	startedAt time.Time,
	endedAt *time.Time,
	notes string,
	deliveryType DeliveryType,
	courierName, trackingNo string,
	counterPickup bool,
	pickupPerson, pickupCompany string,
	deliveredBy string,
	geo *GeoPoint,
) (*DeliverySession, error) {
	s, err := NewDeliverySession(id, invoiceID, operator, startedAt, deliveryType,
		counterPickup, pickupPerson, pickupCompany, notes)
	if err != nil {
		return nil, err
	}
	if err = s.restore(subStatus, endedAt); err != nil {
		return nil, err
	}
	s.courierName = courierName
	s.trackingNo = trackingNo
	s.deliveredBy = deliveredBy
	s.geo = geo
	return s, nil
}

// Validate ensures the session was properly constructed.
func (s *DeliverySession) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrDeliverySessionIsNotConstructed
	}
	return nil
}

func (s *DeliverySession) DeliveryType() DeliveryType { return s.deliveryType }
func (s *DeliverySession) CourierName() string        { return s.courierName }
func (s *DeliverySession) TrackingNo() string         { return s.trackingNo }
func (s *DeliverySession) CounterPickup() bool        { return s.counterPickup }
func (s *DeliverySession) PickupPerson() string       { return s.pickupPerson }
func (s *DeliverySession) PickupCompany() string      { return s.pickupCompany }
func (s *DeliverySession) DeliveredBy() string        { return s.deliveredBy }
func (s *DeliverySession) Geo() *GeoPoint             { return s.geo }

// Complete records the hand-over to the customer. A courier delivery cannot
// complete without the courier's name; the tracking number may be blank for
// couriers that do not issue one.
func (s *DeliverySession) Complete(at time.Time, deliveredBy, courierName, trackingNo string, geo *GeoPoint) error {
	if s.deliveryType == DeliveryCourier && courierName == "" {
		return errs.NewMissingCourierInfoError("courier name")
	}
	if deliveredBy == "" {
		return errs.NewValueIsRequiredError("delivered by")
	}

	if err := s.complete(at, false); err != nil {
		return err
	}

	s.deliveredBy = deliveredBy
	s.courierName = courierName
	s.trackingNo = trackingNo
	s.geo = geo
	return nil
}

// Restart puts a reviewed session back in transit after the billing
// correction, assigned to the operator dispatching the corrected invoice.
// Delivery details recorded before the return are discarded.
func (s *DeliverySession) Restart(operator Operator, at time.Time) error {
	if at.IsZero() {
		return errs.NewValueIsRequiredError("started at")
	}
	if err := s.reopen(""); err != nil {
		return err
	}
	if err := s.Reassign(operator); err != nil {
		return err
	}

	s.startedAt = at
	s.deliveredBy = ""
	s.courierName = ""
	s.trackingNo = ""
	s.geo = nil
	return nil
}
