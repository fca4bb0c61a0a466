package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/session"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// StartDeliveryCommandHandler handles the start of the delivery stage.
//
// An existing delivery session is normally a conflict, with one exception:
// a session parked in Review whose invoice was re-invoiced back to Packed is
// restarted instead of duplicated, assigned to the dispatching operator.
type StartDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
	directory  ports.UserDirectory
}

// NewStartDeliveryCommandHandler creates a handler for starting delivery sessions.
func NewStartDeliveryCommandHandler(uowFactory DeliveryUoWFactory, directory ports.UserDirectory) StartDeliveryCommandHandler {
	return StartDeliveryCommandHandler{
		uowFactory: uowFactory,
		directory:  directory,
	}
}

// Handle processes the command and returns the identifier of the delivery
// session, created or restarted.
func (h *StartDeliveryCommandHandler) Handle(ctx context.Context, cmd StartDeliveryCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	invoiceRepo := uow.InvoiceRepository()
	inv, err := invoiceRepo.GetByNumber(ctx, cmd.InvoiceNo())
	if err != nil {
		return kernel.UUID{}, err
	}

	operator, err := resolveOperator(ctx, h.directory, cmd.UserEmail(), session.StageDelivery)
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = inv.StartDelivery(); err != nil {
		return kernel.UUID{}, err
	}

	sessionRepo := uow.DeliverySessionRepository()
	existing, err := sessionRepo.FindByInvoiceID(ctx, inv.ID())
	if err != nil {
		return kernel.UUID{}, err
	}

	var sess *session.DeliverySession
	switch {
	case existing == nil:
		sess, err = session.NewDeliverySession(kernel.NewUUID(), inv.ID(), operator, time.Now(),
			cmd.DeliveryType(), cmd.CounterPickup(), cmd.PickupPerson(), cmd.PickupCompany(), cmd.Notes())
		if err != nil {
			return kernel.UUID{}, err
		}
		if err = sessionRepo.Add(ctx, sess); err != nil {
			return kernel.UUID{}, err
		}
	case existing.IsUnderReview():
		sess = existing
		if err = sess.Restart(operator, time.Now()); err != nil {
			return kernel.UUID{}, err
		}
		if err = sessionRepo.Update(ctx, sess); err != nil {
			return kernel.UUID{}, err
		}
	default:
		return kernel.UUID{}, errs.NewConflictError("delivery session", "invoice "+inv.Number()+" is already dispatched")
	}

	if err = invoiceRepo.Update(ctx, inv); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return sess.ID(), nil
}
