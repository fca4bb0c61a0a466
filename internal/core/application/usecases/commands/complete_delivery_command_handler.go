package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/session"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// CompleteDeliveryCommandHandler handles the completion of the delivery
// stage, the terminal operation of the workflow. A courier delivery cannot
// complete without the courier's name.
type CompleteDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
	directory  ports.UserDirectory
}

// NewCompleteDeliveryCommandHandler creates a handler for completing delivery sessions.
func NewCompleteDeliveryCommandHandler(uowFactory DeliveryUoWFactory, directory ports.UserDirectory) CompleteDeliveryCommandHandler {
	return CompleteDeliveryCommandHandler{
		uowFactory: uowFactory,
		directory:  directory,
	}
}

// Handle processes the delivery completion command.
func (h *CompleteDeliveryCommandHandler) Handle(ctx context.Context, cmd CompleteDeliveryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	invoiceRepo := uow.InvoiceRepository()
	inv, err := invoiceRepo.GetByNumber(ctx, cmd.InvoiceNo())
	if err != nil {
		return err
	}

	if _, err = resolveOperator(ctx, h.directory, cmd.UserEmail(), session.StageDelivery); err != nil {
		return err
	}

	sessionRepo := uow.DeliverySessionRepository()
	sess, err := sessionRepo.FindByInvoiceID(ctx, inv.ID())
	if err != nil {
		return err
	}
	if sess == nil {
		return errs.NewObjectNotFoundError("delivery session", inv.Number())
	}

	if !sess.IsAssignedTo(cmd.UserEmail()) {
		return errs.NewIdentityMismatchError(sess.Operator().Email(), cmd.UserEmail())
	}
	if sess.IsCompleted() {
		return errs.NewAlreadyCompletedError(session.StageDelivery.String(), inv.Number())
	}

	if err = inv.CompleteDelivery(); err != nil {
		return err
	}

	if err = sess.Complete(time.Now(), cmd.UserEmail(), cmd.CourierName(), cmd.TrackingNo(), cmd.Geo()); err != nil {
		return err
	}

	if err = sessionRepo.Update(ctx, sess); err != nil {
		return err
	}

	if err = invoiceRepo.Update(ctx, inv); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
