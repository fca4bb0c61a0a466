package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/invoice"
	"fulfillment/internal/core/domain/model/session"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// CompletePickingCommandHandler handles the completion of the picking stage.
//
// Normally the completing operator must be the one the session is assigned
// to, and a session completes exactly once. A re-pick of a re-invoiced
// invoice bypasses both rules:
// the session is handed to the re-picking operator (who still needs picking
// access) and completed again with a fresh end time. The invoice status only
// advances on the first completion.
type CompletePickingCommandHandler struct {
	uowFactory PickingUoWFactory
	directory  ports.UserDirectory
}

// NewCompletePickingCommandHandler creates a handler for completing picking sessions.
func NewCompletePickingCommandHandler(uowFactory PickingUoWFactory, directory ports.UserDirectory) CompletePickingCommandHandler {
	return CompletePickingCommandHandler{
		uowFactory: uowFactory,
		directory:  directory,
	}
}

// Handle processes the picking completion command.
func (h *CompletePickingCommandHandler) Handle(ctx context.Context, cmd CompletePickingCommand) error {
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

	operator, err := resolveOperator(ctx, h.directory, cmd.UserEmail(), session.StagePicking)
	if err != nil {
		return err
	}

	sessionRepo := uow.PickingSessionRepository()
	sess, err := sessionRepo.FindByInvoiceID(ctx, inv.ID())
	if err != nil {
		return err
	}
	if sess == nil {
		return errs.NewObjectNotFoundError("picking session", inv.Number())
	}

	// The re-pick bypass only applies once billing has re-invoiced the
	// invoice; a plain repick flag on a never-returned invoice changes nothing.
	repick := cmd.IsRepick() && inv.BillingStatus() == invoice.BillingReInvoiced

	if !sess.IsAssignedTo(cmd.UserEmail()) {
		if !repick {
			return errs.NewIdentityMismatchError(sess.Operator().Email(), cmd.UserEmail())
		}
		if err = sess.Reassign(operator); err != nil {
			return err
		}
	}

	if sess.IsCompleted() {
		if !repick {
			return errs.NewAlreadyCompletedError(session.StagePicking.String(), inv.Number())
		}
	} else {
		if err = inv.CompletePicking(); err != nil {
			return err
		}
	}

	if err = sess.Complete(time.Now(), repick); err != nil {
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
