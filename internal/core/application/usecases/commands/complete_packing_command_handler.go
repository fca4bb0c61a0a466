package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/invoice"
	"fulfillment/internal/core/domain/model/session"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// CompletePackingCommandHandler handles the completion of the packing stage.
//
// The submitted boxes are reconciled against the invoice line items by the
// BoxReconciler; every quantity violation is reported back in one pass and no
// boxes are persisted on a failed reconciliation. On success the boxes are
// sealed and stored, the session completes and the invoice becomes Packed.
// A re-pack of a re-invoiced invoice bypasses both the operator identity and
// the already-completed rules and rewrites the box breakdown.
type CompletePackingCommandHandler struct {
	uowFactory PackingUoWFactory
	directory  ports.UserDirectory
}

// NewCompletePackingCommandHandler creates a handler for completing packing sessions.
func NewCompletePackingCommandHandler(uowFactory PackingUoWFactory, directory ports.UserDirectory) CompletePackingCommandHandler {
	return CompletePackingCommandHandler{
		uowFactory: uowFactory,
		directory:  directory,
	}
}

// Handle processes the packing completion command.
func (h *CompletePackingCommandHandler) Handle(ctx context.Context, cmd CompletePackingCommand) error {
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

	operator, err := resolveOperator(ctx, h.directory, cmd.UserEmail(), session.StagePacking)
	if err != nil {
		return err
	}

	sessionRepo := uow.PackingSessionRepository()
	sess, err := sessionRepo.FindByInvoiceID(ctx, inv.ID())
	if err != nil {
		return err
	}
	if sess == nil {
		return errs.NewObjectNotFoundError("packing session", inv.Number())
	}

	// The re-pack bypass only applies once billing has re-invoiced the
	// invoice; a plain repack flag on a never-returned invoice changes nothing.
	repack := cmd.IsRepack() && inv.BillingStatus() == invoice.BillingReInvoiced

	if !sess.IsAssignedTo(cmd.UserEmail()) {
		if !repack {
			return errs.NewIdentityMismatchError(sess.Operator().Email(), cmd.UserEmail())
		}
		if err = sess.Reassign(operator); err != nil {
			return err
		}
	}
	if sess.IsCompleted() {
		if !repack {
			return errs.NewAlreadyCompletedError(session.StagePacking.String(), inv.Number())
		}
	} else {
		if err = inv.CompletePacking(); err != nil {
			return err
		}
	}

	boxes, err := services.NewBoxReconciler().Reconcile(inv, sess.ID(), cmd.Boxes())
	if err != nil {
		return err
	}

	now := time.Now()
	for _, box := range boxes {
		if err = box.Seal(now); err != nil {
			return err
		}
	}

	if err = sess.Complete(now, repack); err != nil {
		return err
	}

	if cmd.HoldForConsolidation() {
		if err = sess.Hold(inv.Customer().Code(), cmd.UserEmail()); err != nil {
			return err
		}
	}

	if err = sessionRepo.SaveBoxes(ctx, sess.ID(), boxes); err != nil {
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
