package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/invoicereturn"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/session"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// ReturnToBillingCommandHandler handles sending an invoice back to billing.
//
// In one transaction the invoice moves to Review, the open session of the
// returned-from stage is parked in Review, and a return record is opened.
// The stage is derived from the invoice status, not chosen by the caller, so
// the return always lands on the section that was actually working the
// invoice. At most one open return exists per invoice.
type ReturnToBillingCommandHandler struct {
	uowFactory ReviewUoWFactory
	directory  ports.UserDirectory
}

// NewReturnToBillingCommandHandler creates a handler for return-to-billing operations.
func NewReturnToBillingCommandHandler(uowFactory ReviewUoWFactory, directory ports.UserDirectory) ReturnToBillingCommandHandler {
	return ReturnToBillingCommandHandler{
		uowFactory: uowFactory,
		directory:  directory,
	}
}

// Handle processes the return command and returns the identifier of the
// opened return record.
func (h *ReturnToBillingCommandHandler) Handle(ctx context.Context, cmd ReturnToBillingCommand) (kernel.UUID, error) {
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

	operator, err := resolveUser(ctx, h.directory, cmd.UserEmail())
	if err != nil {
		return kernel.UUID{}, err
	}

	stage, err := session.ReturnStageFor(inv.Status())
	if err != nil {
		return kernel.UUID{}, err
	}

	ok, err := h.directory.HasMenuAccess(ctx, operator.ID(), stage.MenuCode())
	if err != nil {
		return kernel.UUID{}, err
	}
	if !ok {
		return kernel.UUID{}, errs.NewForbiddenError(cmd.UserEmail(), stage.MenuCode())
	}

	returnRepo := uow.InvoiceReturnRepository()
	open, err := returnRepo.FindOpenByInvoiceID(ctx, inv.ID())
	if err != nil {
		return kernel.UUID{}, err
	}
	if open != nil {
		return kernel.UUID{}, errs.NewConflictError("invoice return", "invoice "+inv.Number()+" already has an open return")
	}

	if err = inv.SendToReview(); err != nil {
		return kernel.UUID{}, err
	}

	if err = h.parkSession(ctx, uow, stage, inv.ID()); err != nil {
		return kernel.UUID{}, err
	}

	ret, err := invoicereturn.NewInvoiceReturn(kernel.NewUUID(), inv.ID(), stage,
		cmd.Reason(), cmd.UserEmail(), time.Now())
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = returnRepo.Add(ctx, ret); err != nil {
		return kernel.UUID{}, err
	}

	if err = invoiceRepo.Update(ctx, inv); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return ret.ID(), nil
}

// parkSession moves the stage's session to Review alongside the invoice.
// The invoice status guarantees a session exists for the stage, but a missing
// one is tolerated rather than blocking the return.
func (h *ReturnToBillingCommandHandler) parkSession(ctx context.Context, uow ReviewUoW, stage session.Stage, invoiceID kernel.UUID) error {
	switch stage {
	case session.StagePicking:
		repo := uow.PickingSessionRepository()
		sess, err := repo.FindByInvoiceID(ctx, invoiceID)
		if err != nil || sess == nil {
			return err
		}
		if err = sess.SendToReview(); err != nil {
			return err
		}
		return repo.Update(ctx, sess)
	case session.StagePacking:
		repo := uow.PackingSessionRepository()
		sess, err := repo.FindByInvoiceID(ctx, invoiceID)
		if err != nil || sess == nil {
			return err
		}
		if err = sess.SendToReview(); err != nil {
			return err
		}
		return repo.Update(ctx, sess)
	case session.StageDelivery:
		repo := uow.DeliverySessionRepository()
		sess, err := repo.FindByInvoiceID(ctx, invoiceID)
		if err != nil || sess == nil {
			return err
		}
		if err = sess.SendToReview(); err != nil {
			return err
		}
		return repo.Update(ctx, sess)
	default:
		return errs.NewValueIsInvalidError("stage")
	}
}
