package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/invoice"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/session"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// ResolveInvoiceCommandHandler handles the resolution of a returned invoice.
//
// Resolution is atomic: the return record closes, the corrections apply to
// the invoice and its line items, the invoice reopens at the stage-derived
// status with ReInvoiced billing status, and the parked session is rolled
// back to in-progress. A session returned from the delivery section stays
// parked; dispatching the corrected invoice restarts it.
type ResolveInvoiceCommandHandler struct {
	uowFactory ReviewUoWFactory
	directory  ports.UserDirectory
}

// NewResolveInvoiceCommandHandler creates a handler for resolving returned invoices.
func NewResolveInvoiceCommandHandler(uowFactory ReviewUoWFactory, directory ports.UserDirectory) ResolveInvoiceCommandHandler {
	return ResolveInvoiceCommandHandler{
		uowFactory: uowFactory,
		directory:  directory,
	}
}

// Handle processes the resolution command.
func (h *ResolveInvoiceCommandHandler) Handle(ctx context.Context, cmd ResolveInvoiceCommand) error {
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

	if _, err = resolveUser(ctx, h.directory, cmd.UserEmail()); err != nil {
		return err
	}

	returnRepo := uow.InvoiceReturnRepository()
	ret, err := returnRepo.FindOpenByInvoiceID(ctx, inv.ID())
	if err != nil {
		return err
	}
	if ret == nil {
		return errs.NewObjectNotFoundError("open invoice return", inv.Number())
	}

	target, err := session.ReopenStatusFor(ret.Section())
	if err != nil {
		return err
	}

	if err = inv.Reopen(target); err != nil {
		return err
	}

	if cmd.Corrections() != nil {
		corrections, err := buildCorrections(*cmd.Corrections())
		if err != nil {
			return err
		}
		if err = inv.ApplyCorrections(corrections); err != nil {
			return err
		}
	}

	if err = ret.Resolve(cmd.UserEmail(), time.Now(), cmd.Note()); err != nil {
		return err
	}

	if err = h.reopenSession(ctx, uow, ret.Section(), inv.ID(), cmd.Note()); err != nil {
		return err
	}

	if err = returnRepo.Update(ctx, ret); err != nil {
		return err
	}

	if err = invoiceRepo.Update(ctx, inv); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// reopenSession rolls the parked session of the returned-from stage back to
// in-progress. Delivery sessions stay in Review until the corrected invoice
// is dispatched again.
func (h *ResolveInvoiceCommandHandler) reopenSession(ctx context.Context, uow ReviewUoW, stage session.Stage, invoiceID kernel.UUID, note string) error {
	switch stage {
	case session.StagePicking:
		repo := uow.PickingSessionRepository()
		sess, err := repo.FindByInvoiceID(ctx, invoiceID)
		if err != nil || sess == nil {
			return err
		}
		if err = sess.Reopen(note); err != nil {
			return err
		}
		return repo.Update(ctx, sess)
	case session.StagePacking:
		repo := uow.PackingSessionRepository()
		sess, err := repo.FindByInvoiceID(ctx, invoiceID)
		if err != nil || sess == nil {
			return err
		}
		if err = sess.Reopen(note); err != nil {
			return err
		}
		return repo.Update(ctx, sess)
	case session.StageDelivery:
		return nil
	default:
		return errs.NewValueIsInvalidError("stage")
	}
}

func buildCorrections(c InvoiceCorrections) (invoice.Corrections, error) {
	corrections := invoice.Corrections{
		Date:         c.Date,
		SalesmanName: c.SalesmanName,
		TotalAmount:  c.TotalAmount,
		Remarks:      c.Remarks,
		ReplaceItems: c.ReplaceItems,
	}

	if c.CustomerCode != nil || c.CustomerName != nil {
		if c.CustomerCode == nil || c.CustomerName == nil {
			return invoice.Corrections{}, errs.NewValueIsRequiredError("both customer code and customer name")
		}
		customer, err := invoice.NewCustomer(*c.CustomerCode, *c.CustomerName)
		if err != nil {
			return invoice.Corrections{}, err
		}
		corrections.Customer = &customer
	}

	if c.Priority != nil {
		priority, err := invoice.PriorityFromString(*c.Priority)
		if err != nil {
			return invoice.Corrections{}, err
		}
		corrections.Priority = &priority
	}

	if len(c.Items) > 0 {
		items, err := buildItems(c.Items)
		if err != nil {
			return invoice.Corrections{}, err
		}
		corrections.Items = items
	}

	return corrections, nil
}
