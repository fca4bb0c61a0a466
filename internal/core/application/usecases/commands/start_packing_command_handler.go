package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/session"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// StartPackingCommandHandler handles the start of the packing stage.
// Validation order mirrors StartPickingCommandHandler: invoice, operator,
// invoice status, existing session.
type StartPackingCommandHandler struct {
	uowFactory PackingUoWFactory
	directory  ports.UserDirectory
}

// NewStartPackingCommandHandler creates a handler for starting packing sessions.
func NewStartPackingCommandHandler(uowFactory PackingUoWFactory, directory ports.UserDirectory) StartPackingCommandHandler {
	return StartPackingCommandHandler{
		uowFactory: uowFactory,
		directory:  directory,
	}
}

// Handle processes the command and returns the identifier of the created
// packing session.
func (h *StartPackingCommandHandler) Handle(ctx context.Context, cmd StartPackingCommand) (kernel.UUID, error) {
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

	operator, err := resolveOperator(ctx, h.directory, cmd.UserEmail(), session.StagePacking)
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = inv.StartPacking(); err != nil {
		return kernel.UUID{}, err
	}

	sessionRepo := uow.PackingSessionRepository()
	existing, err := sessionRepo.FindByInvoiceID(ctx, inv.ID())
	if err != nil {
		return kernel.UUID{}, err
	}
	if existing != nil {
		return kernel.UUID{}, errs.NewConflictError("packing session", "invoice "+inv.Number()+" is already being packed")
	}

	sess, err := session.NewPackingSession(kernel.NewUUID(), inv.ID(), operator, time.Now(), cmd.Notes())
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = sessionRepo.Add(ctx, sess); err != nil {
		return kernel.UUID{}, err
	}

	if err = invoiceRepo.Update(ctx, inv); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return sess.ID(), nil
}
