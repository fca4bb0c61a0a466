package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/session"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// StartPickingCommandHandler handles the start of the picking stage.
//
// The handler validates in a fixed order: the invoice must exist, the
// operator must be an active user with picking access, the invoice must be in
// Invoiced status, and no picking session may exist yet. A unique constraint
// on the session's invoice closes the race between two operators scanning the
// same invoice at once.
type StartPickingCommandHandler struct {
	uowFactory PickingUoWFactory
	directory  ports.UserDirectory
}

// NewStartPickingCommandHandler creates a handler for starting picking sessions.
func NewStartPickingCommandHandler(uowFactory PickingUoWFactory, directory ports.UserDirectory) StartPickingCommandHandler {
	return StartPickingCommandHandler{
		uowFactory: uowFactory,
		directory:  directory,
	}
}

// Handle processes the command and returns the identifier of the created
// picking session.
func (h *StartPickingCommandHandler) Handle(ctx context.Context, cmd StartPickingCommand) (kernel.UUID, error) {
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

	operator, err := resolveOperator(ctx, h.directory, cmd.UserEmail(), session.StagePicking)
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = inv.StartPicking(); err != nil {
		return kernel.UUID{}, err
	}

	sessionRepo := uow.PickingSessionRepository()
	existing, err := sessionRepo.FindByInvoiceID(ctx, inv.ID())
	if err != nil {
		return kernel.UUID{}, err
	}
	if existing != nil {
		return kernel.UUID{}, errs.NewConflictError("picking session", "invoice "+inv.Number()+" is already being picked")
	}

	sess, err := session.NewPickingSession(kernel.NewUUID(), inv.ID(), operator, time.Now(), cmd.Notes())
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
