package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/packing"
	"fulfillment/internal/core/domain/model/session"
)

// PickingSessionRepository defines the persistence contract for picking
// sessions. Storage enforces at most one session per invoice.
type PickingSessionRepository interface {
	// Add persists a new picking session. A unique constraint on the invoice
	// rejects a concurrent second start.
	Add(ctx context.Context, aggregate *session.PickingSession) error

	// Update persists changes to an existing picking session.
	Update(ctx context.Context, aggregate *session.PickingSession) error

	// FindByInvoiceID retrieves the session for the given invoice.
	// Returns (nil, nil) when no session exists.
	FindByInvoiceID(ctx context.Context, invoiceID kernel.UUID) (*session.PickingSession, error)
}

// PackingSessionRepository defines the persistence contract for packing
// sessions and the boxes they produce.
type PackingSessionRepository interface {
	// Add persists a new packing session. A unique constraint on the invoice
	// rejects a concurrent second start.
	Add(ctx context.Context, aggregate *session.PackingSession) error

	// Update persists changes to an existing packing session.
	Update(ctx context.Context, aggregate *session.PackingSession) error

	// FindByInvoiceID retrieves the session for the given invoice.
	// Returns (nil, nil) when no session exists.
	FindByInvoiceID(ctx context.Context, invoiceID kernel.UUID) (*session.PackingSession, error)

	// SaveBoxes persists the sealed boxes of a completed packing session,
	// replacing any boxes from an earlier completion of the same session.
	SaveBoxes(ctx context.Context, sessionID kernel.UUID, boxes []*packing.Box) error

	// GetBoxes retrieves the boxes of a packing session in box-number order.
	GetBoxes(ctx context.Context, sessionID kernel.UUID) ([]*packing.Box, error)
}

// DeliverySessionRepository defines the persistence contract for delivery
// sessions.
type DeliverySessionRepository interface {
	// Add persists a new delivery session. A unique constraint on the invoice
	// rejects a concurrent second start.
	Add(ctx context.Context, aggregate *session.DeliverySession) error

	// Update persists changes to an existing delivery session.
	Update(ctx context.Context, aggregate *session.DeliverySession) error

	// FindByInvoiceID retrieves the session for the given invoice.
	// Returns (nil, nil) when no session exists.
	FindByInvoiceID(ctx context.Context, invoiceID kernel.UUID) (*session.DeliverySession, error)
}
