package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// It provides transaction control and tracks aggregate changes.
// Client code must explicitly manage transaction lifecycle.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// InvoiceRepository returns an InvoiceRepository bound to the current transaction.
	InvoiceRepository() InvoiceRepository

	// PickingSessionRepository returns a PickingSessionRepository bound to the current transaction.
	PickingSessionRepository() PickingSessionRepository

	// PackingSessionRepository returns a PackingSessionRepository bound to the current transaction.
	PackingSessionRepository() PackingSessionRepository

	// DeliverySessionRepository returns a DeliverySessionRepository bound to the current transaction.
	DeliverySessionRepository() DeliverySessionRepository

	// InvoiceReturnRepository returns an InvoiceReturnRepository bound to the current transaction.
	InvoiceReturnRepository() InvoiceReturnRepository
}
