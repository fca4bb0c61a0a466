// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"fulfillment/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// InvoiceRepoFactory provides access to the invoice repository within a transaction.
	InvoiceRepoFactory interface {
		InvoiceRepository() ports.InvoiceRepository
	}

	// PickingSessionRepoFactory provides access to the picking session repository within a transaction.
	PickingSessionRepoFactory interface {
		PickingSessionRepository() ports.PickingSessionRepository
	}

	// PackingSessionRepoFactory provides access to the packing session repository within a transaction.
	PackingSessionRepoFactory interface {
		PackingSessionRepository() ports.PackingSessionRepository
	}

	// DeliverySessionRepoFactory provides access to the delivery session repository within a transaction.
	DeliverySessionRepoFactory interface {
		DeliverySessionRepository() ports.DeliverySessionRepository
	}

	// InvoiceReturnRepoFactory provides access to the invoice return repository within a transaction.
	InvoiceReturnRepoFactory interface {
		InvoiceReturnRepository() ports.InvoiceReturnRepository
	}

	// InvoiceUoW manages transactions for invoice-only operations, such as
	// the invoice import.
	InvoiceUoW interface {
		TxManager
		InvoiceRepoFactory
	}

	// InvoiceUoWFactory creates new invoice unit of work instances.
	InvoiceUoWFactory interface {
		Create() InvoiceUoW
	}

	// PickingUoW manages transactions for the picking stage, which touches
	// the invoice and its picking session together.
	PickingUoW interface {
		TxManager
		InvoiceRepoFactory
		PickingSessionRepoFactory
	}

	// PickingUoWFactory creates new picking unit of work instances.
	PickingUoWFactory interface {
		Create() PickingUoW
	}

	// PackingUoW manages transactions for the packing stage, which touches
	// the invoice, its packing session and the packed boxes together.
	PackingUoW interface {
		TxManager
		InvoiceRepoFactory
		PackingSessionRepoFactory
	}

	// PackingUoWFactory creates new packing unit of work instances.
	PackingUoWFactory interface {
		Create() PackingUoW
	}

	// DeliveryUoW manages transactions for the delivery stage, which touches
	// the invoice and its delivery session together.
	DeliveryUoW interface {
		TxManager
		InvoiceRepoFactory
		DeliverySessionRepoFactory
	}

	// DeliveryUoWFactory creates new delivery unit of work instances.
	DeliveryUoWFactory interface {
		Create() DeliveryUoW
	}

	// ReviewUoW manages transactions for return-to-billing and resolution,
	// which may touch the invoice, any stage session and the return record
	// in one atomic step.
	ReviewUoW interface {
		TxManager
		InvoiceRepoFactory
		PickingSessionRepoFactory
		PackingSessionRepoFactory
		DeliverySessionRepoFactory
		InvoiceReturnRepoFactory
	}

	// ReviewUoWFactory creates new review unit of work instances.
	ReviewUoWFactory interface {
		Create() ReviewUoW
	}
)
