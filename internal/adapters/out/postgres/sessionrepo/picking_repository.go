package sessionrepo

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/session"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormPickingSessionRepository implements PickingSessionRepository using GORM.
type GormPickingSessionRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormPickingSessionRepository creates a new GORM picking session repository.
func NewGormPickingSessionRepository(db *gorm.DB, tracker aggregateTracker) *GormPickingSessionRepository {
	return &GormPickingSessionRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new picking session. The unique index on the invoice turns a
// concurrent second start into a conflict.
func (r *GormPickingSessionRepository) Add(ctx context.Context, aggregate *session.PickingSession) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := pickingFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if isDuplicateKey(err) {
			return errs.NewConflictError("picking session",
				"invoice "+aggregate.InvoiceID().String()+" is already being picked")
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing picking session.
func (r *GormPickingSessionRepository) Update(ctx context.Context, aggregate *session.PickingSession) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := pickingFromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&PickingSessionDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// FindByInvoiceID retrieves the picking session of an invoice, or (nil, nil)
// when the invoice has never entered picking.
func (r *GormPickingSessionRepository) FindByInvoiceID(
	ctx context.Context,
	invoiceID kernel.UUID,
) (*session.PickingSession, error) {
	if err := invoiceID.Validate(); err != nil {
		return nil, err
	}

	var dto PickingSessionDTO
	if err := r.db.WithContext(ctx).First(&dto, "invoice_id = ?", invoiceID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return pickingToDomain(dto)
}
