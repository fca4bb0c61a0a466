package sessionrepo

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/session"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormDeliverySessionRepository implements DeliverySessionRepository using GORM.
type GormDeliverySessionRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewGormDeliverySessionRepository creates a new GORM delivery session repository.
func NewGormDeliverySessionRepository(db *gorm.DB, tracker aggregateTracker) *GormDeliverySessionRepository {
	return &GormDeliverySessionRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new delivery session. The unique index on the invoice turns a
// concurrent second dispatch into a conflict.
func (r *GormDeliverySessionRepository) Add(ctx context.Context, aggregate *session.DeliverySession) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := deliveryFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if isDuplicateKey(err) {
			return errs.NewConflictError("delivery session",
				"invoice "+aggregate.InvoiceID().String()+" is already dispatched")
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing delivery session.
func (r *GormDeliverySessionRepository) Update(ctx context.Context, aggregate *session.DeliverySession) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := deliveryFromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&DeliverySessionDTO{}).
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

// FindByInvoiceID retrieves the delivery session of an invoice, or (nil, nil)
// when the invoice has never been dispatched.
func (r *GormDeliverySessionRepository) FindByInvoiceID(
	ctx context.Context,
	invoiceID kernel.UUID,
) (*session.DeliverySession, error) {
	if err := invoiceID.Validate(); err != nil {
		return nil, err
	}

	var dto DeliverySessionDTO
	if err := r.db.WithContext(ctx).First(&dto, "invoice_id = ?", invoiceID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return deliveryToDomain(dto)
}
