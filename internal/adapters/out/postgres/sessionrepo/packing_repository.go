package sessionrepo

import (
	"context"
	"errors"
	"sort"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/packing"
	"fulfillment/internal/core/domain/model/session"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormPackingSessionRepository implements PackingSessionRepository using GORM.
type GormPackingSessionRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewGormPackingSessionRepository creates a new GORM packing session repository.
func NewGormPackingSessionRepository(db *gorm.DB, tracker aggregateTracker) *GormPackingSessionRepository {
	return &GormPackingSessionRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new packing session. The unique index on the invoice turns a
// concurrent second start into a conflict.
func (r *GormPackingSessionRepository) Add(ctx context.Context, aggregate *session.PackingSession) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := packingFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if isDuplicateKey(err) {
			return errs.NewConflictError("packing session",
				"invoice "+aggregate.InvoiceID().String()+" is already being packed")
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing packing session.
func (r *GormPackingSessionRepository) Update(ctx context.Context, aggregate *session.PackingSession) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := packingFromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&PackingSessionDTO{}).
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

// FindByInvoiceID retrieves the packing session of an invoice, or (nil, nil)
// when the invoice has never entered packing.
func (r *GormPackingSessionRepository) FindByInvoiceID(
	ctx context.Context,
	invoiceID kernel.UUID,
) (*session.PackingSession, error) {
	if err := invoiceID.Validate(); err != nil {
		return nil, err
	}

	var dto PackingSessionDTO
	if err := r.db.WithContext(ctx).First(&dto, "invoice_id = ?", invoiceID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return packingToDomain(dto)
}

// SaveBoxes replaces the boxes of a packing session. A re-pack after a
// resolved return rewrites the box breakdown from scratch.
func (r *GormPackingSessionRepository) SaveBoxes(
	ctx context.Context,
	sessionID kernel.UUID,
	boxes []*packing.Box,
) error {
	if err := sessionID.Validate(); err != nil {
		return err
	}
	for _, box := range boxes {
		if err := box.Validate(); err != nil {
			return err
		}
	}

	db := r.db.WithContext(ctx)

	err := db.Where(
		"box_id IN (SELECT id FROM boxes WHERE packing_session_id = ?)",
		sessionID.Bytes(),
	).Delete(&BoxItemDTO{}).Error
	if err != nil {
		return err
	}
	if err = db.Where("packing_session_id = ?", sessionID.Bytes()).Delete(&BoxDTO{}).Error; err != nil {
		return err
	}

	for _, box := range boxes {
		dto := boxFromDomain(box)
		if err = db.Create(&dto).Error; err != nil {
			return err
		}
	}

	return nil
}

// GetBoxes retrieves the boxes of a packing session in box-number order.
func (r *GormPackingSessionRepository) GetBoxes(
	ctx context.Context,
	sessionID kernel.UUID,
) ([]*packing.Box, error) {
	if err := sessionID.Validate(); err != nil {
		return nil, err
	}

	var dtos []BoxDTO
	err := r.db.WithContext(ctx).
		Preload("Items").
		Where("packing_session_id = ?", sessionID.Bytes()).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	sort.Slice(dtos, func(i, j int) bool { return dtos[i].Number < dtos[j].Number })

	boxes := make([]*packing.Box, 0, len(dtos))
	for _, dto := range dtos {
		box, boxErr := boxToDomain(dto)
		if boxErr != nil {
			return nil, boxErr
		}
		boxes = append(boxes, box)
	}

	return boxes, nil
}
