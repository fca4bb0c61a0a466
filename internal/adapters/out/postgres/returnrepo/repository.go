package returnrepo

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/invoicereturn"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// uniqueViolationCode is the PostgreSQL error code for duplicate keys.
const uniqueViolationCode = "23505"

func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolationCode
}

// GormInvoiceReturnRepository implements InvoiceReturnRepository using GORM.
type GormInvoiceReturnRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormInvoiceReturnRepository creates a new GORM invoice return repository.
func NewGormInvoiceReturnRepository(db *gorm.DB, tracker aggregateTracker) *GormInvoiceReturnRepository {
	return &GormInvoiceReturnRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new return record.
func (r *GormInvoiceReturnRepository) Add(ctx context.Context, aggregate *invoicereturn.InvoiceReturn) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if isDuplicateKey(err) {
			return errs.NewConflictError("invoice return",
				"invoice "+aggregate.InvoiceID().String()+" already has an open return")
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing return record.
func (r *GormInvoiceReturnRepository) Update(ctx context.Context, aggregate *invoicereturn.InvoiceReturn) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&InvoiceReturnDTO{}).
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

// FindOpenByInvoiceID retrieves the unresolved return of an invoice, or
// (nil, nil) when the invoice has no open return. The workflow permits at
// most one open return per invoice.
func (r *GormInvoiceReturnRepository) FindOpenByInvoiceID(
	ctx context.Context,
	invoiceID kernel.UUID,
) (*invoicereturn.InvoiceReturn, error) {
	if err := invoiceID.Validate(); err != nil {
		return nil, err
	}

	var dto InvoiceReturnDTO
	err := r.db.WithContext(ctx).
		First(&dto, "invoice_id = ? AND resolved = ?", invoiceID.Bytes(), false).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return toDomain(dto)
}
