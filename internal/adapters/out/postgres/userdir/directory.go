package userdir

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/ports"

	"gorm.io/gorm"
)

// GormUserDirectory implements UserDirectory against the ERP user tables.
type GormUserDirectory struct {
	db *gorm.DB
}

// NewGormUserDirectory creates a new GORM-backed user directory.
func NewGormUserDirectory(db *gorm.DB) *GormUserDirectory {
	return &GormUserDirectory{db: db}
}

// ResolveUser looks up a user by email, case-insensitively. Returns
// (nil, nil) when no user carries the email.
func (d *GormUserDirectory) ResolveUser(ctx context.Context, email string) (*ports.DirectoryUser, error) {
	var dto UserDTO
	err := d.db.WithContext(ctx).First(&dto, "LOWER(email) = LOWER(?)", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return &ports.DirectoryUser{
		ID:     id,
		Name:   dto.Name,
		Email:  dto.Email,
		Active: dto.Active,
	}, nil
}

// HasMenuAccess reports whether the user holds the given menu capability.
func (d *GormUserDirectory) HasMenuAccess(ctx context.Context, userID kernel.UUID, menuCode string) (bool, error) {
	if err := userID.Validate(); err != nil {
		return false, err
	}

	var count int64
	err := d.db.WithContext(ctx).
		Model(&MenuAccessDTO{}).
		Where("user_id = ? AND menu_code = ?", userID.Bytes(), menuCode).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}
