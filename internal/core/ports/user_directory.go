package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
)

// DirectoryUser is a user record as resolved from the user directory.
type DirectoryUser struct {
	ID     kernel.UUID
	Name   string
	Email  string
	Active bool
}

// UserDirectory resolves operators and their menu-access capabilities. User
// management lives in the wider ERP, so the workflow only reads from it.
type UserDirectory interface {
	// ResolveUser looks up a user by email. Returns (nil, nil) when no user
	// with that email exists.
	ResolveUser(ctx context.Context, email string) (*DirectoryUser, error)

	// HasMenuAccess reports whether the user holds the given menu capability,
	// e.g. "my_assigned_picking".
	HasMenuAccess(ctx context.Context, userID kernel.UUID, menuCode string) (bool, error)
}
