// Package repository declares the persistence ports. Implementations return
// the sentinel errors below or domain errors, never driver errors.
package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"
)

//nolint:gochecknoglobals
var (
	ErrUserNotFound      = errors.New("user not found")
	ErrDuplicateUsername = errors.New("username already exists")
)

type UserRepository interface {
	FindByID(ctx context.Context, id uint) (*entity.User, error)
	// FindByCredential resolves a login identifier. Email and phone are not
	// unique, so the lowest id wins.
	FindByCredential(ctx context.Context, cred entity.Credential) (*entity.User, error)
	// Create fills in user.ID. A taken username yields ErrDuplicateUsername.
	Create(ctx context.Context, user *entity.User) error
	// Update writes the profile columns; the password hash is left alone.
	Update(ctx context.Context, user *entity.User) error
}
