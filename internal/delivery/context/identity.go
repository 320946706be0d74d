package context

import (
	"context"

	"storefront/internal/domain/entity"
)

// Identity is the logged-in user resolved from the session cookie.
type Identity struct {
	UserID uint
	Roles  entity.Roles
}

// IsStaff is false for anonymous requests.
func (i *Identity) IsStaff() bool {
	return i != nil && i.Roles.Contains(entity.RoleStaff)
}

func WithIdentity(ctx context.Context, identity *Identity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

// GetIdentity returns the identity stored in ctx, or nil for anonymous requests.
func GetIdentity(ctx context.Context) *Identity {
	if identity, ok := ctx.Value(identityKey).(*Identity); ok {
		return identity
	}

	return nil
}
