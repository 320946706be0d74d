package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"
)

// ErrCartItemNotFound is returned when a cart line is missing or owned by someone else.
var ErrCartItemNotFound = errors.New("cart item not found")

// CartRepository stores cart lines. Every method is scoped to the owning user.
type CartRepository interface {
	// ListByUser returns the user's items with products preloaded.
	ListByUser(ctx context.Context, userID uint) ([]*entity.CartItem, error)

	// ListByUserForUpdate is ListByUser with the rows locked until the
	// surrounding transaction ends.
	ListByUserForUpdate(ctx context.Context, userID uint) ([]*entity.CartItem, error)

	// FindByID returns ErrCartItemNotFound when the item belongs to another user.
	FindByID(ctx context.Context, userID, itemID uint) (*entity.CartItem, error)

	// Increment adds one unit of the product, creating the line at quantity 1.
	Increment(ctx context.Context, userID, productID uint) (*entity.CartItem, error)

	UpdateQuantity(ctx context.Context, userID, itemID uint, quantity int) error

	Delete(ctx context.Context, userID, itemID uint) error

	// DeleteByIDs removes exactly the given lines of the user's cart.
	DeleteByIDs(ctx context.Context, userID uint, itemIDs []uint) error
}
