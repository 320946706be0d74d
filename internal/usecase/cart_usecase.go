package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// CartUsecase manages a user's cart.
type CartUsecase interface {
	// AddItem adds one unit of the product.
	AddItem(ctx context.Context, userID, productID uint) (*entity.CartItem, error)

	// UpdateQuantity sets the quantity of an owned item. Non-positive values
	// are rejected and leave the item untouched.
	UpdateQuantity(ctx context.Context, userID, itemID uint, quantity int) error

	RemoveItem(ctx context.Context, userID, itemID uint) error

	GetCart(ctx context.Context, userID uint) (*entity.Cart, error)
}
