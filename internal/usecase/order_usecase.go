package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// CheckoutInput holds the shipping form.
type CheckoutInput struct {
	ShippingAddress string
	Phone           string
	Email           string
}

// CheckoutOutput carries the created order. Order is nil when the cart was
// empty and nothing was written.
type CheckoutOutput struct {
	Order *entity.Order
}

// CheckoutPage is the model of the checkout form: the current cart plus
// defaults taken from the profile.
type CheckoutPage struct {
	Cart     *entity.Cart
	Defaults CheckoutInput
}

// OrderUsecase converts carts into orders and serves order history.
type OrderUsecase interface {
	// PrepareCheckout returns nil Cart items when the cart is empty.
	PrepareCheckout(ctx context.Context, userID uint) (*CheckoutPage, error)

	// Checkout atomically turns the cart into an order.
	Checkout(ctx context.Context, userID uint, input CheckoutInput) (*CheckoutOutput, error)

	GetOrder(ctx context.Context, userID, orderID uint) (*entity.Order, error)
	ListOrders(ctx context.Context, userID uint) ([]*entity.Order, error)

	// OrderQRCode renders a PNG QR code linking to the order page.
	OrderQRCode(ctx context.Context, userID, orderID uint) ([]byte, error)
}
