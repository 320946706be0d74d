package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"
)

// ErrOrderNotFound is returned when an order is missing or owned by someone else.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository stores orders and their line items.
type OrderRepository interface {
	// Create inserts the order and all of its items, filling in IDs.
	Create(ctx context.Context, order *entity.Order) error

	// FindByID returns the order with items, regardless of owner.
	FindByID(ctx context.Context, orderID uint) (*entity.Order, error)

	// FindByIDForUser returns the order with items and products preloaded.
	FindByIDForUser(ctx context.Context, userID, orderID uint) (*entity.Order, error)

	// ListByUser returns the user's orders, newest first.
	ListByUser(ctx context.Context, userID uint) ([]*entity.Order, error)

	// ListAll returns every order, newest first, optionally filtered by status.
	ListAll(ctx context.Context, status *entity.OrderStatus) ([]*entity.Order, error)

	UpdateStatus(ctx context.Context, orderID uint, status entity.OrderStatus) error
}
