package repository

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/errors"
)

var (
	ErrProductNotFound  = errors.New("product not found")
	ErrCategoryNotFound = errors.New("category not found")
)

// CategoryRepository stores catalog categories.
type CategoryRepository interface {
	List(ctx context.Context) ([]*entity.Category, error)
	FindByID(ctx context.Context, id uint) (*entity.Category, error)
	Create(ctx context.Context, category *entity.Category) error
	Update(ctx context.Context, category *entity.Category) error
	// Delete removes the category; its products keep existing without one.
	Delete(ctx context.Context, id uint) error
}

// ProductRepository stores catalog products.
type ProductRepository interface {
	// List returns products matching filter in storage order.
	List(ctx context.Context, filter entity.ProductFilter) ([]*entity.Product, error)
	// FindByID returns the product with its category preloaded.
	FindByID(ctx context.Context, id uint) (*entity.Product, error)
	Create(ctx context.Context, product *entity.Product) error
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id uint) error
}
