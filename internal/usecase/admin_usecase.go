package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"storefront/internal/domain/entity"
)

// CategoryInput is the editable category data.
type CategoryInput struct {
	Name        string
	Description string
	Image       *Upload
}

// ProductInput is the editable product data.
type ProductInput struct {
	Name        string
	Description string
	Price       decimal.Decimal
	CategoryID  *uint
	Image       *Upload
}

// AdminUsecase is the staff back office.
type AdminUsecase interface {
	CreateCategory(ctx context.Context, input CategoryInput) (*entity.Category, error)
	UpdateCategory(ctx context.Context, id uint, input CategoryInput) (*entity.Category, error)
	DeleteCategory(ctx context.Context, id uint) error

	CreateProduct(ctx context.Context, input ProductInput) (*entity.Product, error)
	UpdateProduct(ctx context.Context, id uint, input ProductInput) (*entity.Product, error)
	DeleteProduct(ctx context.Context, id uint) error

	ListOrders(ctx context.Context, status *entity.OrderStatus) ([]*entity.Order, error)
	UpdateOrderStatus(ctx context.Context, orderID uint, status entity.OrderStatus) (*entity.Order, error)
}
