package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// CatalogOutput is the catalog page model.
type CatalogOutput struct {
	Categories []*entity.Category
	Products   []*entity.Product
	Filter     entity.ProductFilter
}

// CatalogUsecase is the read side of the catalog.
type CatalogUsecase interface {
	ListProducts(ctx context.Context, filter entity.ProductFilter) ([]*entity.Product, error)
	// Browse returns the filtered products together with the category sidebar.
	Browse(ctx context.Context, filter entity.ProductFilter) (*CatalogOutput, error)
	GetProduct(ctx context.Context, id uint) (*entity.Product, error)
	ListCategories(ctx context.Context) ([]*entity.Category, error)
	// ListFeatured returns the landing page selection.
	ListFeatured(ctx context.Context) ([]*entity.Product, error)
}
