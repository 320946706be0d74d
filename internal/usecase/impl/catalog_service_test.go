package impl

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	"storefront/internal/usecase"
)

type catalogServiceFixtures struct {
	service      usecase.CatalogUsecase
	categoryRepo *mockRepo.MockCategoryRepository
	productRepo  *mockRepo.MockProductRepository
}

func createTestCatalogService(t *testing.T, featuredLimit int) catalogServiceFixtures {
	fx := catalogServiceFixtures{
		categoryRepo: mockRepo.NewMockCategoryRepository(t),
		productRepo:  mockRepo.NewMockProductRepository(t),
	}
	fx.service = NewCatalogService(CatalogServiceParams{
		CategoryRepo: fx.categoryRepo,
		ProductRepo:  fx.productRepo,
		Config:       newTestConfig(featuredLimit),
		Logger:       newDiscardLogger(),
	})

	return fx
}

func TestCatalogService_Browse(t *testing.T) {
	fx := createTestCatalogService(t, 8)

	ctx := context.Background()
	categoryID := uint(2)
	minPrice := decimal.NewFromInt(10)
	filter := entity.ProductFilter{CategoryID: &categoryID, Query: "tea", MinPrice: &minPrice}
	categories := []*entity.Category{{ID: 1, Name: "Coffee"}, {ID: 2, Name: "Tea"}}
	products := []*entity.Product{newTestProduct(4, 15)}

	fx.categoryRepo.EXPECT().List(ctx).Return(categories, nil)
	fx.productRepo.EXPECT().List(ctx, filter).Return(products, nil)

	out, err := fx.service.Browse(ctx, filter)
	require.NoError(t, err)
	assert.Equal(t, categories, out.Categories)
	assert.Equal(t, products, out.Products)
	assert.Equal(t, filter, out.Filter)
}

func TestCatalogService_ListProducts_NoMatchIsEmpty(t *testing.T) {
	fx := createTestCatalogService(t, 8)

	ctx := context.Background()
	filter := entity.ProductFilter{Query: "nothing"}
	fx.productRepo.EXPECT().List(ctx, filter).Return([]*entity.Product{}, nil)

	products, err := fx.service.ListProducts(ctx, filter)
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestCatalogService_GetProduct_NotFound(t *testing.T) {
	fx := createTestCatalogService(t, 8)

	ctx := context.Background()
	fx.productRepo.EXPECT().FindByID(ctx, uint(99)).Return(nil, repository.ErrProductNotFound)

	product, err := fx.service.GetProduct(ctx, 99)
	assert.Nil(t, product)
	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
}

func TestCatalogService_ListFeatured_UsesConfiguredLimit(t *testing.T) {
	fx := createTestCatalogService(t, 4)

	ctx := context.Background()
	fx.productRepo.EXPECT().List(ctx, entity.ProductFilter{Limit: 4}).Return([]*entity.Product{}, nil)

	_, err := fx.service.ListFeatured(ctx)
	require.NoError(t, err)
}

func TestCatalogService_ListFeatured_DefaultLimit(t *testing.T) {
	fx := createTestCatalogService(t, 0)

	ctx := context.Background()
	fx.productRepo.EXPECT().List(ctx, entity.ProductFilter{Limit: defaultFeaturedLimit}).Return([]*entity.Product{}, nil)

	_, err := fx.service.ListFeatured(ctx)
	require.NoError(t, err)
}
