package impl

import (
	"context"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	mockRepo "storefront/internal/mocks/repository"
	mockSvc "storefront/internal/mocks/service"
	"storefront/internal/usecase"
)

type adminServiceFixtures struct {
	service      usecase.AdminUsecase
	categoryRepo *mockRepo.MockCategoryRepository
	productRepo  *mockRepo.MockProductRepository
	orderRepo    *mockRepo.MockOrderRepository
	storage      *mockSvc.MockFileStorage
}

func createTestAdminService(t *testing.T) adminServiceFixtures {
	fx := adminServiceFixtures{
		categoryRepo: mockRepo.NewMockCategoryRepository(t),
		productRepo:  mockRepo.NewMockProductRepository(t),
		orderRepo:    mockRepo.NewMockOrderRepository(t),
		storage:      mockSvc.NewMockFileStorage(t),
	}
	fx.service = NewAdminService(AdminServiceParams{
		CategoryRepo: fx.categoryRepo,
		ProductRepo:  fx.productRepo,
		OrderRepo:    fx.orderRepo,
		Storage:      fx.storage,
		Logger:       newDiscardLogger(),
	})

	return fx
}

func TestAdminService_CreateProduct_WithImage(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	categoryID := uint(3)
	image := &usecase.Upload{Filename: "kettle.webp", ContentType: "image/webp", Reader: strings.NewReader("img")}

	fx.categoryRepo.EXPECT().FindByID(ctx, categoryID).Return(&entity.Category{ID: categoryID}, nil)
	fx.storage.EXPECT().Save(ctx, "products", "kettle.webp", "image/webp", image.Reader).Return("products/k.webp", nil)
	fx.productRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(p *entity.Product) bool {
			return p.Name == "Kettle" && p.Image == "products/k.webp" && *p.CategoryID == categoryID
		})).
		Run(func(_ context.Context, p *entity.Product) { p.ID = 9 }).
		Return(nil)

	product, err := fx.service.CreateProduct(ctx, usecase.ProductInput{
		Name:       " Kettle ",
		Price:      decimal.RequireFromString("1499.90"),
		CategoryID: &categoryID,
		Image:      image,
	})
	require.NoError(t, err)
	assert.Equal(t, uint(9), product.ID)
}

func TestAdminService_CreateProduct_UnknownCategory(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	categoryID := uint(404)
	fx.categoryRepo.EXPECT().FindByID(ctx, categoryID).Return(nil, repository.ErrCategoryNotFound)

	_, err := fx.service.CreateProduct(ctx, usecase.ProductInput{Name: "X", CategoryID: &categoryID})

	var verr *domainerrors.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.NotEmpty(t, verr.Field("category_id"))
}

func TestAdminService_CreateProduct_NegativePrice(t *testing.T) {
	fx := createTestAdminService(t)

	_, err := fx.service.CreateProduct(context.Background(), usecase.ProductInput{Name: "X", Price: decimal.NewFromInt(-1)})

	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestAdminService_UpdateProduct_NotFound(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	fx.productRepo.EXPECT().FindByID(ctx, uint(1)).Return(nil, repository.ErrProductNotFound)

	_, err := fx.service.UpdateProduct(ctx, 1, usecase.ProductInput{Name: "X"})
	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
}

func TestAdminService_DeleteCategory(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	fx.categoryRepo.EXPECT().Delete(ctx, uint(2)).Return(nil)
	require.NoError(t, fx.service.DeleteCategory(ctx, 2))

	fx.categoryRepo.EXPECT().Delete(ctx, uint(3)).Return(repository.ErrCategoryNotFound)
	assert.True(t, errors.Is(fx.service.DeleteCategory(ctx, 3), domainerrors.ErrCategoryNotFound))
}

func TestAdminService_UpdateOrderStatus(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	fx.orderRepo.EXPECT().UpdateStatus(ctx, uint(42), entity.OrderStatusShipped).Return(nil)
	fx.orderRepo.EXPECT().FindByID(ctx, uint(42)).Return(&entity.Order{ID: 42, Status: entity.OrderStatusShipped}, nil)

	order, err := fx.service.UpdateOrderStatus(ctx, 42, entity.OrderStatusShipped)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusShipped, order.Status)
}

func TestAdminService_UpdateOrderStatus_Invalid(t *testing.T) {
	fx := createTestAdminService(t)

	_, err := fx.service.UpdateOrderStatus(context.Background(), 42, entity.OrderStatus("lost"))
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidOrderStatus))
}

func TestAdminService_UpdateOrderStatus_NotFound(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	fx.orderRepo.EXPECT().UpdateStatus(ctx, uint(42), entity.OrderStatusCancelled).Return(repository.ErrOrderNotFound)

	_, err := fx.service.UpdateOrderStatus(ctx, 42, entity.OrderStatusCancelled)
	assert.True(t, errors.Is(err, domainerrors.ErrOrderNotFound))
}

func TestAdminService_ListOrders_FilterByStatus(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	status := entity.OrderStatusPending
	fx.orderRepo.EXPECT().ListAll(ctx, &status).Return([]*entity.Order{{ID: 1}}, nil)

	orders, err := fx.service.ListOrders(ctx, &status)
	require.NoError(t, err)
	assert.Len(t, orders, 1)
}
