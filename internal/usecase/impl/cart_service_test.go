package impl

import (
	"context"
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

type cartServiceFixtures struct {
	service     usecase.CartUsecase
	cartRepo    *mockRepo.MockCartRepository
	productRepo *mockRepo.MockProductRepository
	metrics     *mockSvc.MockMetricsRecorder
}

func createTestCartService(t *testing.T) cartServiceFixtures {
	fx := cartServiceFixtures{
		cartRepo:    mockRepo.NewMockCartRepository(t),
		productRepo: mockRepo.NewMockProductRepository(t),
		metrics:     mockSvc.NewMockMetricsRecorder(t),
	}
	fx.service = NewCartService(CartServiceParams{
		CartRepo:    fx.cartRepo,
		ProductRepo: fx.productRepo,
		Metrics:     fx.metrics,
		Logger:      newDiscardLogger(),
	})

	return fx
}

func TestCartService_AddItem_Success(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	fx.productRepo.EXPECT().FindByID(ctx, uint(5)).Return(newTestProduct(5, 10), nil)
	fx.cartRepo.EXPECT().Increment(ctx, uint(1), uint(5)).Return(&entity.CartItem{ID: 3, UserID: 1, ProductID: 5, Quantity: 2}, nil)
	fx.metrics.EXPECT().CartItemAdded().Return()

	item, err := fx.service.AddItem(ctx, 1, 5)
	require.NoError(t, err)
	assert.Equal(t, 2, item.Quantity)
}

func TestCartService_AddItem_ProductNotFound(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	fx.productRepo.EXPECT().FindByID(ctx, uint(5)).Return(nil, repository.ErrProductNotFound)

	item, err := fx.service.AddItem(ctx, 1, 5)
	assert.Nil(t, item)
	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
	fx.cartRepo.AssertNotCalled(t, "Increment", mock.Anything, mock.Anything, mock.Anything)
}

func TestCartService_UpdateQuantity_Success(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	fx.cartRepo.EXPECT().FindByID(ctx, uint(1), uint(3)).Return(&entity.CartItem{ID: 3, UserID: 1, Quantity: 1}, nil)
	fx.cartRepo.EXPECT().UpdateQuantity(ctx, uint(1), uint(3), 4).Return(nil)

	require.NoError(t, fx.service.UpdateQuantity(ctx, 1, 3, 4))
}

func TestCartService_UpdateQuantity_RejectsNonPositive(t *testing.T) {
	for _, quantity := range []int{0, -1} {
		fx := createTestCartService(t)

		ctx := context.Background()
		fx.cartRepo.EXPECT().FindByID(ctx, uint(1), uint(3)).Return(&entity.CartItem{ID: 3, UserID: 1, Quantity: 2}, nil)

		err := fx.service.UpdateQuantity(ctx, 1, 3, quantity)
		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
		fx.cartRepo.AssertNotCalled(t, "UpdateQuantity", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	}
}

func TestCartService_UpdateQuantity_OtherUsersItem(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	fx.cartRepo.EXPECT().FindByID(ctx, uint(2), uint(3)).Return(nil, repository.ErrCartItemNotFound)

	err := fx.service.UpdateQuantity(ctx, 2, 3, 5)
	assert.True(t, errors.Is(err, domainerrors.ErrCartItemNotFound))
}

func TestCartService_RemoveItem(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	fx.cartRepo.EXPECT().FindByID(ctx, uint(1), uint(3)).Return(&entity.CartItem{ID: 3, UserID: 1}, nil)
	fx.cartRepo.EXPECT().Delete(ctx, uint(1), uint(3)).Return(nil)

	require.NoError(t, fx.service.RemoveItem(ctx, 1, 3))
}

func TestCartService_RemoveItem_OtherUsersItem(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	fx.cartRepo.EXPECT().FindByID(ctx, uint(2), uint(3)).Return(nil, repository.ErrCartItemNotFound)

	err := fx.service.RemoveItem(ctx, 2, 3)
	assert.True(t, errors.Is(err, domainerrors.ErrCartItemNotFound))
	fx.cartRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything)
}

func TestCartService_GetCart_Total(t *testing.T) {
	fx := createTestCartService(t)

	ctx := context.Background()
	items := []*entity.CartItem{
		{ID: 1, Product: newTestProduct(1, 100), Quantity: 2},
		{ID: 2, Product: &entity.Product{ID: 2}, Quantity: 3},
		{ID: 3, Product: newTestProduct(3, 50), Quantity: 1},
	}
	fx.cartRepo.EXPECT().ListByUser(ctx, uint(1)).Return(items, nil)

	cart, err := fx.service.GetCart(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, cart.Items, 3)
	assert.True(t, cart.Total.Equal(decimal.NewFromInt(250)))
}
