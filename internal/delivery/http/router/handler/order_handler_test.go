package handler

import (
	"log/slog"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	mockUsecase "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"
)

func newOrderHandler(t *testing.T) (*OrderHandler, *mockUsecase.MockOrderUsecase) {
	orderUC := mockUsecase.NewMockOrderUsecase(t)

	return NewOrderHandler(OrderHandlerParams{OrderUC: orderUC, Logger: slog.New(slog.DiscardHandler)}), orderUC
}

func checkoutPageFixture() *usecase.CheckoutPage {
	return &usecase.CheckoutPage{
		Cart: sampleCart(),
		Defaults: usecase.CheckoutInput{
			ShippingAddress: "Москва, ул. Ленина, 1",
			Phone:           "+79001234567",
			Email:           "ivan@example.com",
		},
	}
}

func TestOrderHandler_CheckoutForm(t *testing.T) {
	t.Run("prefilled from profile", func(t *testing.T) {
		h, orderUC := newOrderHandler(t)
		orderUC.EXPECT().PrepareCheckout(mock.Anything, uint(7)).Return(checkoutPageFixture(), nil)

		c, rec := newContext(newTestEcho(t), http.MethodGet, "/checkout/", nil)
		withUser(c, 7)

		require.NoError(t, h.CheckoutForm(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Москва, ул. Ленина, 1")
		assert.Contains(t, rec.Body.String(), "ivan@example.com")
		assert.Contains(t, rec.Body.String(), "2999.80 ₽")
	})

	t.Run("empty cart goes back to the cart", func(t *testing.T) {
		h, orderUC := newOrderHandler(t)
		orderUC.EXPECT().PrepareCheckout(mock.Anything, uint(7)).Return(&usecase.CheckoutPage{Cart: entity.NewCart(nil)}, nil)

		c, rec := newContext(newTestEcho(t), http.MethodGet, "/checkout/", nil)
		withUser(c, 7)

		require.NoError(t, h.CheckoutForm(c))
		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/cart/", rec.Header().Get(echo.HeaderLocation))
	})
}

func TestOrderHandler_Checkout(t *testing.T) {
	form := url.Values{
		"shipping_address": {"Москва, ул. Ленина, 1"},
		"phone":            {"+79001234567"},
		"email":            {"ivan@example.com"},
	}

	t.Run("places the order", func(t *testing.T) {
		h, orderUC := newOrderHandler(t)
		orderUC.EXPECT().Checkout(mock.Anything, uint(7), usecase.CheckoutInput{
			ShippingAddress: "Москва, ул. Ленина, 1",
			Phone:           "+79001234567",
			Email:           "ivan@example.com",
		}).Return(&usecase.CheckoutOutput{Order: &entity.Order{ID: 42}}, nil)

		c, rec := newContext(newTestEcho(t), http.MethodPost, "/checkout/", form)
		withUser(c, 7)

		require.NoError(t, h.Checkout(c))
		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/order/success/42/", rec.Header().Get(echo.HeaderLocation))
	})

	t.Run("empty cart creates nothing", func(t *testing.T) {
		h, orderUC := newOrderHandler(t)
		orderUC.EXPECT().Checkout(mock.Anything, uint(7), mock.Anything).Return(&usecase.CheckoutOutput{}, nil)

		c, rec := newContext(newTestEcho(t), http.MethodPost, "/checkout/", form)
		withUser(c, 7)

		require.NoError(t, h.Checkout(c))
		assert.Equal(t, "/cart/", rec.Header().Get(echo.HeaderLocation))
	})

	t.Run("invalid phone re-renders the form", func(t *testing.T) {
		h, orderUC := newOrderHandler(t)
		orderUC.EXPECT().Checkout(mock.Anything, uint(7), mock.Anything).
			Return(nil, domainerrors.NewValidationError("phone", domainerrors.MsgInvalidPhone))
		orderUC.EXPECT().PrepareCheckout(mock.Anything, uint(7)).Return(checkoutPageFixture(), nil)

		bad := url.Values{"shipping_address": {"Москва"}, "phone": {"89001234567"}, "email": {""}}
		c, rec := newContext(newTestEcho(t), http.MethodPost, "/checkout/", bad)
		withUser(c, 7)

		require.NoError(t, h.Checkout(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), `value="89001234567"`)
		assert.Contains(t, rec.Body.String(), "Номер телефона должен быть в формате")
	})

	t.Run("malformed email is caught before the usecase", func(t *testing.T) {
		h, orderUC := newOrderHandler(t)
		orderUC.EXPECT().PrepareCheckout(mock.Anything, uint(7)).Return(checkoutPageFixture(), nil)

		bad := url.Values{"shipping_address": {"Москва"}, "phone": {"+79001234567"}, "email": {"not-an-email"}}
		c, rec := newContext(newTestEcho(t), http.MethodPost, "/checkout/", bad)
		withUser(c, 7)

		require.NoError(t, h.Checkout(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), domainerrors.MsgInvalidEmail)
	})

	t.Run("storage failure surfaces", func(t *testing.T) {
		h, orderUC := newOrderHandler(t)
		orderUC.EXPECT().Checkout(mock.Anything, uint(7), mock.Anything).Return(nil, domainerrors.ErrTransactionFailed)

		c, _ := newContext(newTestEcho(t), http.MethodPost, "/checkout/", form)
		withUser(c, 7)

		assert.ErrorIs(t, h.Checkout(c), domainerrors.ErrTransactionFailed)
	})
}

func TestOrderHandler_Detail(t *testing.T) {
	productID := uint(1)
	userID := uint(7)
	order := &entity.Order{
		ID:          42,
		UserID:      &userID,
		Status:      entity.OrderStatusShipped,
		TotalAmount: decimal.RequireFromString("2999.80"),
		CreatedAt:   time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
		Items: []*entity.OrderItem{
			{ID: 1, ProductID: &productID, Product: &entity.Product{ID: 1, Name: "Чайник"}, Quantity: 2, Price: decimal.RequireFromString("1499.90")},
		},
	}

	t.Run("owner sees the order", func(t *testing.T) {
		h, orderUC := newOrderHandler(t)
		orderUC.EXPECT().GetOrder(mock.Anything, uint(7), uint(42)).Return(order, nil)

		c, rec := newContext(newTestEcho(t), http.MethodGet, "/order/42/", nil)
		withUser(c, 7)
		withParam(c, "id", "42")

		require.NoError(t, h.Detail(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Заказ №42")
		assert.Contains(t, rec.Body.String(), "Отправлен")
	})

	t.Run("someone else's order is not found", func(t *testing.T) {
		h, orderUC := newOrderHandler(t)
		orderUC.EXPECT().GetOrder(mock.Anything, uint(8), uint(42)).Return(nil, domainerrors.ErrOrderNotFound)

		c, _ := newContext(newTestEcho(t), http.MethodGet, "/order/42/", nil)
		withUser(c, 8)
		withParam(c, "id", "42")

		assert.ErrorIs(t, h.Detail(c), domainerrors.ErrOrderNotFound)
	})
}

func TestOrderHandler_List(t *testing.T) {
	h, orderUC := newOrderHandler(t)
	orderUC.EXPECT().ListOrders(mock.Anything, uint(7)).Return([]*entity.Order{
		{ID: 2, Status: entity.OrderStatusPending, TotalAmount: decimal.NewFromInt(10)},
		{ID: 1, Status: entity.OrderStatusDelivered, TotalAmount: decimal.NewFromInt(20)},
	}, nil)

	c, rec := newContext(newTestEcho(t), http.MethodGet, "/orders/", nil)
	withUser(c, 7)

	require.NoError(t, h.List(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "/order/2/")
	assert.Contains(t, rec.Body.String(), "Доставлен")
}

func TestOrderHandler_QRCode(t *testing.T) {
	h, orderUC := newOrderHandler(t)
	png := []byte("\x89PNG fake")
	orderUC.EXPECT().OrderQRCode(mock.Anything, uint(7), uint(42)).Return(png, nil)

	c, rec := newContext(newTestEcho(t), http.MethodGet, "/order/42/qr.png", nil)
	withUser(c, 7)
	withParam(c, "id", "42")

	require.NoError(t, h.QRCode(c))
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, png, rec.Body.Bytes())
}
