package handler

import (
	"log/slog"
	"net/http"
	"net/url"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	mockUsecase "storefront/internal/mocks/usecase"
)

func newCartHandler(t *testing.T) (*CartHandler, *mockUsecase.MockCartUsecase) {
	cartUC := mockUsecase.NewMockCartUsecase(t)

	return NewCartHandler(CartHandlerParams{CartUC: cartUC, Logger: slog.New(slog.DiscardHandler)}), cartUC
}

func sampleCart() *entity.Cart {
	return entity.NewCart([]*entity.CartItem{
		{ID: 11, ProductID: 1, Quantity: 2, Product: &entity.Product{ID: 1, Name: "Чайник", Price: decimal.RequireFromString("1499.90")}},
	})
}

func TestCartHandler_Cart(t *testing.T) {
	h, cartUC := newCartHandler(t)
	e := newTestEcho(t)
	cartUC.EXPECT().GetCart(mock.Anything, uint(7)).Return(sampleCart(), nil)

	c, rec := newContext(e, http.MethodGet, "/cart/", nil)
	withUser(c, 7)

	require.NoError(t, h.Cart(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Чайник")
	assert.Contains(t, rec.Body.String(), "2999.80 ₽")
}

func TestCartHandler_Cart_Anonymous(t *testing.T) {
	h, _ := newCartHandler(t)
	c, _ := newContext(newTestEcho(t), http.MethodGet, "/cart/", nil)

	assert.ErrorIs(t, h.Cart(c), domainerrors.ErrAuthRequired)
}

func TestCartHandler_Add(t *testing.T) {
	t.Run("adds and redirects to cart", func(t *testing.T) {
		h, cartUC := newCartHandler(t)
		cartUC.EXPECT().AddItem(mock.Anything, uint(7), uint(3)).Return(&entity.CartItem{ID: 1, Quantity: 1}, nil)

		c, rec := newContext(newTestEcho(t), http.MethodPost, "/cart/add/3/", url.Values{})
		withUser(c, 7)
		withParam(c, "id", "3")

		require.NoError(t, h.Add(c))
		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/cart/", rec.Header().Get(echo.HeaderLocation))
	})

	t.Run("unknown product", func(t *testing.T) {
		h, cartUC := newCartHandler(t)
		cartUC.EXPECT().AddItem(mock.Anything, uint(7), uint(404)).Return(nil, domainerrors.ErrProductNotFound)

		c, _ := newContext(newTestEcho(t), http.MethodPost, "/cart/add/404/", url.Values{})
		withUser(c, 7)
		withParam(c, "id", "404")

		assert.ErrorIs(t, h.Add(c), domainerrors.ErrProductNotFound)
	})

	t.Run("non numeric id", func(t *testing.T) {
		h, _ := newCartHandler(t)

		c, _ := newContext(newTestEcho(t), http.MethodPost, "/cart/add/abc/", url.Values{})
		withUser(c, 7)
		withParam(c, "id", "abc")

		assert.ErrorIs(t, h.Add(c), domainerrors.ErrNotFound)
	})
}

func TestCartHandler_Update(t *testing.T) {
	t.Run("valid quantity", func(t *testing.T) {
		h, cartUC := newCartHandler(t)
		cartUC.EXPECT().UpdateQuantity(mock.Anything, uint(7), uint(11), 5).Return(nil)

		c, rec := newContext(newTestEcho(t), http.MethodPost, "/cart/update/11/", url.Values{"quantity": {"5"}})
		withUser(c, 7)
		withParam(c, "id", "11")

		require.NoError(t, h.Update(c))
		assert.Equal(t, http.StatusFound, rec.Code)
	})

	t.Run("non numeric quantity never reaches the usecase", func(t *testing.T) {
		h, cartUC := newCartHandler(t)
		cartUC.EXPECT().GetCart(mock.Anything, uint(7)).Return(sampleCart(), nil)

		c, rec := newContext(newTestEcho(t), http.MethodPost, "/cart/update/11/", url.Values{"quantity": {"два"}})
		withUser(c, 7)
		withParam(c, "id", "11")

		require.NoError(t, h.Update(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), domainerrors.MsgInvalidQuantity)
	})

	t.Run("rejected by the usecase", func(t *testing.T) {
		h, cartUC := newCartHandler(t)
		cartUC.EXPECT().UpdateQuantity(mock.Anything, uint(7), uint(11), 0).
			Return(domainerrors.NewValidationError("quantity", domainerrors.MsgInvalidQuantity))
		cartUC.EXPECT().GetCart(mock.Anything, uint(7)).Return(sampleCart(), nil)

		c, rec := newContext(newTestEcho(t), http.MethodPost, "/cart/update/11/", url.Values{"quantity": {"0"}})
		withUser(c, 7)
		withParam(c, "id", "11")

		require.NoError(t, h.Update(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), domainerrors.MsgInvalidQuantity)
	})

	t.Run("foreign item", func(t *testing.T) {
		h, cartUC := newCartHandler(t)
		cartUC.EXPECT().UpdateQuantity(mock.Anything, uint(7), uint(99), 2).Return(domainerrors.ErrCartItemNotFound)

		c, _ := newContext(newTestEcho(t), http.MethodPost, "/cart/update/99/", url.Values{"quantity": {"2"}})
		withUser(c, 7)
		withParam(c, "id", "99")

		assert.ErrorIs(t, h.Update(c), domainerrors.ErrCartItemNotFound)
	})
}

func TestCartHandler_Remove(t *testing.T) {
	h, cartUC := newCartHandler(t)
	cartUC.EXPECT().RemoveItem(mock.Anything, uint(7), uint(11)).Return(nil)

	c, rec := newContext(newTestEcho(t), http.MethodPost, "/cart/remove/11/", url.Values{})
	withUser(c, 7)
	withParam(c, "id", "11")

	require.NoError(t, h.Remove(c))
	assert.Equal(t, "/cart/", rec.Header().Get(echo.HeaderLocation))
}
