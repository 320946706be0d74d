package handler

import (
	"log/slog"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/response"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"
)

const (
	cartPage = "cart"
	cartPath = "/cart/"
)

// CartHandlerParams holds dependencies for CartHandler, injected by Fx.
type CartHandlerParams struct {
	fx.In

	CartUC usecase.CartUsecase
	Logger *slog.Logger
}

// CartHandler serves the cart page and its mutations.
type CartHandler struct {
	cartUC usecase.CartUsecase
	logger *slog.Logger
}

// NewCartHandler is the constructor for CartHandler
func NewCartHandler(params CartHandlerParams) *CartHandler {
	return &CartHandler{
		cartUC: params.CartUC,
		logger: params.Logger,
	}
}

func (h *CartHandler) Cart(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return domainerrors.ErrAuthRequired
	}

	cart, err := h.cartUC.GetCart(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return response.Render(c, cartPage, response.NewPage(c, "Корзина", cart))
}

// Add puts one more unit of the product into the cart.
func (h *CartHandler) Add(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return domainerrors.ErrAuthRequired
	}

	productID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if _, err := h.cartUC.AddItem(c.Request().Context(), userID, productID); err != nil {
		return err
	}

	return response.Redirect(c, cartPath)
}

// Update sets the quantity of an item. Invalid input re-renders the cart
// with the message next to that item.
func (h *CartHandler) Update(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return domainerrors.ErrAuthRequired
	}

	itemID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	raw := strings.TrimSpace(c.FormValue("quantity"))
	quantity, convErr := strconv.Atoi(raw)
	if convErr != nil {
		err = domainerrors.NewValidationError("quantity", domainerrors.MsgInvalidQuantity)
	} else {
		err = h.cartUC.UpdateQuantity(c.Request().Context(), userID, itemID, quantity)
	}
	if err == nil {
		return response.Redirect(c, cartPath)
	}

	verr, ok := asValidation(err)
	if !ok {
		return err
	}

	cart, err := h.cartUC.GetCart(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	page := response.NewPage(c, "Корзина", cart)
	page.Form["item_id"] = strconv.FormatUint(uint64(itemID), 10)
	page.Form["quantity"] = raw

	return response.RenderInvalid(c, cartPage, page, verr)
}

func (h *CartHandler) Remove(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return domainerrors.ErrAuthRequired
	}

	itemID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := h.cartUC.RemoveItem(c.Request().Context(), userID, itemID); err != nil {
		return err
	}

	return response.Redirect(c, cartPath)
}
