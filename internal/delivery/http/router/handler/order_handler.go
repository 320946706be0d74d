package handler

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/response"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"
)

const checkoutPage = "checkout"

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC usecase.OrderUsecase
	Logger  *slog.Logger
}

// OrderHandler serves checkout and the order history.
type OrderHandler struct {
	orderUC usecase.OrderUsecase
	logger  *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{
		orderUC: params.OrderUC,
		logger:  params.Logger,
	}
}

type checkoutForm struct {
	ShippingAddress string `form:"shipping_address"`
	Phone           string `form:"phone"`
	Email           string `form:"email" validate:"omitempty,email"`
}

func (f *checkoutForm) values() map[string]string {
	return map[string]string{
		"shipping_address": f.ShippingAddress,
		"phone":            f.Phone,
		"email":            f.Email,
	}
}

// CheckoutForm shows the shipping form prefilled from the profile. An empty
// cart sends the user back to the cart.
func (h *OrderHandler) CheckoutForm(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return domainerrors.ErrAuthRequired
	}

	prepared, err := h.orderUC.PrepareCheckout(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	if prepared.Cart.IsEmpty() {
		return response.Redirect(c, cartPath)
	}

	defaults := checkoutForm{
		ShippingAddress: prepared.Defaults.ShippingAddress,
		Phone:           prepared.Defaults.Phone,
		Email:           prepared.Defaults.Email,
	}
	page := response.NewPage(c, "Оформление заказа", prepared)
	page.Form = defaults.values()

	return response.Render(c, checkoutPage, page)
}

// Checkout places the order and redirects to its confirmation page.
func (h *OrderHandler) Checkout(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return domainerrors.ErrAuthRequired
	}

	var form checkoutForm
	out, err := h.placeOrder(c, userID, &form)
	if err == nil {
		if out.Order == nil {
			return response.Redirect(c, cartPath)
		}

		return response.Redirect(c, fmt.Sprintf("/order/success/%d/", out.Order.ID))
	}

	verr, ok := asValidation(err)
	if !ok {
		return err
	}

	prepared, err := h.orderUC.PrepareCheckout(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	if prepared.Cart.IsEmpty() {
		return response.Redirect(c, cartPath)
	}

	page := response.NewPage(c, "Оформление заказа", prepared)
	page.Form = form.values()

	return response.RenderInvalid(c, checkoutPage, page, verr)
}

func (h *OrderHandler) placeOrder(c echo.Context, userID uint, form *checkoutForm) (*usecase.CheckoutOutput, error) {
	if err := c.Bind(form); err != nil {
		return nil, malformedForm()
	}
	if err := c.Validate(form); err != nil {
		return nil, err
	}

	return h.orderUC.Checkout(c.Request().Context(), userID, usecase.CheckoutInput{
		ShippingAddress: form.ShippingAddress,
		Phone:           form.Phone,
		Email:           form.Email,
	})
}

func (h *OrderHandler) Success(c echo.Context) error {
	return h.renderOrder(c, "order_success")
}

func (h *OrderHandler) Detail(c echo.Context) error {
	return h.renderOrder(c, "order_detail")
}

func (h *OrderHandler) renderOrder(c echo.Context, name string) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return domainerrors.ErrAuthRequired
	}

	orderID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	order, err := h.orderUC.GetOrder(c.Request().Context(), userID, orderID)
	if err != nil {
		return err
	}

	return response.Render(c, name, response.NewPage(c, fmt.Sprintf("Заказ №%d", order.ID), order))
}

func (h *OrderHandler) List(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return domainerrors.ErrAuthRequired
	}

	orders, err := h.orderUC.ListOrders(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return response.Render(c, "orders", response.NewPage(c, "Мои заказы", orders))
}

// QRCode returns a PNG linking to the order page.
func (h *OrderHandler) QRCode(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return domainerrors.ErrAuthRequired
	}

	orderID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	png, err := h.orderUC.OrderQRCode(c.Request().Context(), userID, orderID)
	if err != nil {
		return err
	}

	c.Response().Header().Set(echo.HeaderCacheControl, "private, max-age=3600")

	return c.Blob(http.StatusOK, "image/png", png)
}
