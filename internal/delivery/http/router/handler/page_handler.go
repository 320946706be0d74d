package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"
)

// PageHandlerParams holds dependencies for PageHandler, injected by Fx.
type PageHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	Logger    *slog.Logger
}

// PageHandler serves the landing and static pages.
type PageHandler struct {
	catalogUC usecase.CatalogUsecase
	logger    *slog.Logger
}

// NewPageHandler is the constructor for PageHandler
func NewPageHandler(params PageHandlerParams) *PageHandler {
	return &PageHandler{
		catalogUC: params.CatalogUC,
		logger:    params.Logger,
	}
}

// Home shows the featured products.
func (h *PageHandler) Home(c echo.Context) error {
	products, err := h.catalogUC.ListFeatured(c.Request().Context())
	if err != nil {
		return err
	}

	return response.Render(c, "home", response.NewPage(c, "Главная", products))
}

func (h *PageHandler) Contacts(c echo.Context) error {
	return response.Render(c, "contacts", response.NewPage(c, "Контакты", nil))
}

// HealthCheck reports liveness.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
