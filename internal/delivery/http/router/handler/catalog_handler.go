package handler

import (
	"log/slog"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"

	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"
)

// CatalogHandlerParams holds dependencies for CatalogHandler, injected by Fx.
type CatalogHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	Logger    *slog.Logger
}

// CatalogHandler serves the catalog listing and product pages.
type CatalogHandler struct {
	catalogUC usecase.CatalogUsecase
	logger    *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler
func NewCatalogHandler(params CatalogHandlerParams) *CatalogHandler {
	return &CatalogHandler{
		catalogUC: params.CatalogUC,
		logger:    params.Logger,
	}
}

// Catalog lists products narrowed by category, q, min_price and max_price.
func (h *CatalogHandler) Catalog(c echo.Context) error {
	out, err := h.catalogUC.Browse(c.Request().Context(), parseProductFilter(c))
	if err != nil {
		return err
	}

	page := response.NewPage(c, "Каталог", out)
	for _, key := range []string{"category", "q", "min_price", "max_price"} {
		page.Form[key] = c.QueryParam(key)
	}

	return response.Render(c, "catalog", page)
}

func (h *CatalogHandler) Product(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	product, err := h.catalogUC.GetProduct(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return response.Render(c, "product", response.NewPage(c, product.Name, product))
}

// parseProductFilter ignores malformed values instead of rejecting the request.
func parseProductFilter(c echo.Context) entity.ProductFilter {
	filter := entity.ProductFilter{
		Query:    strings.TrimSpace(c.QueryParam("q")),
		MinPrice: parsePrice(c.QueryParam("min_price")),
		MaxPrice: parsePrice(c.QueryParam("max_price")),
	}

	if id, err := strconv.ParseUint(strings.TrimSpace(c.QueryParam("category")), 10, 64); err == nil && id > 0 {
		categoryID := uint(id)
		filter.CategoryID = &categoryID
	}

	return filter
}

// parsePrice accepts both "12.50" and "12,50".
func parsePrice(raw string) *decimal.Decimal {
	raw = strings.ReplaceAll(strings.TrimSpace(raw), ",", ".")
	if raw == "" {
		return nil
	}

	price, err := decimal.NewFromString(raw)
	if err != nil {
		return nil
	}

	return &price
}
