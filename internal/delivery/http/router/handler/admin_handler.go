package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"

	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"
)

// AdminHandlerParams holds dependencies for AdminHandler, injected by Fx.
type AdminHandlerParams struct {
	fx.In

	AdminUC usecase.AdminUsecase
	Logger  *slog.Logger
}

// AdminHandler is the staff JSON API for the catalog and order statuses.
type AdminHandler struct {
	adminUC usecase.AdminUsecase
	logger  *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler
func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	return &AdminHandler{
		adminUC: params.AdminUC,
		logger:  params.Logger,
	}
}

// CategoryRequest is the body of category create and update. Multipart
// requests may add an "image" file.
type CategoryRequest struct {
	Name        string `json:"name" validate:"required,max=200"`
	Description string `json:"description"`
}

// ProductRequest is the body of product create and update. Price is a decimal
// string such as "1499.90".
type ProductRequest struct {
	Name        string `json:"name" validate:"required,max=200"`
	Description string `json:"description"`
	Price       string `json:"price" validate:"required"`
	CategoryID  *uint  `json:"category_id"`
}

// OrderStatusRequest changes the fulfilment state of an order.
type OrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending processing shipped delivered cancelled"`
}

// CategoryResponse is the JSON view of a category.
type CategoryResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image,omitempty"`
}

// ProductResponse is the JSON view of a product.
type ProductResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
	CategoryID  *uint  `json:"category_id"`
	Image       string `json:"image,omitempty"`
}

// OrderItemResponse is one line of an order.
type OrderItemResponse struct {
	ProductID *uint  `json:"product_id"`
	Quantity  int    `json:"quantity"`
	Price     string `json:"price"`
}

// OrderResponse is the JSON view of an order.
type OrderResponse struct {
	ID              uint                `json:"id"`
	UserID          *uint               `json:"user_id"`
	Status          string              `json:"status"`
	ShippingAddress string              `json:"shipping_address"`
	Phone           string              `json:"phone"`
	Email           string              `json:"email"`
	TotalAmount     string              `json:"total_amount"`
	Items           []OrderItemResponse `json:"items"`
	CreatedAt       time.Time           `json:"created_at"`
}

func newCategoryResponse(category *entity.Category) CategoryResponse {
	return CategoryResponse{
		ID:          category.ID,
		Name:        category.Name,
		Description: category.Description,
		Image:       category.Image,
	}
}

func newProductResponse(product *entity.Product) ProductResponse {
	return ProductResponse{
		ID:          product.ID,
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price.StringFixed(2),
		CategoryID:  product.CategoryID,
		Image:       product.Image,
	}
}

func newOrderResponse(order *entity.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, OrderItemResponse{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price.StringFixed(2),
		})
	}

	return OrderResponse{
		ID:              order.ID,
		UserID:          order.UserID,
		Status:          order.Status.String(),
		ShippingAddress: order.Shipping.ShippingAddress,
		Phone:           order.Shipping.Phone,
		Email:           order.Shipping.Email,
		TotalAmount:     order.TotalAmount.StringFixed(2),
		Items:           items,
		CreatedAt:       order.CreatedAt,
	}
}

func (h *AdminHandler) CreateCategory(c echo.Context) error {
	return h.saveCategory(c, http.StatusCreated, func(input usecase.CategoryInput) (*entity.Category, error) {
		return h.adminUC.CreateCategory(c.Request().Context(), input)
	})
}

func (h *AdminHandler) UpdateCategory(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return h.saveCategory(c, http.StatusOK, func(input usecase.CategoryInput) (*entity.Category, error) {
		return h.adminUC.UpdateCategory(c.Request().Context(), id, input)
	})
}

func (h *AdminHandler) saveCategory(c echo.Context, status int, save func(usecase.CategoryInput) (*entity.Category, error)) error {
	var req CategoryRequest
	if isMultipart(c) {
		req.Name = c.FormValue("name")
		req.Description = c.FormValue("description")
	} else if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid category input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	image, closeImage, err := formUpload(c, "image")
	if err != nil {
		return err
	}
	defer closeImage()

	category, err := save(usecase.CategoryInput{Name: req.Name, Description: req.Description, Image: image})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, status, newCategoryResponse(category))
}

func (h *AdminHandler) DeleteCategory(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.adminUC.DeleteCategory(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *AdminHandler) CreateProduct(c echo.Context) error {
	return h.saveProduct(c, http.StatusCreated, func(input usecase.ProductInput) (*entity.Product, error) {
		return h.adminUC.CreateProduct(c.Request().Context(), input)
	})
}

func (h *AdminHandler) UpdateProduct(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return h.saveProduct(c, http.StatusOK, func(input usecase.ProductInput) (*entity.Product, error) {
		return h.adminUC.UpdateProduct(c.Request().Context(), id, input)
	})
}

func (h *AdminHandler) saveProduct(c echo.Context, status int, save func(usecase.ProductInput) (*entity.Product, error)) error {
	var req ProductRequest
	if isMultipart(c) {
		if err := productRequestFromForm(c, &req); err != nil {
			return response.HandleAppError(c, err)
		}
	} else if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid product input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	price, err := decimal.NewFromString(strings.TrimSpace(req.Price))
	if err != nil {
		return response.HandleAppError(c, domainerrors.NewValidationError("price", domainerrors.MsgInvalidPrice))
	}

	image, closeImage, err := formUpload(c, "image")
	if err != nil {
		return err
	}
	defer closeImage()

	product, err := save(usecase.ProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       price,
		CategoryID:  req.CategoryID,
		Image:       image,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, status, newProductResponse(product))
}

func productRequestFromForm(c echo.Context, req *ProductRequest) error {
	req.Name = c.FormValue("name")
	req.Description = c.FormValue("description")
	req.Price = c.FormValue("price")

	raw := strings.TrimSpace(c.FormValue("category_id"))
	if raw == "" {
		return nil
	}

	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return domainerrors.NewValidationError("category_id", domainerrors.ErrCategoryNotFound.Message())
	}
	categoryID := uint(id)
	req.CategoryID = &categoryID

	return nil
}

func (h *AdminHandler) DeleteProduct(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.adminUC.DeleteProduct(c.Request().Context(), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// ListOrders returns every order, optionally narrowed by ?status=.
func (h *AdminHandler) ListOrders(c echo.Context) error {
	var status *entity.OrderStatus
	if raw := c.QueryParam("status"); raw != "" {
		s := entity.OrderStatus(raw)
		status = &s
	}

	orders, err := h.adminUC.ListOrders(c.Request().Context(), status)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	out := make([]OrderResponse, 0, len(orders))
	for _, order := range orders {
		out = append(out, newOrderResponse(order))
	}

	return response.Success(c, http.StatusOK, out)
}

func (h *AdminHandler) UpdateOrderStatus(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req OrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid status input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	order, err := h.adminUC.UpdateOrderStatus(c.Request().Context(), id, entity.OrderStatus(req.Status))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newOrderResponse(order))
}
