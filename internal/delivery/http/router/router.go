// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/router/handler"
	"storefront/internal/domain/entity"
	"storefront/internal/infra/metrics"
)

type RouterParams struct {
	fx.In

	PageHandler       *handler.PageHandler
	AuthHandler       *handler.AuthHandler
	ProfileHandler    *handler.ProfileHandler
	CatalogHandler    *handler.CatalogHandler
	CartHandler       *handler.CartHandler
	OrderHandler      *handler.OrderHandler
	AdminHandler      *handler.AdminHandler
	MediaHandler      *handler.MediaHandler
	SessionMiddleware *middleware.SessionMiddleware
	Metrics           *metrics.Recorder
}

// router holds all the handlers that need to be registered.
type router struct {
	pageHandler       *handler.PageHandler
	authHandler       *handler.AuthHandler
	profileHandler    *handler.ProfileHandler
	catalogHandler    *handler.CatalogHandler
	cartHandler       *handler.CartHandler
	orderHandler      *handler.OrderHandler
	adminHandler      *handler.AdminHandler
	mediaHandler      *handler.MediaHandler
	sessionMiddleware *middleware.SessionMiddleware
	metrics           *metrics.Recorder
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		pageHandler:       params.PageHandler,
		authHandler:       params.AuthHandler,
		profileHandler:    params.ProfileHandler,
		catalogHandler:    params.CatalogHandler,
		cartHandler:       params.CartHandler,
		orderHandler:      params.OrderHandler,
		adminHandler:      params.AdminHandler,
		mediaHandler:      params.MediaHandler,
		sessionMiddleware: params.SessionMiddleware,
		metrics:           params.Metrics,
	}
}

// RegisterRoutes sets up all the routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Operational endpoints
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(r.metrics.Handler()))
	e.GET("/media/*", r.mediaHandler.Serve)

	// Public pages
	e.GET("/", r.pageHandler.Home)
	e.GET("/contacts/", r.pageHandler.Contacts)
	e.GET("/catalog/", r.catalogHandler.Catalog)
	e.GET("/product/:id/", r.catalogHandler.Product)

	// Account
	e.GET("/register/", r.authHandler.RegisterForm)
	e.POST("/register/", r.authHandler.Register)
	e.GET("/login/", r.authHandler.LoginForm)
	e.POST("/login/", r.authHandler.Login)
	e.GET("/logout/", r.authHandler.Logout)

	// Pages that require a login. The guard is attached per route because a
	// group with an empty prefix would also capture unmatched paths.
	login := r.sessionMiddleware.RequireLogin

	e.GET("/profile/", r.profileHandler.Profile, login)
	e.POST("/profile/", r.profileHandler.UpdateProfile, login)

	e.GET("/cart/", r.cartHandler.Cart, login)
	e.POST("/cart/add/:id/", r.cartHandler.Add, login)
	e.POST("/cart/update/:id/", r.cartHandler.Update, login)
	e.POST("/cart/remove/:id/", r.cartHandler.Remove, login)

	e.GET("/checkout/", r.orderHandler.CheckoutForm, login)
	e.POST("/checkout/", r.orderHandler.Checkout, login)
	e.GET("/order/success/:id/", r.orderHandler.Success, login)
	e.GET("/orders/", r.orderHandler.List, login)
	e.GET("/order/:id/", r.orderHandler.Detail, login)
	e.GET("/order/:id/qr.png", r.orderHandler.QRCode, login)

	// Staff JSON API
	admin := e.Group(middleware.APIPrefix, r.sessionMiddleware.RequireRole(entity.RoleStaff))
	{
		admin.POST("/categories", r.adminHandler.CreateCategory)
		admin.PUT("/categories/:id", r.adminHandler.UpdateCategory)
		admin.DELETE("/categories/:id", r.adminHandler.DeleteCategory)

		admin.POST("/products", r.adminHandler.CreateProduct)
		admin.PUT("/products/:id", r.adminHandler.UpdateProduct)
		admin.DELETE("/products/:id", r.adminHandler.DeleteProduct)

		admin.GET("/orders", r.adminHandler.ListOrders)
		admin.PUT("/orders/:id/status", r.adminHandler.UpdateOrderStatus)
	}
}
