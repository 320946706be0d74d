package http

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/router"
	"storefront/internal/delivery/http/router/handler"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
	"storefront/internal/infra/metrics"
	mockService "storefront/internal/mocks/service"
	mockUsecase "storefront/internal/mocks/usecase"
)

type testServer struct {
	echo     *echo.Echo
	tokenSvc *mockService.MockTokenService
	cartUC   *mockUsecase.MockCartUsecase
}

func newTestServer(t *testing.T) *testServer {
	logger := slog.New(slog.DiscardHandler)
	cfg := &config.Config{Session: &config.SessionConfig{CookieName: "sid", TTL: time.Hour}}
	cfg.HTTP.MaxRequestBodySize = "1MB"

	tokenSvc := mockService.NewMockTokenService(t)
	cartUC := mockUsecase.NewMockCartUsecase(t)
	catalogUC := mockUsecase.NewMockCatalogUsecase(t)
	userUC := mockUsecase.NewMockUserUsecase(t)
	orderUC := mockUsecase.NewMockOrderUsecase(t)
	session := middleware.NewSessionMiddleware(middleware.SessionMiddlewareParams{TokenService: tokenSvc, Config: cfg})
	recorder := metrics.NewRecorder()

	e, err := newEcho(ServerParams{
		Cfg:               cfg,
		Logger:            logger,
		Metrics:           recorder,
		SessionMiddleware: session,
		RouterParams: router.RouterParams{
			PageHandler:       handler.NewPageHandler(handler.PageHandlerParams{CatalogUC: catalogUC, Logger: logger}),
			AuthHandler:       handler.NewAuthHandler(handler.AuthHandlerParams{UserUC: userUC, Session: session, Logger: logger}),
			ProfileHandler:    handler.NewProfileHandler(handler.ProfileHandlerParams{UserUC: userUC, Logger: logger}),
			CatalogHandler:    handler.NewCatalogHandler(handler.CatalogHandlerParams{CatalogUC: catalogUC, Logger: logger}),
			CartHandler:       handler.NewCartHandler(handler.CartHandlerParams{CartUC: cartUC, Logger: logger}),
			OrderHandler:      handler.NewOrderHandler(handler.OrderHandlerParams{OrderUC: orderUC, Logger: logger}),
			AdminHandler:      handler.NewAdminHandler(handler.AdminHandlerParams{AdminUC: mockUsecase.NewMockAdminUsecase(t), Logger: logger}),
			MediaHandler:      handler.NewMediaHandler(handler.MediaHandlerParams{Storage: mockService.NewMockFileStorage(t), Logger: logger}),
			SessionMiddleware: session,
			Metrics:           recorder,
		},
	})
	require.NoError(t, err)

	return &testServer{echo: e, tokenSvc: tokenSvc, cartUC: cartUC}
}

func (s *testServer) do(method, target, cookie string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: "sid", Value: cookie})
	}
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	return rec
}

func TestServer_HealthAndRequestID(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get(deliverycontext.HeaderXRequestID))
}

func TestServer_ProtectedPageRedirectsToLogin(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodGet, "/cart/", "")

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login/?next=%2Fcart%2F", rec.Header().Get(echo.HeaderLocation))
}

func TestServer_ProtectedPageWithSession(t *testing.T) {
	s := newTestServer(t)
	s.tokenSvc.EXPECT().ValidateToken("good").Return(&service.Claims{UserID: 7, Roles: []string{"customer"}}, nil)
	s.cartUC.EXPECT().GetCart(mock.Anything, uint(7)).Return(entity.NewCart(nil), nil)

	rec := s.do(http.MethodGet, "/cart/", "good")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Ваша корзина пуста")
	assert.Contains(t, rec.Body.String(), `href="/logout/"`)
}

func TestServer_UnknownPageIsHTML404(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(http.MethodGet, "/no/such/page/", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Header().Get(echo.HeaderContentType), echo.MIMETextHTML)
	assert.Contains(t, rec.Body.String(), "Страница не найдена")
}

func TestServer_AdminAPIRequiresStaff(t *testing.T) {
	s := newTestServer(t)
	s.tokenSvc.EXPECT().ValidateToken("customer").Return(&service.Claims{UserID: 7, Roles: []string{"customer"}}, nil)

	anonymous := s.do(http.MethodGet, middleware.APIPrefix+"/orders", "")
	assert.Equal(t, http.StatusUnauthorized, anonymous.Code)
	assert.Contains(t, anonymous.Body.String(), `"AUTH_REQUIRED"`)

	customer := s.do(http.MethodGet, middleware.APIPrefix+"/orders", "customer")
	assert.Equal(t, http.StatusForbidden, customer.Code)
	assert.Contains(t, customer.Body.String(), `"FORBIDDEN"`)
}

func TestServer_Metrics(t *testing.T) {
	s := newTestServer(t)
	s.do(http.MethodGet, "/health", "")

	rec := s.do(http.MethodGet, "/metrics", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `storefront_http_requests_total{method="GET",route="/health",status="200"} 1`)
}
