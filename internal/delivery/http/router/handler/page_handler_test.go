package handler

import (
	"log/slog"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"storefront/internal/domain/entity"
	mockUsecase "storefront/internal/mocks/usecase"
)

func TestPageHandler_Home(t *testing.T) {
	catalogUC := mockUsecase.NewMockCatalogUsecase(t)
	h := NewPageHandler(PageHandlerParams{CatalogUC: catalogUC, Logger: slog.New(slog.DiscardHandler)})
	catalogUC.EXPECT().ListFeatured(mock.Anything).Return([]*entity.Product{
		{ID: 1, Name: "Чайник", Price: decimal.RequireFromString("1499.90")},
		{ID: 2, Name: "Кружка"},
	}, nil)

	c, rec := newContext(newTestEcho(t), http.MethodGet, "/", nil)

	require.NoError(t, h.Home(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Чайник")
	// A product without a price shows as zero.
	assert.Contains(t, rec.Body.String(), "0.00 ₽")
	assert.Contains(t, rec.Body.String(), `action="/cart/add/2/"`)
}

func TestPageHandler_Contacts(t *testing.T) {
	h := NewPageHandler(PageHandlerParams{CatalogUC: mockUsecase.NewMockCatalogUsecase(t), Logger: slog.New(slog.DiscardHandler)})
	c, rec := newContext(newTestEcho(t), http.MethodGet, "/contacts/", nil)

	require.NoError(t, h.Contacts(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHealthCheck(t *testing.T) {
	c, rec := newContext(newTestEcho(t), http.MethodGet, "/health", nil)

	require.NoError(t, HealthCheck(c))
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
