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
	domainerrors "storefront/internal/domain/errors"
	mockUsecase "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"
)

func newCatalogHandler(t *testing.T) (*CatalogHandler, *mockUsecase.MockCatalogUsecase) {
	catalogUC := mockUsecase.NewMockCatalogUsecase(t)

	return NewCatalogHandler(CatalogHandlerParams{CatalogUC: catalogUC, Logger: slog.New(slog.DiscardHandler)}), catalogUC
}

func TestParseProductFilter(t *testing.T) {
	e := newTestEcho(t)
	decimalPtr := func(s string) *decimal.Decimal {
		d := decimal.RequireFromString(s)

		return &d
	}
	uintPtr := func(v uint) *uint { return &v }

	tests := []struct {
		name  string
		query string
		want  entity.ProductFilter
	}{
		{name: "empty", query: "", want: entity.ProductFilter{}},
		{
			name:  "all filters",
			query: "?category=2&q=+чай+&min_price=100&max_price=499.90",
			want:  entity.ProductFilter{CategoryID: uintPtr(2), Query: "чай", MinPrice: decimalPtr("100"), MaxPrice: decimalPtr("499.90")},
		},
		{name: "comma decimal separator", query: "?min_price=12,50", want: entity.ProductFilter{MinPrice: decimalPtr("12.50")}},
		{name: "malformed values are ignored", query: "?category=abc&min_price=cheap&max_price=", want: entity.ProductFilter{}},
		{name: "zero category is ignored", query: "?category=0", want: entity.ProductFilter{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newContext(e, http.MethodGet, "/catalog/"+tt.query, nil)
			got := parseProductFilter(c)

			assert.Equal(t, tt.want.Query, got.Query)
			assert.Equal(t, tt.want.CategoryID, got.CategoryID)
			assertDecimalPtr(t, tt.want.MinPrice, got.MinPrice)
			assertDecimalPtr(t, tt.want.MaxPrice, got.MaxPrice)
		})
	}
}

func assertDecimalPtr(t *testing.T, want, got *decimal.Decimal) {
	t.Helper()
	if want == nil {
		assert.Nil(t, got)

		return
	}
	if assert.NotNil(t, got) {
		assert.True(t, want.Equal(*got), "want %s, got %s", want, got)
	}
}

func TestCatalogHandler_Catalog(t *testing.T) {
	h, catalogUC := newCatalogHandler(t)
	categoryID := uint(2)
	catalogUC.EXPECT().Browse(mock.Anything, mock.MatchedBy(func(f entity.ProductFilter) bool {
		return f.Query == "чай" && f.CategoryID != nil && *f.CategoryID == 2
	})).Return(&usecase.CatalogOutput{
		Categories: []*entity.Category{{ID: 1, Name: "Посуда"}, {ID: 2, Name: "Чай"}},
		Products:   []*entity.Product{{ID: 5, Name: "Чай зелёный", Price: decimal.RequireFromString("250"), CategoryID: &categoryID}},
	}, nil)

	c, rec := newContext(newTestEcho(t), http.MethodGet, "/catalog/?category=2&q=чай", nil)

	require.NoError(t, h.Catalog(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Чай зелёный")
	assert.Contains(t, rec.Body.String(), "250.00 ₽")
	assert.Contains(t, rec.Body.String(), "Посуда")
}

func TestCatalogHandler_Catalog_NoMatches(t *testing.T) {
	h, catalogUC := newCatalogHandler(t)
	catalogUC.EXPECT().Browse(mock.Anything, mock.Anything).Return(&usecase.CatalogOutput{}, nil)

	c, rec := newContext(newTestEcho(t), http.MethodGet, "/catalog/?min_price=100000", nil)

	require.NoError(t, h.Catalog(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Товары не найдены.")
}

func TestCatalogHandler_Product(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		h, catalogUC := newCatalogHandler(t)
		catalogUC.EXPECT().GetProduct(mock.Anything, uint(5)).
			Return(&entity.Product{ID: 5, Name: "Чайник", Description: "Стеклянный", Price: decimal.RequireFromString("1499.90")}, nil)

		c, rec := newContext(newTestEcho(t), http.MethodGet, "/product/5/", nil)
		withParam(c, "id", "5")

		require.NoError(t, h.Product(c))
		assert.Contains(t, rec.Body.String(), "Стеклянный")
		assert.Contains(t, rec.Body.String(), "1499.90 ₽")
	})

	t.Run("missing", func(t *testing.T) {
		h, catalogUC := newCatalogHandler(t)
		catalogUC.EXPECT().GetProduct(mock.Anything, uint(6)).Return(nil, domainerrors.ErrProductNotFound)

		c, _ := newContext(newTestEcho(t), http.MethodGet, "/product/6/", nil)
		withParam(c, "id", "6")

		assert.ErrorIs(t, h.Product(c), domainerrors.ErrProductNotFound)
	})
}
