package view

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
)

func TestNewRenderer_ParsesEveryPage(t *testing.T) {
	renderer, err := NewRenderer()
	require.NoError(t, err)

	for _, name := range []string{
		"home", "catalog", "product", "cart", "checkout", "order_success",
		"orders", "order_detail", "register", "login", "profile", "contacts", "error",
	} {
		assert.True(t, renderer.Has(name), name)
	}
	assert.False(t, renderer.Has("layout"))
}

func TestRenderer_Render(t *testing.T) {
	renderer, err := NewRenderer()
	require.NoError(t, err)

	product := &entity.Product{ID: 3, Name: "Чайник", Price: decimal.RequireFromString("1499.9")}
	cart := entity.NewCart([]*entity.CartItem{{ID: 11, ProductID: 3, Product: product, Quantity: 2}})

	page := &Page{
		Title:    "Корзина",
		Identity: &deliverycontext.Identity{UserID: 1},
		Data:     cart,
		Form:     map[string]string{"item_id": "11"},
		Errors:   domainerrors.NewValidationError("quantity", domainerrors.MsgInvalidQuantity),
	}

	var buf bytes.Buffer
	require.NoError(t, renderer.Render(&buf, "cart", page, nil))

	body := buf.String()
	assert.Contains(t, body, "Чайник")
	assert.Contains(t, body, "2999.80 ₽")
	assert.Contains(t, body, domainerrors.MsgInvalidQuantity)
	assert.Contains(t, body, `href="/logout/"`)
}

func TestRenderer_Render_AnonymousLayout(t *testing.T) {
	renderer, err := NewRenderer()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, renderer.Render(&buf, "login", &Page{Data: "phone", Form: map[string]string{"phone": "+79001234567"}}, nil))

	body := buf.String()
	assert.Contains(t, body, `href="/register/"`)
	assert.Contains(t, body, `name="phone"`)
	assert.Contains(t, body, `value="&#43;79001234567"`)
	assert.NotContains(t, body, `name="username"`)
}

func TestRenderer_Render_WrapsPageInLayout(t *testing.T) {
	renderer, err := NewRenderer()
	require.NoError(t, err)

	tests := []struct {
		name string
		page *Page
		want string
	}{
		{name: "contacts", page: &Page{Title: "Контакты", Form: map[string]string{}}, want: "<h1>Контакты</h1>"},
		{name: "error", page: &Page{Data: ErrorPage{Status: 404, Message: "Страница не найдена"}, Form: map[string]string{}}, want: "Страница не найдена"},
		{name: "home", page: &Page{Data: []*entity.Product{}, Form: map[string]string{}}, want: "Товары не найдены."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, renderer.Render(&buf, tt.name, tt.page, nil))

			body := buf.String()
			assert.Contains(t, body, "<!DOCTYPE html>")
			assert.Contains(t, body, `href="/catalog/"`)
			assert.Contains(t, body, tt.want)
		})
	}
}

func TestRenderer_Render_UnknownPage(t *testing.T) {
	renderer, err := NewRenderer()
	require.NoError(t, err)

	assert.Error(t, renderer.Render(&bytes.Buffer{}, "missing", &Page{}, nil))
}

func TestRenderer_Render_OrderDetail(t *testing.T) {
	renderer, err := NewRenderer()
	require.NoError(t, err)

	productID := uint(3)
	order := &entity.Order{
		ID:          42,
		Status:      entity.OrderStatusShipped,
		Shipping:    entity.ShippingDetails{ShippingAddress: "Москва", Phone: "+79001234567"},
		TotalAmount: decimal.RequireFromString("100"),
		Items: []*entity.OrderItem{
			{ProductID: &productID, Quantity: 2, Price: decimal.RequireFromString("50")},
		},
		CreatedAt: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
	}

	var buf bytes.Buffer
	require.NoError(t, renderer.Render(&buf, "order_detail", &Page{Data: order}, nil))

	body := buf.String()
	assert.Contains(t, body, "Заказ №42")
	assert.Contains(t, body, "Отправлен")
	assert.Contains(t, body, "/order/42/qr.png")
	assert.Contains(t, body, "100.00 ₽")
}

func TestStatusLabel(t *testing.T) {
	assert.Equal(t, "Ожидает обработки", StatusLabel(entity.OrderStatusPending))
	assert.Equal(t, "unknown", StatusLabel(entity.OrderStatus("unknown")))
}

func TestPage_Helpers(t *testing.T) {
	page := &Page{Form: map[string]string{"phone": "+7"}}
	assert.Equal(t, "+7", page.Value("phone"))
	assert.Empty(t, page.FieldError("phone"))
	assert.Nil(t, page.FormErrors())

	page.Errors = domainerrors.NewValidationError("", "form").Add("phone", domainerrors.MsgInvalidPhone)
	assert.Equal(t, domainerrors.MsgInvalidPhone, page.FieldError("phone"))
	assert.Equal(t, []string{"form"}, page.FormErrors())
}
