package middleware

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/delivery/http/response"
	"storefront/internal/delivery/http/view"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/errors"
)

func newErrorEcho(t *testing.T) *echo.Echo {
	renderer, err := view.NewRenderer()
	require.NoError(t, err)

	e := echo.New()
	e.Renderer = renderer

	return e
}

func TestErrorMiddleware_HTMLPages(t *testing.T) {
	m := NewErrorMiddleware(slog.New(slog.DiscardHandler))

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantText   string
	}{
		{name: "domain not found", err: domainerrors.ErrOrderNotFound, wantStatus: http.StatusNotFound, wantText: "Заказ не найден"},
		{name: "wrapped not found", err: errors.Wrap(domainerrors.ErrProductNotFound, "lookup"), wantStatus: http.StatusNotFound, wantText: "Товар не найден"},
		{name: "unmatched route", err: echo.ErrNotFound, wantStatus: http.StatusNotFound, wantText: "Страница не найдена"},
		{name: "unexpected", err: errors.New("boom"), wantStatus: http.StatusInternalServerError, wantText: "Внутренняя ошибка сервера"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newErrorEcho(t)
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/order/9/", nil), rec)

			m.HandleHTTPError(tt.err, c)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Header().Get(echo.HeaderContentType), echo.MIMETextHTML)
			assert.Contains(t, rec.Body.String(), tt.wantText)
			assert.NotContains(t, rec.Body.String(), "boom")
		})
	}
}

func TestErrorMiddleware_API(t *testing.T) {
	m := NewErrorMiddleware(slog.New(slog.DiscardHandler))

	t.Run("forbidden", func(t *testing.T) {
		rec := httptest.NewRecorder()
		c := newErrorEcho(t).NewContext(httptest.NewRequest(http.MethodGet, APIPrefix+"/orders", nil), rec)

		m.HandleHTTPError(domainerrors.ErrForbidden, c)

		assert.Equal(t, http.StatusForbidden, rec.Code)

		var body response.Envelope
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "FORBIDDEN", body.Error.Code)
		assert.NotEmpty(t, body.Meta.RequestID)
	})

	t.Run("validation keeps field details", func(t *testing.T) {
		rec := httptest.NewRecorder()
		c := newErrorEcho(t).NewContext(httptest.NewRequest(http.MethodPost, APIPrefix+"/products", nil), rec)

		m.HandleHTTPError(domainerrors.NewValidationError("price", domainerrors.MsgInvalidPrice), c)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), `"VALIDATION_FAILED"`)
		assert.Contains(t, rec.Body.String(), domainerrors.MsgInvalidPrice)
	})
}

func TestErrorMiddleware_SkipsCommittedResponse(t *testing.T) {
	m := NewErrorMiddleware(slog.New(slog.DiscardHandler))
	rec := httptest.NewRecorder()
	c := newErrorEcho(t).NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	require.NoError(t, c.NoContent(http.StatusAccepted))

	m.HandleHTTPError(errors.New("late"), c)

	assert.Equal(t, http.StatusAccepted, rec.Code)
}
