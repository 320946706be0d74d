package handler

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/delivery/http/validator"
	"storefront/internal/delivery/http/view"
	"storefront/internal/domain/entity"
)

func newTestEcho(t *testing.T) *echo.Echo {
	t.Helper()

	renderer, err := view.NewRenderer()
	require.NoError(t, err)

	e := echo.New()
	e.Renderer = renderer
	e.Validator = validator.New()

	return e
}

// newContext builds a request context. A non-nil form is sent url-encoded.
func newContext(e *echo.Echo, method, target string, form url.Values) (echo.Context, *httptest.ResponseRecorder) {
	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func withUser(c echo.Context, userID uint, roles ...entity.Role) {
	if len(roles) == 0 {
		roles = entity.Roles{entity.RoleCustomer}
	}
	identity := &deliverycontext.Identity{UserID: userID, Roles: roles}
	c.SetRequest(c.Request().WithContext(deliverycontext.WithIdentity(c.Request().Context(), identity)))
}

func withParam(c echo.Context, name, value string) {
	c.SetParamNames(name)
	c.SetParamValues(value)
}
