package response

import (
	"net/http"

	"github.com/labstack/echo/v4"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/delivery/http/view"
	domainerrors "storefront/internal/domain/errors"
)

// NewPage builds the view model for the current request.
func NewPage(c echo.Context, title string, data any) *view.Page {
	return &view.Page{
		Title:    title,
		Identity: deliverycontext.GetIdentity(c.Request().Context()),
		Path:     c.Request().URL.Path,
		Data:     data,
		Form:     map[string]string{},
	}
}

// Render writes the page with 200 OK.
func Render(c echo.Context, name string, page *view.Page) error {
	return c.Render(http.StatusOK, name, page)
}

// RenderInvalid re-renders a rejected form with its messages and 400.
func RenderInvalid(c echo.Context, name string, page *view.Page, verr *domainerrors.ValidationError) error {
	page.Errors = verr

	return c.Render(http.StatusBadRequest, name, page)
}

// Redirect sends the browser to another page after a form post.
func Redirect(c echo.Context, location string) error {
	return c.Redirect(http.StatusFound, location)
}
