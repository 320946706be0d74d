package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/errors"
)

// StatusOf predicts the status the central error handler will answer with
// for a non-nil handler error.
func StatusOf(err error) int {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr.HTTPCode()
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code
	}

	return http.StatusInternalServerError
}
