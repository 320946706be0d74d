// Package response writes what handlers send back: the JSON envelope of the
// admin API and the HTML pages of the storefront.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"

	deliverycontext "storefront/internal/delivery/context"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/errors"
)

// Envelope is the body of every admin API response. Exactly one of Data and
// Error is set.
type Envelope struct {
	Data  any      `json:"data,omitempty"`
	Error *Problem `json:"error,omitempty"`
	Meta  Meta     `json:"meta"`
}

// Problem describes a failed request. Details maps form fields to messages
// and is only sent for 4xx errors the client can fix.
type Problem struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

type Meta struct {
	RequestID string `json:"request_id"`
}

func Success(c echo.Context, status int, data any) error {
	return c.JSON(status, Envelope{Data: data, Meta: meta(c)})
}

func Error(c echo.Context, status int, code, message string, details any) error {
	if !fixable(status) {
		details = nil
	}

	return c.JSON(status, Envelope{
		Error: &Problem{Code: code, Message: message, Details: details},
		Meta:  meta(c),
	})
}

// BindingError answers a body that could not be decoded at all.
func BindingError(c echo.Context, message string) error {
	return Error(c, http.StatusBadRequest, "INVALID_INPUT", message, nil)
}

// HandleAppError writes client errors directly. Server errors are returned
// for the error middleware, which logs them before answering.
func HandleAppError(c echo.Context, err error) error {
	var verr *domainerrors.ValidationError
	if errors.As(err, &verr) {
		return Error(c, verr.HTTPCode(), verr.ErrorCode(), verr.Message(), verr.Fields())
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) && appErr.HTTPCode() < http.StatusInternalServerError {
		return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), nil)
	}

	return errors.WithStack(err)
}

func fixable(status int) bool {
	return status >= http.StatusBadRequest && status < http.StatusInternalServerError &&
		status != http.StatusUnauthorized && status != http.StatusForbidden
}

func meta(c echo.Context) Meta {
	return Meta{RequestID: deliverycontext.GetRequestID(c)}
}
