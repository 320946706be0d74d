package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/delivery/http/response"
	"storefront/internal/delivery/http/view"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/errors"
)

// APIPrefix marks routes answered with JSON errors.
const APIPrefix = "/admin/api"

// ErrorMiddleware handles errors in the HTTP pipeline
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

type errorView struct {
	status  int
	code    string
	message string
	details any
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler. The admin API
// gets the JSON envelope, every other route the error page.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	ev := m.resolve(err, c)

	if strings.HasPrefix(c.Request().URL.Path, APIPrefix) {
		_ = response.Error(c, ev.status, ev.code, ev.message, ev.details)

		return
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(ev.status)

		return
	}

	page := response.NewPage(c, ev.message, view.ErrorPage{Status: ev.status, Message: ev.message})
	if renderErr := c.Render(ev.status, "error", page); renderErr != nil {
		m.logger.Error("Failed to render error page",
			slog.Any("error", renderErr),
			slog.String("request_id", deliverycontext.GetRequestID(c)),
		)
		_ = c.String(ev.status, ev.message)
	}
}

func (m *ErrorMiddleware) resolve(err error, c echo.Context) errorView {
	var verr *domainerrors.ValidationError
	if errors.As(err, &verr) {
		return errorView{status: verr.HTTPCode(), code: verr.ErrorCode(), message: verr.Message(), details: verr.Fields()}
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			m.logUnhandled(err, c)
		}

		return errorView{status: appErr.HTTPCode(), code: appErr.ErrorCode(), message: appErr.Message()}
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		if httpErr.Code == http.StatusNotFound {
			return errorView{status: http.StatusNotFound, code: domainerrors.ErrNotFound.ErrorCode(), message: domainerrors.ErrNotFound.Message()}
		}

		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}

		return errorView{status: httpErr.Code, code: "HTTP_ERROR", message: message}
	}

	m.logUnhandled(err, c)

	return errorView{
		status:  http.StatusInternalServerError,
		code:    domainerrors.ErrInternalError.ErrorCode(),
		message: domainerrors.ErrInternalError.Message(),
	}
}

func (m *ErrorMiddleware) logUnhandled(err error, c echo.Context) {
	deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).Error("Unhandled error",
		slog.Any("error", err),
		slog.String("request_id", deliverycontext.GetRequestID(c)),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
		slog.String("stack", errors.Stack(err)),
	)
}
