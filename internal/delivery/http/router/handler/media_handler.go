package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
)

// MediaHandlerParams holds dependencies for MediaHandler, injected by Fx.
type MediaHandlerParams struct {
	fx.In

	Storage service.FileStorage
	Logger  *slog.Logger
}

// MediaHandler streams uploaded avatars and catalog images.
type MediaHandler struct {
	storage service.FileStorage
	logger  *slog.Logger
}

// NewMediaHandler is the constructor for MediaHandler
func NewMediaHandler(params MediaHandlerParams) *MediaHandler {
	return &MediaHandler{
		storage: params.Storage,
		logger:  params.Logger,
	}
}

func (h *MediaHandler) Serve(c echo.Context) error {
	file, err := h.storage.Open(c.Request().Context(), c.Param("*"))
	if errors.Is(err, service.ErrFileNotFound) {
		return domainerrors.ErrNotFound
	}
	if err != nil {
		return err
	}
	defer file.Body.Close()

	contentType := file.ContentType
	if contentType == "" {
		contentType = echo.MIMEOctetStream
	}

	header := c.Response().Header()
	header.Set(echo.HeaderCacheControl, "public, max-age=86400")
	header.Set("X-Content-Type-Options", "nosniff")
	if !file.ModTime.IsZero() {
		header.Set(echo.HeaderLastModified, file.ModTime.UTC().Format(http.TimeFormat))
	}

	return c.Stream(http.StatusOK, contentType, file.Body)
}
