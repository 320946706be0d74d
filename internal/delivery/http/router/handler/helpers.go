package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/errors"
	"storefront/internal/usecase"
)

// parseID reads a positive numeric path parameter. Anything else cannot name
// a stored row, so it is reported as not found.
func parseID(c echo.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, domainerrors.ErrNotFound
	}

	return uint(id), nil
}

// formUpload opens an optional file field. The returned closer is never nil.
func formUpload(c echo.Context, field string) (*usecase.Upload, func(), error) {
	noop := func() {}

	fh, err := c.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
		return nil, noop, nil
	}
	if err != nil {
		return nil, noop, errors.Wrapf(err, "failed to read %s upload", field)
	}
	if fh.Size == 0 {
		return nil, noop, nil
	}

	file, err := fh.Open()
	if err != nil {
		return nil, noop, errors.Wrapf(err, "failed to open %s upload", field)
	}

	upload := &usecase.Upload{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get(echo.HeaderContentType),
		Reader:      file,
	}

	return upload, func() { _ = file.Close() }, nil
}

// asValidation extracts the field messages of a rejected form.
func asValidation(err error) (*domainerrors.ValidationError, bool) {
	var verr *domainerrors.ValidationError
	if errors.As(err, &verr) {
		return verr, true
	}

	return nil, false
}

func isMultipart(c echo.Context) bool {
	return strings.HasPrefix(c.Request().Header.Get(echo.HeaderContentType), echo.MIMEMultipartForm)
}

func malformedForm() *domainerrors.ValidationError {
	return domainerrors.NewValidationError("", "Не удалось обработать форму")
}
