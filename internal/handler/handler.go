package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperr "github.com/Omer-KISAKOL/site-builder/internal/errors"
)

// respondError turns a service error into the standard {error, code} body.
// Internal errors are logged with full detail and reported opaquely.
func respondError(c echo.Context, err error) error {
	he := apperr.MapErrorToHTTP(err)
	if he.StatusCode == http.StatusInternalServerError {
		c.Logger().Errorf("internal error on %s %s: %v", c.Request().Method, c.Request().URL.Path, err)
	}
	return c.JSON(he.StatusCode, he.ToErrorResponse())
}
