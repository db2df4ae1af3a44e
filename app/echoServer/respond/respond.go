// Package respond maps service errors onto HTTP responses so every
// controller reports failures the same way.
package respond

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"librarydesk/apperr"
)

// Error writes the JSON error response for err. Unrecognized errors are
// logged and reported as 500.
func Error(c echo.Context, log *slog.Logger, op string, err error) error {
	status := http.StatusInternalServerError
	switch apperr.KindOf(err) {
	case apperr.Validation:
		status = http.StatusBadRequest
	case apperr.NotFound:
		status = http.StatusNotFound
	case apperr.Conflict:
		status = http.StatusConflict
	case apperr.Unauthorized:
		status = http.StatusUnauthorized
	case apperr.Forbidden:
		status = http.StatusForbidden
	default:
		if log != nil {
			rid := c.Response().Header().Get(echo.HeaderXRequestID)
			log.Error(op, "err", err, "req_id", rid, "path", c.Path(), "method", c.Request().Method)
		}
		return c.JSON(status, echo.Map{"message": "internal error"})
	}
	return c.JSON(status, echo.Map{"message": err.Error()})
}
