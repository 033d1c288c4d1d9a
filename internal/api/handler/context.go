package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/favoritos/favorites-api/internal/api/middleware"
)

// ctxUserID extracts the user identifier injected by the Auth middleware.
// Its absence means the middleware did not run on this route; reject with
// 401 rather than proceed with a zero identifier.
func ctxUserID(c echo.Context) (int64, error) {
	id, ok := c.Get(middleware.ContextUserID).(int64)
	if !ok || id == 0 {
		return 0, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return id, nil
}
