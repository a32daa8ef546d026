package middleware

import (
	"github.com/labstack/echo/v4"

	"library-admin-backend/internal/actor"
)

const actorHeader = "X-Actor-ID"

// Actor lifts the authenticated staff id (resolved by the session layer in
// front of this service) off the request into the context, so mutations can
// record who performed them without any ambient global.
func Actor() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if id := c.Request().Header.Get(actorHeader); id != "" {
				ctx := actor.WithID(c.Request().Context(), id)
				c.SetRequest(c.Request().WithContext(ctx))
			}
			return next(c)
		}
	}
}
