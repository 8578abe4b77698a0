package http

import (
	"net/http"
	"strings"

	"quotation/internal/core/domain/model/access"

	"github.com/labstack/echo/v4"
)

// Identity headers set by the gateway in front of the service.
const (
	HeaderUserID    = "X-User-ID"
	HeaderUserEmail = "X-User-Email"
	HeaderUserRole  = "X-User-Role"
)

// IdentityMiddleware puts the caller described by the X-User-* headers into
// the request context. Requests without a user id are rejected with 401.
func IdentityMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			id, err := access.NewIdentity(
				strings.TrimSpace(req.Header.Get(HeaderUserID)),
				strings.TrimSpace(req.Header.Get(HeaderUserEmail)),
				access.ParseRole(req.Header.Get(HeaderUserRole)),
			)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, ErrorResponse{
					Code:    http.StatusUnauthorized,
					Message: "Missing " + HeaderUserID + " header",
				})
			}

			c.SetRequest(req.WithContext(access.WithIdentity(req.Context(), id)))
			return next(c)
		}
	}
}
