package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

const UserHeader = "X-User-Id"

// HeaderAuth trusts the user id set by the identity proxy in front of the
// service. Requests without one get 401.
func HeaderAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			uid := strings.TrimSpace(c.Request().Header.Get(UserHeader))
			if uid == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "missing " + UserHeader + " header"})
			}
			c.Set("uid", uid)
			return next(c)
		}
	}
}

// Identity picks the identity middleware for the deployment.
func Identity(headerAuth bool) echo.MiddlewareFunc {
	if headerAuth {
		return HeaderAuth()
	}
	return DevLogin()
}
