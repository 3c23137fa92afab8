package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

const (
	UIDCookie  = "SMARTCROP_UID"
	DefaultUID = "dev-user"
)

// DevLogin identifies the caller from the UID cookie or ?uid=, falling back to
// a shared development user. It never rejects a request.
func DevLogin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			uid := ""
			if ck, err := c.Cookie(UIDCookie); err == nil {
				uid = ck.Value
			}
			if uid == "" {
				uid = c.QueryParam("uid")
				if uid == "" {
					uid = DefaultUID
				}
				c.SetCookie(&http.Cookie{Name: UIDCookie, Value: uid, Path: "/", HttpOnly: true})
			}
			c.Set("uid", uid)
			return next(c)
		}
	}
}
