package controllerImp

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"smartcrop/entities"
	"smartcrop/pkg/auth/controller"
	"smartcrop/pkg/logging"
	"smartcrop/pkg/middleware"
)

type loginRecorder interface {
	Login(uid string) (*entities.UserProfile, error)
}

type authCtrl struct {
	stats      loginRecorder
	headerAuth bool
}

func NewAuthController(stats loginRecorder, headerAuth bool) controller.AuthController {
	return &authCtrl{stats: stats, headerAuth: headerAuth}
}

// DevLogin records a login. In development ?uid= picks the identity and
// pins it in the cookie; behind the identity proxy the header decides.
func (h *authCtrl) DevLogin(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	if !h.headerAuth {
		if q := strings.TrimSpace(c.QueryParam("uid")); q != "" {
			uid = q
		}
		if uid == "" {
			uid = middleware.DefaultUID
		}
		c.SetCookie(&http.Cookie{Name: middleware.UIDCookie, Value: uid, Path: "/", HttpOnly: true})
	}
	p, err := h.stats.Login(uid)
	if err != nil {
		logging.Error().Err(err).Str("uid", uid).Msg("[auth] login not recorded")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "login failed"})
	}
	return c.JSON(http.StatusOK, map[string]any{"uid": uid, "profile": p})
}

func (h *authCtrl) WhoAmI(c echo.Context) error {
	uid, _ := c.Get("uid").(string)
	return c.JSON(http.StatusOK, map[string]string{"uid": uid})
}
