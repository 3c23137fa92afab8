package controllerImp

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"smartcrop/pkg/logging"
	"smartcrop/pkg/stats/controller"
	"smartcrop/pkg/stats/service"
)

const AdminPasswordHeader = "X-Admin-Password"

type adminCtrl struct{ svc service.StatsService }

func NewAdminCtrl(svc service.StatsService) controller.AdminController { return &adminCtrl{svc} }

func (h *adminCtrl) Stats(c echo.Context) error {
	sum, err := h.svc.Summary(c.Request().Header.Get(AdminPasswordHeader))
	if errors.Is(err, service.ErrForbidden) {
		return c.JSON(http.StatusForbidden, map[string]string{"error": err.Error()})
	}
	if err != nil {
		logging.Error().Err(err).Msg("[stats] summary failed")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to load stats"})
	}
	return c.JSON(http.StatusOK, sum)
}
