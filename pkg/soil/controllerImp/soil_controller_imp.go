package controllerImp

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"smartcrop/pkg/soil"
	"smartcrop/pkg/soil/controller"
)

type soilCtrl struct{ svc *soil.Service }

func NewSoilCtrl(svc *soil.Service) controller.SoilController { return &soilCtrl{svc: svc} }

// Suggest handles GET /soil?location= or GET /soil?lat=&lon=.
func (h *soilCtrl) Suggest(c echo.Context) error {
	q := soil.Query{Location: c.QueryParam("location")}
	if q.Location == "" {
		for name, dst := range map[string]**float64{"lat": &q.Lat, "lon": &q.Lon} {
			raw := c.QueryParam(name)
			if raw == "" {
				continue
			}
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return c.JSON(http.StatusBadRequest, map[string]string{"error": name + " must be a number"})
			}
			*dst = &v
		}
	}
	out, err := h.svc.Suggest(c.Request().Context(), q)
	switch {
	case errors.Is(err, soil.ErrNoPlace), errors.Is(err, soil.ErrBadCoordinates):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	case errors.Is(err, soil.ErrCityNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
	case err != nil:
		return c.JSON(http.StatusBadGateway, map[string]string{"error": "failed to fetch soil data"})
	}
	return c.JSON(http.StatusOK, out)
}
