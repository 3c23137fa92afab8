package controllerImp

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"smartcrop/pkg/weather"
	"smartcrop/pkg/weather/controller"
)

type weatherCtrl struct {
	client *weather.Client
	now    func() time.Time
}

func NewWeatherCtrl(client *weather.Client) controller.WeatherController {
	return &weatherCtrl{client: client, now: time.Now}
}

// Current handles GET /weather?location=.
func (h *weatherCtrl) Current(c echo.Context) error {
	loc := c.QueryParam("location")
	if loc == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "location is required"})
	}
	w, err := h.client.Current(c.Request().Context(), loc)
	switch {
	case errors.Is(err, weather.ErrNotConfigured):
		return c.JSON(http.StatusServiceUnavailable, map[string]string{"error": err.Error()})
	case err != nil:
		return c.JSON(http.StatusBadGateway, map[string]string{"error": weather.ErrFetch.Error()})
	}
	w.Season = weather.CurrentSeason(h.now())
	return c.JSON(http.StatusOK, w)
}
