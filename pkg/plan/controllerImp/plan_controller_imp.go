package controllerImp

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"smartcrop/pkg/agronomy"
	"smartcrop/pkg/plan/service"
	"smartcrop/pkg/plan/serviceImp"
)

type PlanCtrl struct {
	svc service.PlanService
	loc *time.Location
}

func NewPlanCtrl(svc service.PlanService, loc *time.Location) *PlanCtrl {
	if loc == nil {
		loc = time.UTC
	}
	return &PlanCtrl{svc: svc, loc: loc}
}

// Detail handles GET /crops/:name/plan?planting_date=&ph=&soil_type=.
func (h *PlanCtrl) Detail(c echo.Context) error {
	now := time.Now().In(h.loc)
	planted := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, h.loc)
	if v := c.QueryParam("planting_date"); v != "" {
		d, err := time.ParseInLocation(serviceImp.DateLayout, v, h.loc)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "planting_date must be YYYY-MM-DD"})
		}
		planted = d
	}
	ph := agronomy.None()
	if v := c.QueryParam("ph"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err == nil {
			ph, err = agronomy.Measure(f)
		}
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "ph must be a number"})
		}
	}
	var st agronomy.SoilType
	if v := c.QueryParam("soil_type"); v != "" {
		var ok bool
		if st, ok = agronomy.ParseSoilType(v); !ok {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "unknown soil_type"})
		}
	}

	p, err := h.svc.Build(c.Param("name"), planted, st, ph)
	if errors.Is(err, service.ErrUnknownCrop) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "crop not found"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, p)
}
