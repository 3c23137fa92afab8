package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"smartcrop/pkg/agronomy"
	"smartcrop/pkg/media"
	"smartcrop/pkg/media/controller"
)

type mediaCtrl struct {
	cat *agronomy.Catalog
	svc *media.Service
}

func NewMediaCtrl(cat *agronomy.Catalog, svc *media.Service) controller.MediaController {
	return &mediaCtrl{cat: cat, svc: svc}
}

// Get handles GET /crops/:name/media.
func (h *mediaCtrl) Get(c echo.Context) error {
	cp, ok := h.cat.Find(c.Param("name"))
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "crop not found"})
	}
	return c.JSON(http.StatusOK, h.svc.Lookup(c.Request().Context(), cp.Name))
}
