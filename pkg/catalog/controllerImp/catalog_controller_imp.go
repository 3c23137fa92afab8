package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"smartcrop/pkg/agronomy"
	"smartcrop/pkg/catalog/controller"
)

type catalogCtrl struct{ cat *agronomy.Catalog }

func NewCatalogCtrl(cat *agronomy.Catalog) controller.CatalogController { return &catalogCtrl{cat} }

type cropView struct {
	agronomy.CropProfile
	DurationDays int `json:"duration_days"`
}

func (h *catalogCtrl) view(cp agronomy.CropProfile) cropView {
	return cropView{CropProfile: cp, DurationDays: h.cat.Duration(cp.Name)}
}

func (h *catalogCtrl) ListCrops(c echo.Context) error {
	crops := h.cat.Crops()
	out := make([]cropView, len(crops))
	for i, cp := range crops {
		out[i] = h.view(cp)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *catalogCtrl) GetCrop(c echo.Context) error {
	cp, ok := h.cat.Find(c.Param("name"))
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "crop not found"})
	}
	return c.JSON(http.StatusOK, h.view(cp))
}

func (h *catalogCtrl) SoilTypes(c echo.Context) error {
	return c.JSON(http.StatusOK, agronomy.SoilTypes)
}

func (h *catalogCtrl) Seasons(c echo.Context) error {
	return c.JSON(http.StatusOK, agronomy.Seasons)
}
