package controller

import "github.com/labstack/echo/v4"

type CatalogController interface {
	ListCrops(c echo.Context) error
	GetCrop(c echo.Context) error
	SoilTypes(c echo.Context) error
	Seasons(c echo.Context) error
}
