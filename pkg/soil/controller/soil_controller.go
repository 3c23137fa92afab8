package controller

import "github.com/labstack/echo/v4"

type SoilController interface {
	Suggest(c echo.Context) error
}
