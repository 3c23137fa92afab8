package controller

import "github.com/labstack/echo/v4"

type PlanController interface {
	Detail(c echo.Context) error
}
