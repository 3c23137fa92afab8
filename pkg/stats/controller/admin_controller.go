package controller

import "github.com/labstack/echo/v4"

type AdminController interface {
	Stats(c echo.Context) error
}
