package controller

import "github.com/labstack/echo/v4"

type MediaController interface {
	Get(c echo.Context) error
}
