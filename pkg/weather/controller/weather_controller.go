package controller

import "github.com/labstack/echo/v4"

type WeatherController interface {
	Current(c echo.Context) error
}
