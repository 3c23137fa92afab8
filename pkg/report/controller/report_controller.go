package controller

import "github.com/labstack/echo/v4"

type ReportController interface {
	Generate(c echo.Context) error
}
