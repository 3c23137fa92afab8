package controller

import "github.com/labstack/echo/v4"

type AnalysisController interface {
	Analyze(c echo.Context) error
	History(c echo.Context) error
}
