package router

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"smartcrop/pkg/middleware"
)

type Controllers struct {
	Auth interface {
		DevLogin(echo.Context) error
		WhoAmI(echo.Context) error
	}
	Health  interface{ Health(echo.Context) error }
	Catalog interface {
		ListCrops(echo.Context) error
		GetCrop(echo.Context) error
		SoilTypes(echo.Context) error
		Seasons(echo.Context) error
	}
	Plan     interface{ Detail(echo.Context) error }
	Media    interface{ Get(echo.Context) error }
	Analysis interface {
		Analyze(echo.Context) error
		History(echo.Context) error
	}
	Report  interface{ Generate(echo.Context) error }
	Weather interface{ Current(echo.Context) error }
	Soil    interface{ Suggest(echo.Context) error }
	Admin   interface{ Stats(echo.Context) error }
}

// New registers every route. Health and metrics stay outside the identity
// middleware so probes need no user.
func New(e *echo.Echo, headerAuth bool, ctl Controllers) *echo.Echo {
	e.GET("/health", ctl.Health.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/admin/stats", ctl.Admin.Stats)

	api := e.Group("", middleware.Identity(headerAuth))
	api.GET("/devlogin", ctl.Auth.DevLogin)
	api.GET("/whoami", ctl.Auth.WhoAmI)

	api.GET("/crops", ctl.Catalog.ListCrops)
	api.GET("/crops/:name", ctl.Catalog.GetCrop)
	api.GET("/crops/:name/plan", ctl.Plan.Detail)
	api.GET("/crops/:name/media", ctl.Media.Get)
	api.GET("/soil-types", ctl.Catalog.SoilTypes)
	api.GET("/seasons", ctl.Catalog.Seasons)

	api.GET("/weather", ctl.Weather.Current)
	api.GET("/soil", ctl.Soil.Suggest)

	api.POST("/analyze", ctl.Analysis.Analyze)
	api.GET("/predictions", ctl.Analysis.History)
	api.POST("/report", ctl.Report.Generate)
	return e
}
