package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"smartcrop/config"
	"smartcrop/database"
	"smartcrop/pkg/agronomy"
	"smartcrop/pkg/codec"
	"smartcrop/pkg/logging"
	"smartcrop/pkg/media"
	"smartcrop/pkg/middleware"
	"smartcrop/pkg/soil"
	"smartcrop/pkg/upstream"
	"smartcrop/pkg/validation"
	"smartcrop/pkg/weather"
	"smartcrop/router"

	// Auth + stats
	authCtrlImp "smartcrop/pkg/auth/controllerImp"
	statsCtrlImp "smartcrop/pkg/stats/controllerImp"
	statsRepoImp "smartcrop/pkg/stats/repositoryImp"
	statsSvcImp "smartcrop/pkg/stats/serviceImp"

	// Analysis
	analysisCtrlImp "smartcrop/pkg/analysis/controllerImp"
	analysisRepoImp "smartcrop/pkg/analysis/repositoryImp"
	analysisSvcImp "smartcrop/pkg/analysis/serviceImp"

	// Catalog, plan, report, media
	catalogCtrlImp "smartcrop/pkg/catalog/controllerImp"
	mediaCtrlImp "smartcrop/pkg/media/controllerImp"
	planCtrlImp "smartcrop/pkg/plan/controllerImp"
	planSvcImp "smartcrop/pkg/plan/serviceImp"
	reportCtrlImp "smartcrop/pkg/report/controllerImp"

	// Upstreams + health
	healthCtrlImp "smartcrop/pkg/health/controllerImp"
	soilCtrlImp "smartcrop/pkg/soil/controllerImp"
	weatherCtrlImp "smartcrop/pkg/weather/controllerImp"
)

const userAgent = "smartcrop/1.0 (crop suitability advisor)"

func main() {
	// 1) Config + logging
	cfg := config.Load()
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		logging.Warn().Err(err).Str("tz", cfg.Timezone).Msg("[cfg] unknown timezone, using UTC")
		loc = time.UTC
	}

	// 2) Reference tables
	cat, err := agronomy.LoadCatalog(cfg.CropsCSV, cfg.FertilizersCSV, cfg.ReferenceXLSX)
	if err != nil {
		logging.Fatal().Err(err).Msg("[catalog] load failed")
	}
	logging.Info().Int("crops", cat.Len()).Int("fertilizers", len(cat.Fertilizers())).Msg("[catalog] ready")
	adv := agronomy.New(cat)

	// 3) DB (sqlite) + automigrate
	db := database.OpenSQLite(cfg.DBPath)

	// 4) Upstream clients
	up := func(name string) *upstream.Client {
		return upstream.New(name, upstream.Options{Timeout: cfg.HTTPTimeout, Headers: map[string]string{"User-Agent": userAgent}})
	}
	weatherClient := weather.NewClient(up("openweather"), cfg.OpenWeatherURL, cfg.OpenWeatherKey)
	soilSvc := soil.NewService(
		soil.NewGeocoder(up("nominatim"), cfg.NominatimURL, cfg.NominatimRPS),
		soil.NewSoilGrids(up("soilgrids"), cfg.SoilGridsURL),
	)
	mediaSvc := media.NewService(up("unsplash"), up("wikipedia"), up("youtube"), media.Options{
		UnsplashKey:  cfg.UnsplashKey,
		WikipediaURL: cfg.WikipediaURL,
		YouTubeKey:   cfg.YouTubeKey,
	})

	// 5) Repos/services
	statsSvc := statsSvcImp.NewStatsService(statsRepoImp.New(db), cfg.AdminPassword)
	anSvc := analysisSvcImp.NewAnalysisService(adv, analysisRepoImp.New(db), statsSvc)
	plSvc := planSvcImp.NewPlanService(adv)

	// 6) Echo
	e := echo.New()
	e.HideBanner = true
	e.Validator = validation.Echo{}
	e.JSONSerializer = codec.JSON{}
	e.Use(echoMiddleware.Recover())
	e.Use(middleware.RequestLogger())

	r := router.New(e, cfg.HeaderAuth, router.Controllers{
		Auth:     authCtrlImp.NewAuthController(statsSvc, cfg.HeaderAuth),
		Health:   healthCtrlImp.NewHealthCtrl(db, cat),
		Catalog:  catalogCtrlImp.NewCatalogCtrl(cat),
		Plan:     planCtrlImp.NewPlanCtrl(plSvc, loc),
		Media:    mediaCtrlImp.NewMediaCtrl(cat, mediaSvc),
		Analysis: analysisCtrlImp.NewAnalysisCtrl(anSvc),
		Report:   reportCtrlImp.NewReportCtrl(anSvc, plSvc, loc),
		Weather:  weatherCtrlImp.NewWeatherCtrl(weatherClient),
		Soil:     soilCtrlImp.NewSoilCtrl(soilSvc),
		Admin:    statsCtrlImp.NewAdminCtrl(statsSvc),
	})

	// 7) Start, stop on SIGINT/SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		logging.Info().Str("port", cfg.Port).Msg("[http] listening")
		if err := r.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal().Err(err).Msg("[http] server failed")
		}
	}()
	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := r.Shutdown(shutdownCtx); err != nil {
		logging.Error().Err(err).Msg("[http] shutdown")
	}
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}
	logging.Info().Msg("[http] stopped")
}
