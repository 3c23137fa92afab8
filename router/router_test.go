package router

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"smartcrop/database"
	"smartcrop/pkg/agronomy"
	"smartcrop/pkg/codec"
	"smartcrop/pkg/media"
	"smartcrop/pkg/middleware"
	"smartcrop/pkg/soil"
	"smartcrop/pkg/upstream"
	"smartcrop/pkg/validation"
	"smartcrop/pkg/weather"

	analysisCtrlImp "smartcrop/pkg/analysis/controllerImp"
	analysisRepoImp "smartcrop/pkg/analysis/repositoryImp"
	analysisSvcImp "smartcrop/pkg/analysis/serviceImp"
	authCtrlImp "smartcrop/pkg/auth/controllerImp"
	catalogCtrlImp "smartcrop/pkg/catalog/controllerImp"
	healthCtrlImp "smartcrop/pkg/health/controllerImp"
	mediaCtrlImp "smartcrop/pkg/media/controllerImp"
	planCtrlImp "smartcrop/pkg/plan/controllerImp"
	planSvcImp "smartcrop/pkg/plan/serviceImp"
	reportCtrlImp "smartcrop/pkg/report/controllerImp"
	soilCtrlImp "smartcrop/pkg/soil/controllerImp"
	statsCtrlImp "smartcrop/pkg/stats/controllerImp"
	statsRepoImp "smartcrop/pkg/stats/repositoryImp"
	statsSvcImp "smartcrop/pkg/stats/serviceImp"
	weatherCtrlImp "smartcrop/pkg/weather/controllerImp"
)

func newApp(t *testing.T, headerAuth bool) *echo.Echo {
	t.Helper()
	db, err := database.Open(filepath.Join(t.TempDir(), "router.db"))
	if err != nil {
		t.Fatal(err)
	}
	cat := agronomy.DefaultCatalog()
	adv := agronomy.New(cat)
	api := upstream.New("router-test", upstream.Options{Timeout: time.Second})
	stats := statsSvcImp.NewStatsService(statsRepoImp.New(db), "pw")
	an := analysisSvcImp.NewAnalysisService(adv, analysisRepoImp.New(db), stats)
	pl := planSvcImp.NewPlanService(adv)

	e := echo.New()
	e.Validator = validation.Echo{}
	e.JSONSerializer = codec.JSON{}
	return New(e, headerAuth, Controllers{
		Auth:     authCtrlImp.NewAuthController(stats, headerAuth),
		Health:   healthCtrlImp.NewHealthCtrl(db, cat),
		Catalog:  catalogCtrlImp.NewCatalogCtrl(cat),
		Plan:     planCtrlImp.NewPlanCtrl(pl, time.UTC),
		Media:    mediaCtrlImp.NewMediaCtrl(cat, media.NewService(api, api, api, media.Options{})),
		Analysis: analysisCtrlImp.NewAnalysisCtrl(an),
		Report:   reportCtrlImp.NewReportCtrl(an, pl, time.UTC),
		Weather:  weatherCtrlImp.NewWeatherCtrl(weather.NewClient(api, "http://127.0.0.1:1", "")),
		Soil:     soilCtrlImp.NewSoilCtrl(soil.NewService(soil.NewGeocoder(api, "http://127.0.0.1:1", 100), soil.NewSoilGrids(api, "http://127.0.0.1:1"))),
		Admin:    statsCtrlImp.NewAdminCtrl(stats),
	})
}

func TestRoutesDevLogin(t *testing.T) {
	e := newApp(t, false)
	cases := []struct {
		method, path string
		want         int
	}{
		{http.MethodGet, "/health", http.StatusOK},
		{http.MethodGet, "/metrics", http.StatusOK},
		{http.MethodGet, "/whoami", http.StatusOK},
		{http.MethodGet, "/devlogin?uid=x", http.StatusOK},
		{http.MethodGet, "/crops", http.StatusOK},
		{http.MethodGet, "/crops/rice", http.StatusOK},
		{http.MethodGet, "/crops/rice/plan?planting_date=2024-06-01", http.StatusOK},
		{http.MethodGet, "/crops/rice/media", http.StatusOK},
		{http.MethodGet, "/soil-types", http.StatusOK},
		{http.MethodGet, "/seasons", http.StatusOK},
		{http.MethodGet, "/predictions", http.StatusOK},
		{http.MethodGet, "/weather?location=Pune", http.StatusServiceUnavailable},
		{http.MethodGet, "/soil", http.StatusBadRequest},
		{http.MethodGet, "/admin/stats", http.StatusForbidden},
		{http.MethodGet, "/nope", http.StatusNotFound},
	}
	for _, tc := range cases {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(tc.method, tc.path, nil))
		if rec.Code != tc.want {
			t.Errorf("%s %s: status %d, want %d", tc.method, tc.path, rec.Code, tc.want)
		}
	}
}

func TestRoutesHeaderAuth(t *testing.T) {
	e := newApp(t, true)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/crops", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("no header: status %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("health: status %d", rec.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set(middleware.UserHeader, "dana")
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK || rec.Body.String() != "{\"uid\":\"dana\"}\n" {
		t.Fatalf("whoami: %d %s", rec.Code, rec.Body)
	}
}
