package controllerImp

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"smartcrop/database"
	"smartcrop/pkg/agronomy"
)

func TestHealth(t *testing.T) {
	db, err := database.Open(filepath.Join(t.TempDir(), "h.db"))
	if err != nil {
		t.Fatal(err)
	}
	cases := []struct {
		h    *HealthCtrl
		want int
	}{
		{NewHealthCtrl(db, agronomy.DefaultCatalog()), http.StatusOK},
		{NewHealthCtrl(nil, agronomy.DefaultCatalog()), http.StatusServiceUnavailable},
		{NewHealthCtrl(db, nil), http.StatusServiceUnavailable},
	}
	for i, tc := range cases {
		rec := httptest.NewRecorder()
		if err := tc.h.Health(echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/health", nil), rec)); err != nil {
			t.Fatal(err)
		}
		if rec.Code != tc.want {
			t.Errorf("case %d: status %d, want %d", i, rec.Code, tc.want)
		}
	}
}

func TestHealthReportsCatalogSize(t *testing.T) {
	db, _ := database.Open(filepath.Join(t.TempDir(), "h2.db"))
	rec := httptest.NewRecorder()
	NewHealthCtrl(db, agronomy.DefaultCatalog()).Health(echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/health", nil), rec))
	if !strings.Contains(rec.Body.String(), `"crops":12`) {
		t.Fatalf("body = %s", rec.Body)
	}
}
