package controllerImp

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/labstack/echo/v4"

	"smartcrop/database"
	"smartcrop/pkg/stats/repositoryImp"
	"smartcrop/pkg/stats/serviceImp"
)

func TestStats(t *testing.T) {
	db, err := database.Open(filepath.Join(t.TempDir(), "admin.db"))
	if err != nil {
		t.Fatal(err)
	}
	h := NewAdminCtrl(serviceImp.NewStatsService(repositoryImp.New(db), "pw"))
	e := echo.New()
	for pw, want := range map[string]int{"": http.StatusForbidden, "nope": http.StatusForbidden, "pw": http.StatusOK} {
		req := httptest.NewRequest(http.MethodGet, "/admin/stats", nil)
		req.Header.Set(AdminPasswordHeader, pw)
		rec := httptest.NewRecorder()
		if err := h.Stats(e.NewContext(req, rec)); err != nil {
			t.Fatal(err)
		}
		if rec.Code != want {
			t.Errorf("password %q: status %d, want %d", pw, rec.Code, want)
		}
	}
}
