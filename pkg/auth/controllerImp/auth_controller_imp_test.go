package controllerImp

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/labstack/echo/v4"

	"smartcrop/database"
	"smartcrop/entities"
	"smartcrop/pkg/stats/repositoryImp"
	"smartcrop/pkg/stats/serviceImp"
)

func TestDevLoginRecordsUser(t *testing.T) {
	db, err := database.Open(filepath.Join(t.TempDir(), "auth.db"))
	if err != nil {
		t.Fatal(err)
	}
	h := NewAuthController(serviceImp.NewStatsService(repositoryImp.New(db), ""), false)
	e := echo.New()

	for i := 1; i <= 2; i++ {
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/devlogin?uid=alice", nil), rec)
		c.Set("uid", "dev-user")
		if err := h.DevLogin(c); err != nil {
			t.Fatal(err)
		}
		var out struct {
			UID     string               `json:"uid"`
			Profile entities.UserProfile `json:"profile"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
			t.Fatal(err)
		}
		if out.UID != "alice" || out.Profile.LoginsCount != i {
			t.Fatalf("login %d: %+v", i, out)
		}
	}
	var s entities.UsageStats
	db.First(&s, entities.UsageStatsID)
	if s.TotalUsers != 1 || s.TotalLogins != 2 {
		t.Fatalf("stats = %+v", s)
	}
}

func TestHeaderAuthIgnoresQuery(t *testing.T) {
	db, err := database.Open(filepath.Join(t.TempDir(), "auth2.db"))
	if err != nil {
		t.Fatal(err)
	}
	h := NewAuthController(serviceImp.NewStatsService(repositoryImp.New(db), ""), true)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/devlogin?uid=mallory", nil), rec)
	c.Set("uid", "carol")
	if err := h.DevLogin(c); err != nil {
		t.Fatal(err)
	}
	var out map[string]any
	json.Unmarshal(rec.Body.Bytes(), &out)
	if out["uid"] != "carol" || len(rec.Result().Cookies()) != 0 {
		t.Fatalf("out = %v", out)
	}
}
