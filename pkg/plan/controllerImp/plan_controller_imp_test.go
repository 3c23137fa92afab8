package controllerImp

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"smartcrop/pkg/agronomy"
	"smartcrop/pkg/plan/serviceImp"
	"smartcrop/pkg/plan/types"
)

func get(t *testing.T, name, query string) *httptest.ResponseRecorder {
	t.Helper()
	h := NewPlanCtrl(serviceImp.NewPlanService(agronomy.New(nil)), nil)
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/crops/"+name+"/plan"+query, nil), rec)
	c.SetParamNames("name")
	c.SetParamValues(name)
	if err := h.Detail(c); err != nil {
		t.Fatal(err)
	}
	return rec
}

func TestDetail(t *testing.T) {
	rec := get(t, "wheat", "?planting_date=2024-11-01&ph=8.0")
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d: %s", rec.Code, rec.Body)
	}
	var p types.CropPlan
	if err := json.Unmarshal(rec.Body.Bytes(), &p); err != nil {
		t.Fatal(err)
	}
	if p.Crop != "Wheat" || p.DurationDays != 120 || p.EstimatedHarvestDate != "2025-03-01" {
		t.Fatalf("plan = %+v", p)
	}
	if len(p.SoilNotes) != 1 || len(p.Fertilizers) != 2 || len(p.Timeline) != 4 {
		t.Fatalf("plan = %+v", p)
	}
}

func TestDetailErrors(t *testing.T) {
	cases := []struct {
		name, query string
		want        int
	}{
		{"Quinoa", "", http.StatusNotFound},
		{"Rice", "?planting_date=01/02/2024", http.StatusBadRequest},
		{"Rice", "?ph=acid", http.StatusBadRequest},
		{"Rice", "?ph=NaN", http.StatusBadRequest},
		{"Rice", "?soil_type=Peat", http.StatusBadRequest},
		{"Rice", "", http.StatusOK},
	}
	for _, tc := range cases {
		if rec := get(t, tc.name, tc.query); rec.Code != tc.want {
			t.Errorf("%s%s: status %d, want %d", tc.name, tc.query, rec.Code, tc.want)
		}
	}
}
