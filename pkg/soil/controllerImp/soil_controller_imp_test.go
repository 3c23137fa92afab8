package controllerImp

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"smartcrop/pkg/soil"
	"smartcrop/pkg/upstream"
)

func newCtrl(t *testing.T) *soilCtrl {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/search":
			if r.URL.Query().Get("q") == "Pune" {
				w.Write([]byte(`[{"lat":"18.52","lon":"73.85","display_name":"Pune"}]`))
				return
			}
			w.Write([]byte(`[]`))
		default:
			w.WriteHeader(http.StatusServiceUnavailable)
		}
	}))
	t.Cleanup(srv.Close)
	api := upstream.New("soil-ctrl", upstream.Options{FailureThreshold: 100})
	return &soilCtrl{svc: soil.NewService(soil.NewGeocoder(api, srv.URL, 1000), soil.NewSoilGrids(api, srv.URL))}
}

func TestSuggest(t *testing.T) {
	h := newCtrl(t)
	e := echo.New()
	cases := []struct {
		url  string
		want int
	}{
		{"/soil?location=Pune", http.StatusOK},
		{"/soil?lat=10&lon=20", http.StatusOK},
		{"/soil?location=Atlantis", http.StatusNotFound},
		{"/soil", http.StatusBadRequest},
		{"/soil?lat=x&lon=1", http.StatusBadRequest},
		{"/soil?lat=91&lon=1", http.StatusBadRequest},
	}
	for _, tc := range cases {
		rec := httptest.NewRecorder()
		if err := h.Suggest(e.NewContext(httptest.NewRequest(http.MethodGet, tc.url, nil), rec)); err != nil {
			t.Fatal(err)
		}
		if rec.Code != tc.want {
			t.Errorf("%s: status %d, want %d (%s)", tc.url, rec.Code, tc.want, rec.Body)
		}
	}
}

func TestSuggestFallsBackToCityTable(t *testing.T) {
	h := newCtrl(t)
	rec := httptest.NewRecorder()
	if err := h.Suggest(echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/soil?location=Pune", nil), rec)); err != nil {
		t.Fatal(err)
	}
	var got soil.Suggestion
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	// soilgrids is down, so only the city table answers
	if got.RawPH != nil || got.SuggestedPH == nil || *got.SuggestedPH != 7.0 {
		t.Fatalf("got %+v", got)
	}
}
