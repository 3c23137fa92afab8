// Package soil resolves locations and suggests a soil pH for them.
package soil

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/time/rate"

	"smartcrop/pkg/upstream"
)

var ErrCityNotFound = errors.New("city not found")

type Location struct {
	Lat         float64 `json:"lat"`
	Lon         float64 `json:"lon"`
	DisplayName string  `json:"display_name"`
}

// Geocoder wraps Nominatim search. Nominatim's usage policy allows one
// request per second, so calls are paced by a limiter and results cached.
type Geocoder struct {
	api     *upstream.Client
	baseURL string
	limiter *rate.Limiter
	cache   *lru.Cache[string, Location]
}

func NewGeocoder(api *upstream.Client, baseURL string, rps float64) *Geocoder {
	if rps <= 0 {
		rps = 1
	}
	cache, _ := lru.New[string, Location](512)
	return &Geocoder{
		api:     api,
		baseURL: strings.TrimRight(baseURL, "/"),
		limiter: rate.NewLimiter(rate.Limit(rps), 1),
		cache:   cache,
	}
}

func (g *Geocoder) Lookup(ctx context.Context, city string) (Location, error) {
	key := strings.ToLower(strings.TrimSpace(city))
	if key == "" {
		return Location{}, ErrCityNotFound
	}
	if loc, ok := g.cache.Get(key); ok {
		return loc, nil
	}
	if err := g.limiter.Wait(ctx); err != nil {
		return Location{}, fmt.Errorf("geocode %q: %w", city, err)
	}
	var hits []struct {
		Lat         string `json:"lat"`
		Lon         string `json:"lon"`
		DisplayName string `json:"display_name"`
	}
	q := url.Values{"q": {strings.TrimSpace(city)}, "format": {"json"}, "limit": {"1"}}
	if err := g.api.GetJSON(ctx, g.baseURL+"/search", q, nil, &hits); err != nil {
		return Location{}, fmt.Errorf("geocode %q: %w", city, err)
	}
	if len(hits) == 0 {
		return Location{}, ErrCityNotFound
	}
	lat, err1 := strconv.ParseFloat(hits[0].Lat, 64)
	lon, err2 := strconv.ParseFloat(hits[0].Lon, 64)
	if err1 != nil || err2 != nil {
		return Location{}, fmt.Errorf("geocode %q: bad coordinates %q,%q", city, hits[0].Lat, hits[0].Lon)
	}
	loc := Location{Lat: lat, Lon: lon, DisplayName: hits[0].DisplayName}
	g.cache.Add(key, loc)
	return loc, nil
}
