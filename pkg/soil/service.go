package soil

import (
	"context"
	"errors"
	"strconv"
	"strings"
)

var (
	ErrNoPlace        = errors.New("provide a city name or latitude/longitude")
	ErrBadCoordinates = errors.New("latitude must be within [-90,90] and longitude within [-180,180]")
)

// Query names a place by city or by coordinates. A city wins when both are set.
type Query struct {
	Location string
	Lat, Lon *float64
}

type Suggestion struct {
	Location    string   `json:"location"`
	Lat         float64  `json:"lat"`
	Lon         float64  `json:"lon"`
	DisplayName string   `json:"display_name,omitempty"`
	RawPH       *float64 `json:"raw_ph"`
	SuggestedPH *float64 `json:"suggested_ph"`
}

type Service struct {
	geo   *Geocoder
	grids *SoilGrids
}

func NewService(geo *Geocoder, grids *SoilGrids) *Service {
	return &Service{geo: geo, grids: grids}
}

func (s *Service) Suggest(ctx context.Context, q Query) (*Suggestion, error) {
	out := &Suggestion{Location: strings.TrimSpace(q.Location)}
	switch {
	case out.Location != "":
		loc, err := s.geo.Lookup(ctx, out.Location)
		if err != nil {
			return nil, err
		}
		out.Lat, out.Lon, out.DisplayName = loc.Lat, loc.Lon, loc.DisplayName
	case q.Lat != nil && q.Lon != nil:
		if *q.Lat < -90 || *q.Lat > 90 || *q.Lon < -180 || *q.Lon > 180 {
			return nil, ErrBadCoordinates
		}
		out.Lat, out.Lon = *q.Lat, *q.Lon
		out.Location = strconv.FormatFloat(out.Lat, 'f', -1, 64) + "," + strconv.FormatFloat(out.Lon, 'f', -1, 64)
	default:
		return nil, ErrNoPlace
	}
	raw := s.grids.PH(ctx, out.Lat, out.Lon)
	out.RawPH = raw.Ptr()
	out.SuggestedPH = CityDefaultPH(out.Location, raw).Ptr()
	return out, nil
}
