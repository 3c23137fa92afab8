package soil

import (
	"context"
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"smartcrop/pkg/agronomy"
	"smartcrop/pkg/logging"
	"smartcrop/pkg/upstream"
)

var soilDepths = []string{"0-5cm", "5-15cm", "15-30cm"}

// SoilGrids reads topsoil pH (phh2o) from the ISRIC SoilGrids API.
type SoilGrids struct {
	api     *upstream.Client
	baseURL string
	cache   *lru.Cache[string, agronomy.Optional]
}

func NewSoilGrids(api *upstream.Client, baseURL string) *SoilGrids {
	cache, _ := lru.New[string, agronomy.Optional](1024)
	return &SoilGrids{api: api, baseURL: strings.TrimRight(baseURL, "/"), cache: cache}
}

type sgResponse struct {
	Properties struct {
		Layers []struct {
			Name        string `json:"name"`
			UnitMeasure struct {
				DFactor float64 `json:"d_factor"`
			} `json:"unit_measure"`
			Depths []struct {
				Label string `json:"label"`
				Range struct {
					Top    float64 `json:"top_depth"`
					Bottom float64 `json:"bottom_depth"`
				} `json:"range"`
				Values struct {
					Mean *float64 `json:"mean"`
				} `json:"values"`
			} `json:"depths"`
		} `json:"layers"`
	} `json:"properties"`
}

// PH returns the depth-weighted mean pH at the point, rounded to two
// decimals. Failures and empty cells give an absent reading. Only answers the
// API actually gave are cached, so a failed point is retried next time.
func (s *SoilGrids) PH(ctx context.Context, lat, lon float64) agronomy.Optional {
	key := fmt.Sprintf("%.3f,%.3f", lat, lon)
	if v, ok := s.cache.Get(key); ok {
		return v
	}
	ph, err := s.fetch(ctx, lat, lon)
	if err != nil {
		logging.Warn().Err(err).Str("point", key).Msg("[soil] soilgrids lookup failed")
		return agronomy.None()
	}
	s.cache.Add(key, ph)
	return ph
}

func (s *SoilGrids) fetch(ctx context.Context, lat, lon float64) (agronomy.Optional, error) {
	q := url.Values{
		"lat":      {strconv.FormatFloat(lat, 'f', -1, 64)},
		"lon":      {strconv.FormatFloat(lon, 'f', -1, 64)},
		"property": {"phh2o"},
		"depth":    soilDepths,
		"value":    {"mean"},
	}
	var raw sgResponse
	if err := s.api.GetJSON(ctx, s.baseURL+"/properties/query", q, nil, &raw); err != nil {
		return agronomy.None(), err
	}
	return weightedPH(raw), nil
}

func weightedPH(raw sgResponse) agronomy.Optional {
	for _, layer := range raw.Properties.Layers {
		if layer.Name != "phh2o" {
			continue
		}
		d := layer.UnitMeasure.DFactor
		if d <= 0 {
			d = 10
		}
		var sum, weight float64
		for _, dp := range layer.Depths {
			if dp.Values.Mean == nil {
				continue
			}
			w := dp.Range.Bottom - dp.Range.Top
			if w <= 0 {
				w = 1
			}
			sum += *dp.Values.Mean / d * w
			weight += w
		}
		if weight == 0 {
			return agronomy.None()
		}
		v, err := agronomy.Measure(math.Round(sum/weight*100) / 100)
		if err != nil {
			return agronomy.None()
		}
		return v
	}
	return agronomy.None()
}
