package soil

import (
	"math"
	"strings"
	"unicode/utf16"

	"smartcrop/pkg/agronomy"
)

const (
	MinPH = 5.5
	MaxPH = 8.5
)

var cityPH = map[string]float64{
	"chennai":   6.2,
	"mumbai":    6.8,
	"delhi":     7.1,
	"bangalore": 6.7,
	"kolkata":   6.3,
	"hyderabad": 6.6,
	"pune":      7.0,
	"jaipur":    7.1,
	"lucknow":   6.4,
}

// CityDefaultPH suggests a pH for a place: the known-city table first, then
// the measured value clamped to [MinPH, MaxPH], then a stable value derived
// from the name. An empty name gives an absent reading.
func CityDefaultPH(city string, raw agronomy.Optional) agronomy.Optional {
	key := strings.ToLower(strings.TrimSpace(city))
	if key == "" {
		return agronomy.None()
	}
	if v, ok := cityPH[key]; ok {
		return present(v)
	}
	if raw.Present() {
		v, _ := raw.Clamp(MinPH, MaxPH).Get()
		return present(v)
	}
	var seed uint32
	for _, u := range utf16.Encode([]rune(key)) {
		seed = seed*31 + uint32(u)
	}
	frac := float64(seed%1000) / 999
	return present(MinPH + frac*(MaxPH-MinPH))
}

func present(v float64) agronomy.Optional {
	o, _ := agronomy.Measure(math.Round(math.Max(MinPH, math.Min(MaxPH, v))*100) / 100)
	return o
}
