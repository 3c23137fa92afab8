package agronomy

import (
	"errors"
	"math"
	"strings"
	"time"
)

type SoilType string

const (
	Sandy     SoilType = "Sandy"
	Clay      SoilType = "Clay"
	Loam      SoilType = "Loam"
	SandyLoam SoilType = "Sandy Loam"
	ClayLoam  SoilType = "Clay Loam"
	SandyClay SoilType = "Sandy Clay"
	Silt      SoilType = "Silt"
	SiltLoam  SoilType = "Silt Loam"
	SiltClay  SoilType = "Silt Clay"
)

// SoilTypes lists every soil label the application offers, in display order.
var SoilTypes = []SoilType{Sandy, Clay, Loam, SandyLoam, ClayLoam, SandyClay, Silt, SiltLoam, SiltClay}

type Season string

const (
	NoSeason  Season = ""
	Monsoon   Season = "Monsoon"
	Winter    Season = "Winter"
	Summer    Season = "Summer"
	YearRound Season = "Year Round" // matches every season
)

// Seasons are the selectable seasons. YearRound only appears in crop profiles.
var Seasons = []Season{Monsoon, Winter, Summer}

type WaterRequirement string

const (
	WaterLow      WaterRequirement = "Low"
	WaterModerate WaterRequirement = "Moderate"
	WaterHigh     WaterRequirement = "High"
)

func ParseSoilType(s string) (SoilType, bool) {
	for _, st := range SoilTypes {
		if strings.EqualFold(strings.TrimSpace(s), string(st)) {
			return st, true
		}
	}
	return "", false
}

// ParseSeason accepts the selectable seasons and the "Year Round" sentinel.
func ParseSeason(s string) (Season, bool) {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, string(YearRound)) {
		return YearRound, true
	}
	for _, se := range Seasons {
		if strings.EqualFold(s, string(se)) {
			return se, true
		}
	}
	return NoSeason, false
}

func ParseWaterRequirement(s string) (WaterRequirement, bool) {
	for _, w := range []WaterRequirement{WaterLow, WaterModerate, WaterHigh} {
		if strings.EqualFold(strings.TrimSpace(s), string(w)) {
			return w, true
		}
	}
	return "", false
}

// Range is a closed interval [Min, Max].
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

func (r Range) Contains(v float64) bool { return !(v < r.Min || v > r.Max) }

type CropProfile struct {
	Name             string           `json:"name"`
	SoilTypes        []SoilType       `json:"soil_types"`
	OptimalTemp      Range            `json:"optimal_temp"`
	OptimalPH        Range            `json:"optimal_ph"`
	WaterRequirement WaterRequirement `json:"water_requirement"`
	Seasons          []Season         `json:"season"`
	BaseScore        int              `json:"base_score"`
}

func (c CropProfile) acceptsSoil(s SoilType) bool {
	for _, st := range c.SoilTypes {
		if st == s {
			return true
		}
	}
	return false
}

func (c CropProfile) growsIn(s Season) bool {
	for _, se := range c.Seasons {
		if se == s || se == YearRound {
			return true
		}
	}
	return false
}

func (c CropProfile) clone() CropProfile {
	out := c
	out.SoilTypes = append([]SoilType(nil), c.SoilTypes...)
	out.Seasons = append([]Season(nil), c.Seasons...)
	return out
}

type SuitabilityResult struct {
	Suitable  bool     `json:"suitable"`
	Score     int      `json:"score"`
	Penalties []string `json:"penalties,omitempty"`
	Message   string   `json:"message"`
}

// RankedCrop is a suitable crop with its post-penalty score.
type RankedCrop struct {
	CropProfile
	Score int `json:"score"`
}

type CultivationStage struct {
	Stage        string `json:"stage"`
	DurationDays int    `json:"duration_days"`
	Details      string `json:"details"`
}

type CultivationPlan struct {
	CropName             string             `json:"crop_name"`
	DurationDays         int                `json:"duration_days"`
	EstimatedHarvestDate time.Time          `json:"estimated_harvest_date"`
	Stages               []CultivationStage `json:"stages"`
	SoilNotes            []string           `json:"soil_notes"`
}

type FertilizerRecord struct {
	Crop  string  `json:"crop"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Use   string  `json:"use"`
}

// FertilizerPick is the caller-facing view of a recommended fertilizer.
type FertilizerPick struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Use   string  `json:"use"`
}

var ErrInvalidReading = errors.New("reading is not a finite number")

// Optional is a numeric reading that may be absent. The zero value is absent.
type Optional struct {
	value float64
	ok    bool
}

// None is the absent reading.
func None() Optional { return Optional{} }

// Measure wraps a present reading. NaN and infinities are rejected so they can
// never be mistaken for "not provided".
func Measure(v float64) (Optional, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Optional{}, ErrInvalidReading
	}
	return Optional{value: v, ok: true}, nil
}

// FromPtr converts a decoded JSON pointer into a reading.
func FromPtr(p *float64) (Optional, error) {
	if p == nil {
		return None(), nil
	}
	return Measure(*p)
}

func (o Optional) Get() (float64, bool) { return o.value, o.ok }

func (o Optional) Present() bool { return o.ok }

// Ptr returns nil for an absent reading.
func (o Optional) Ptr() *float64 {
	if !o.ok {
		return nil
	}
	v := o.value
	return &v
}

// Clamp limits a present reading to [lo, hi]. Absent stays absent.
func (o Optional) Clamp(lo, hi float64) Optional {
	if !o.ok {
		return o
	}
	return Optional{value: math.Max(lo, math.Min(hi, o.value)), ok: true}
}
