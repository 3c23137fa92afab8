package agronomy

import (
	"fmt"
	"math"
	"strings"
)

const (
	GrowingStage       = "Growing & Maintenance"
	DefaultDuration    = 100
	MinGrowingDays     = 10
	SuitabilityCutoff  = 60
	defaultPHMinAdvice = 6.0
	defaultPHMaxAdvice = 7.5
)

// Catalog holds the reference tables. It is built once and never mutated;
// every accessor hands out copies.
type Catalog struct {
	crops       []CropProfile
	byName      map[string]int
	byLower     map[string]int
	fertilizers []FertilizerRecord
	durations   map[string]int
	templates   map[string][]CultivationStage
}

// NewCatalog validates the tables and builds an immutable catalog. Crop order
// is preserved and is the tie-break order for ranking.
func NewCatalog(crops []CropProfile, fertilizers []FertilizerRecord, durations map[string]int, templates map[string][]CultivationStage) (*Catalog, error) {
	c := &Catalog{
		byName:    make(map[string]int, len(crops)),
		byLower:   make(map[string]int, len(crops)),
		durations: make(map[string]int, len(durations)),
		templates: make(map[string][]CultivationStage, len(templates)),
	}
	for i, cp := range crops {
		if strings.TrimSpace(cp.Name) == "" {
			return nil, fmt.Errorf("crop #%d: empty name", i+1)
		}
		if _, dup := c.byName[cp.Name]; dup {
			return nil, fmt.Errorf("crop %q: duplicate name", cp.Name)
		}
		if !cp.OptimalTemp.finite() {
			return nil, fmt.Errorf("crop %q: temperature range %v..%v is not finite", cp.Name, cp.OptimalTemp.Min, cp.OptimalTemp.Max)
		}
		if !cp.OptimalPH.finite() {
			return nil, fmt.Errorf("crop %q: pH range %v..%v is not finite", cp.Name, cp.OptimalPH.Min, cp.OptimalPH.Max)
		}
		if cp.OptimalTemp.Min > cp.OptimalTemp.Max {
			return nil, fmt.Errorf("crop %q: temperature range %v > %v", cp.Name, cp.OptimalTemp.Min, cp.OptimalTemp.Max)
		}
		if cp.OptimalPH.Min > cp.OptimalPH.Max {
			return nil, fmt.Errorf("crop %q: pH range %v > %v", cp.Name, cp.OptimalPH.Min, cp.OptimalPH.Max)
		}
		if cp.BaseScore < 0 || cp.BaseScore > 100 {
			return nil, fmt.Errorf("crop %q: base score %d outside [0,100]", cp.Name, cp.BaseScore)
		}
		c.byName[cp.Name] = i
		// first spelling wins for case-insensitive lookups
		if _, ok := c.byLower[strings.ToLower(cp.Name)]; !ok {
			c.byLower[strings.ToLower(cp.Name)] = i
		}
		c.crops = append(c.crops, cp.clone())
	}
	for i, f := range fertilizers {
		if !(f.Price > 0) || math.IsInf(f.Price, 0) {
			return nil, fmt.Errorf("fertilizer #%d (%s/%s): price must be positive", i+1, f.Crop, f.Name)
		}
		c.fertilizers = append(c.fertilizers, f)
	}
	for name, stages := range templates {
		if len(stages) == 0 {
			return nil, fmt.Errorf("template %q: no stages", name)
		}
		growing := 0
		for _, s := range stages {
			if s.DurationDays < 0 {
				return nil, fmt.Errorf("template %q: stage %q has negative duration", name, s.Stage)
			}
			if s.Stage == GrowingStage {
				growing++
			}
		}
		if growing != 1 {
			return nil, fmt.Errorf("template %q: needs exactly one %q stage", name, GrowingStage)
		}
		c.templates[name] = append([]CultivationStage(nil), stages...)
		if _, ok := durations[name]; !ok {
			if fixed := fixedStageDays(stages); DefaultDuration < fixed+MinGrowingDays {
				return nil, fmt.Errorf("template %q: %d fixed stage days do not fit the default %d day cycle", name, fixed, DefaultDuration)
			}
		}
	}
	for name, days := range durations {
		fixed := fixedStageDays(c.template(name))
		if days < fixed+MinGrowingDays {
			return nil, fmt.Errorf("duration %q: %d days is shorter than %d fixed stage days plus %d growing days", name, days, fixed, MinGrowingDays)
		}
		c.durations[name] = days
	}
	return c, nil
}

func (c *Catalog) Len() int { return len(c.crops) }

// Crops returns the crop profiles in table order.
func (c *Catalog) Crops() []CropProfile {
	out := make([]CropProfile, len(c.crops))
	for i, cp := range c.crops {
		out[i] = cp.clone()
	}
	return out
}

// Crop is the exact, case-sensitive lookup used by the engine.
func (c *Catalog) Crop(name string) (CropProfile, bool) {
	i, ok := c.byName[name]
	if !ok {
		return CropProfile{}, false
	}
	return c.crops[i].clone(), true
}

// Find is the case-insensitive lookup for user-supplied names. Callers should
// pass the returned profile's Name on to the engine.
func (c *Catalog) Find(name string) (CropProfile, bool) {
	if cp, ok := c.Crop(name); ok {
		return cp, true
	}
	i, ok := c.byLower[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return CropProfile{}, false
	}
	return c.crops[i].clone(), true
}

func (c *Catalog) Fertilizers() []FertilizerRecord {
	return append([]FertilizerRecord(nil), c.fertilizers...)
}

// Duration returns the crop's cycle length, falling back to DefaultDuration.
func (c *Catalog) Duration(name string) int {
	if d, ok := c.durations[name]; ok {
		return d
	}
	return DefaultDuration
}

// Template returns a copy of the crop's stage template or the generic one.
func (c *Catalog) Template(name string) []CultivationStage {
	return append([]CultivationStage(nil), c.template(name)...)
}

func (c *Catalog) template(name string) []CultivationStage {
	if t, ok := c.templates[name]; ok {
		return t
	}
	return defaultTemplate
}

func (r Range) finite() bool { return isFinite(r.Min) && isFinite(r.Max) }

func isFinite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

func fixedStageDays(stages []CultivationStage) int {
	n := 0
	for _, s := range stages {
		if s.Stage != GrowingStage {
			n += s.DurationDays
		}
	}
	return n
}
