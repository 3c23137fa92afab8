package agronomy

import (
	"fmt"
	"time"
)

const (
	acidicNote   = "Soil is acidic vs crop optimum, consider liming if local advisories agree."
	alkalineNote = "Soil is alkaline vs crop optimum, consider sulfur or acidifying amendments as advised."
	neutralNote  = "Soil pH is within the typical optimal range."
)

// GeneratePlan lays out the crop's cultivation stages from plantingDate. The
// growing stage absorbs whatever the fixed stages leave of the crop's cycle,
// never dropping below MinGrowingDays. soil is accepted for future
// soil-specific adjustments and does not change the plan.
func (e *engine) GeneratePlan(crop string, plantingDate time.Time, soil SoilType, pH Optional) CultivationPlan {
	_ = soil
	duration := e.cat.Duration(crop)
	stages := e.cat.Template(crop)

	growing := duration - fixedStageDays(stages)
	if growing < MinGrowingDays {
		growing = MinGrowingDays
	}
	for i := range stages {
		if stages[i].Stage == GrowingStage {
			stages[i].DurationDays = growing
			stages[i].Details = fmt.Sprintf("%s (Adjusted for %s: %d days)", stages[i].Details, crop, growing)
			break
		}
	}

	return CultivationPlan{
		CropName:             crop,
		DurationDays:         duration,
		EstimatedHarvestDate: plantingDate.AddDate(0, 0, duration),
		Stages:               stages,
		SoilNotes:            e.soilNotes(crop, pH),
	}
}

func (e *engine) soilNotes(crop string, pH Optional) []string {
	v, ok := pH.Get()
	if !ok {
		return []string{}
	}
	lo, hi := defaultPHMinAdvice, defaultPHMaxAdvice
	if cp, found := e.cat.Crop(crop); found {
		lo, hi = cp.OptimalPH.Min, cp.OptimalPH.Max
	}
	switch {
	case v < lo:
		return []string{acidicNote}
	case v > hi:
		return []string{alkalineNote}
	default:
		return []string{neutralNote}
	}
}
