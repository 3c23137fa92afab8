package agronomy

import "fmt"

const (
	soilPenalty    = 30
	tempPenalty    = 20
	phPenalty      = 15
	seasonPenalty  = 10
	unknownCropMsg = "Crop not found in database"
)

// Score rates one crop against the given conditions. Penalties are additive
// and independent; pH and season rules are skipped when those inputs are
// absent. Unknown crops score zero rather than failing.
//
// A NaN temperature compares false against both bounds and so never triggers
// the temperature penalty; callers validate temperature before scoring.
func (e *engine) Score(crop string, soil SoilType, temperature float64, pH Optional, season Season) SuitabilityResult {
	cp, ok := e.cat.Crop(crop)
	if !ok {
		return SuitabilityResult{Suitable: false, Score: 0, Message: unknownCropMsg}
	}

	score := cp.BaseScore
	penalties := []string{}

	if !cp.acceptsSoil(soil) {
		score -= soilPenalty
		penalties = append(penalties, fmt.Sprintf("Soil type '%s' is not optimal for %s", soil, crop))
	}
	if temperature < cp.OptimalTemp.Min || temperature > cp.OptimalTemp.Max {
		score -= tempPenalty
		penalties = append(penalties, fmt.Sprintf("Temperature %s°C is outside optimal range (%s-%s°C)",
			num(temperature), num(cp.OptimalTemp.Min), num(cp.OptimalTemp.Max)))
	}
	if v, ok := pH.Get(); ok && !cp.OptimalPH.Contains(v) {
		score -= phPenalty
		penalties = append(penalties, fmt.Sprintf("pH %s is outside optimal range (%s-%s)",
			num(v), num(cp.OptimalPH.Min), num(cp.OptimalPH.Max)))
	}
	if season != NoSeason && !cp.growsIn(season) {
		score -= seasonPenalty
		penalties = append(penalties, fmt.Sprintf("Season '%s' is not optimal for %s", season, crop))
	}

	if score < 0 {
		score = 0
	}
	suitable := score >= SuitabilityCutoff
	msg := fmt.Sprintf("%s is not suitable for the given conditions", crop)
	if suitable {
		msg = fmt.Sprintf("%s is suitable for the given conditions", crop)
	}
	return SuitabilityResult{Suitable: suitable, Score: score, Penalties: penalties, Message: msg}
}
