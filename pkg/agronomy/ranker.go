package agronomy

import "sort"

// Rank scores every crop in table order and returns the suitable ones, best
// first. Equal scores keep table order.
func (e *engine) Rank(soil SoilType, temperature float64, pH Optional, season Season) []RankedCrop {
	out := []RankedCrop{}
	for _, cp := range e.cat.Crops() {
		res := e.Score(cp.Name, soil, temperature, pH, season)
		if !res.Suitable {
			continue
		}
		out = append(out, RankedCrop{CropProfile: cp, Score: res.Score})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	return out
}
