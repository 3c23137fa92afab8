package agronomy

import "sort"

const maxFertilizerPicks = 2

// Recommend returns the two cheapest fertilizers listed for crop. Equal
// prices keep table order.
func (e *engine) Recommend(crop string) []FertilizerPick {
	var matches []FertilizerRecord
	for _, f := range e.cat.Fertilizers() {
		if f.Crop == crop {
			matches = append(matches, f)
		}
	}
	sort.SliceStable(matches, func(i, j int) bool { return matches[i].Price < matches[j].Price })

	out := []FertilizerPick{}
	for i := 0; i < len(matches) && i < maxFertilizerPicks; i++ {
		out = append(out, FertilizerPick{Name: matches[i].Name, Price: matches[i].Price, Use: matches[i].Use})
	}
	return out
}
