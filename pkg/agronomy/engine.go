package agronomy

import (
	"strconv"
	"time"
)

// Advisor scores crops against growing conditions and produces the
// supplementary plan and fertilizer detail for a chosen crop. Implementations
// are pure; concurrent use needs no coordination.
type Advisor interface {
	Score(crop string, soil SoilType, temperature float64, pH Optional, season Season) SuitabilityResult
	Rank(soil SoilType, temperature float64, pH Optional, season Season) []RankedCrop
	GeneratePlan(crop string, plantingDate time.Time, soil SoilType, pH Optional) CultivationPlan
	Recommend(crop string) []FertilizerPick
	Catalog() *Catalog
}

type engine struct {
	cat *Catalog
}

// New builds an Advisor over cat. A nil catalog means the built-in tables.
func New(cat *Catalog) Advisor {
	if cat == nil {
		cat = DefaultCatalog()
	}
	return &engine{cat: cat}
}

func (e *engine) Catalog() *Catalog { return e.cat }

// num renders a number the way users typed it: 25, 6.5, 40.25.
func num(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }
