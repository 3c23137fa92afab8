package serviceImp

import (
	"time"

	"smartcrop/pkg/agronomy"
	"smartcrop/pkg/plan/service"
	"smartcrop/pkg/plan/types"
	"smartcrop/pkg/soil"
)

const DateLayout = "2006-01-02"

type PlanSvc struct{ adv agronomy.Advisor }

func NewPlanService(adv agronomy.Advisor) *PlanSvc { return &PlanSvc{adv: adv} }

var _ service.PlanService = (*PlanSvc)(nil)

// Build resolves the crop name case-insensitively and lays its cultivation
// plan out on the calendar from plantingDate.
func (s *PlanSvc) Build(crop string, plantingDate time.Time, st agronomy.SoilType, pH agronomy.Optional) (*types.CropPlan, error) {
	cp, ok := s.adv.Catalog().Find(crop)
	if !ok {
		return nil, service.ErrUnknownCrop
	}
	plan := s.adv.GeneratePlan(cp.Name, plantingDate, st, pH.Clamp(soil.MinPH, soil.MaxPH))
	return &types.CropPlan{
		Crop:                 plan.CropName,
		PlantingDate:         plantingDate.Format(DateLayout),
		DurationDays:         plan.DurationDays,
		EstimatedHarvestDate: plan.EstimatedHarvestDate.Format(DateLayout),
		Timeline:             Timeline(plantingDate, plan.Stages),
		SoilNotes:            plan.SoilNotes,
		Fertilizers:          s.adv.Recommend(cp.Name),
	}, nil
}

// Timeline places stages back to back starting at start.
func Timeline(start time.Time, stages []agronomy.CultivationStage) []types.StagePlan {
	out := make([]types.StagePlan, 0, len(stages))
	cur := start
	for _, st := range stages {
		end := cur.AddDate(0, 0, st.DurationDays)
		out = append(out, types.StagePlan{
			Stage:        st.Stage,
			StartDate:    cur.Format(DateLayout),
			EndDate:      end.Format(DateLayout),
			DurationDays: st.DurationDays,
			Details:      st.Details,
		})
		cur = end
	}
	return out
}
