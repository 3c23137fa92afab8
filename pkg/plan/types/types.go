package types

import "smartcrop/pkg/agronomy"

// StagePlan is one cultivation stage placed on the calendar. EndDate is the
// day the next stage starts.
type StagePlan struct {
	Stage        string `json:"stage"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	DurationDays int    `json:"duration_days"`
	Details      string `json:"details"`
}

type CropPlan struct {
	Crop                 string                    `json:"crop"`
	PlantingDate         string                    `json:"planting_date"`
	DurationDays         int                       `json:"duration_days"`
	EstimatedHarvestDate string                    `json:"estimated_harvest_date"`
	Timeline             []StagePlan               `json:"timeline"`
	SoilNotes            []string                  `json:"soil_notes"`
	Fertilizers          []agronomy.FertilizerPick `json:"fertilizers"`
}
