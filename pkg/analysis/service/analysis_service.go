package service

import (
	"context"

	"smartcrop/entities"
	"smartcrop/pkg/agronomy"
)

type Input struct {
	Crop        string
	SoilType    agronomy.SoilType
	Temperature float64
	PH          agronomy.Optional
	Season      agronomy.Season
	Location    string
}

type Outcome struct {
	ID            string                     `json:"id,omitempty"`
	Crop          string                     `json:"crop"`
	SoilType      agronomy.SoilType          `json:"soil_type"`
	Temperature   float64                    `json:"temperature"`
	PH            *float64                   `json:"ph"`
	Season        agronomy.Season            `json:"season,omitempty"`
	Analysis      agronomy.SuitabilityResult `json:"analysis"`
	SuitableCrops []agronomy.RankedCrop      `json:"suitable_crops"`
}

type AnalysisService interface {
	// Evaluate scores the crop and ranks the catalog without recording anything.
	Evaluate(in Input) Outcome
	// Analyze is Evaluate plus a recorded prediction for uid.
	Analyze(ctx context.Context, uid string, in Input) (*Outcome, error)
	History(uid string, limit int) ([]entities.Prediction, error)
}
