package controllerImp

import (
	"smartcrop/pkg/agronomy"
	"smartcrop/pkg/analysis/service"
)

// AnalyzeReq is the body of POST /analyze. The report endpoint embeds it.
type AnalyzeReq struct {
	Crop        string   `json:"crop" validate:"required"`
	SoilType    string   `json:"soil_type" validate:"required,soiltype"`
	Temperature *float64 `json:"temperature" validate:"required,gte=-60,lte=70"`
	PH          *float64 `json:"ph" validate:"omitempty,gte=0,lte=14"`
	Season      string   `json:"season" validate:"season"`
	Location    string   `json:"location" validate:"max=120"`
}

// Input converts a validated request.
func (r AnalyzeReq) Input() (service.Input, error) {
	ph, err := agronomy.FromPtr(r.PH)
	if err != nil {
		return service.Input{}, err
	}
	soilType, _ := agronomy.ParseSoilType(r.SoilType)
	season, _ := agronomy.ParseSeason(r.Season)
	return service.Input{
		Crop:        r.Crop,
		SoilType:    soilType,
		Temperature: *r.Temperature,
		PH:          ph,
		Season:      season,
		Location:    r.Location,
	}, nil
}
