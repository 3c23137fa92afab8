package service

import (
	"errors"
	"time"

	"smartcrop/pkg/agronomy"
	"smartcrop/pkg/plan/types"
)

var ErrUnknownCrop = errors.New("crop not found")

type PlanService interface {
	Build(crop string, plantingDate time.Time, soil agronomy.SoilType, pH agronomy.Optional) (*types.CropPlan, error)
}
