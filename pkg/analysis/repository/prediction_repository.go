package repository

import "smartcrop/entities"

type PredictionRepository interface {
	Create(p *entities.Prediction) error
	// ListByUser returns the newest predictions first.
	ListByUser(uid string, limit int) ([]entities.Prediction, error)
}
