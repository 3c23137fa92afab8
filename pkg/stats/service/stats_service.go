package service

import (
	"errors"

	"smartcrop/entities"
)

var ErrForbidden = errors.New("admin access denied")

type Summary struct {
	TotalUsers         int                    `json:"total_users"`
	TotalLogins        int                    `json:"total_logins"`
	TotalPredictions   int                    `json:"total_predictions"`
	AveragePredictions float64                `json:"average_predictions_per_user"`
	Users              []entities.UserProfile `json:"users"`
}

type StatsService interface {
	Login(uid string) (*entities.UserProfile, error)
	CountPrediction(uid string) error
	// Summary checks the admin password before reading the counters.
	Summary(password string) (*Summary, error)
}
