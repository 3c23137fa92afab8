package repository

import (
	"time"

	"smartcrop/entities"
)

type StatsRepository interface {
	// TouchUser records a login, creating the profile on first sight.
	TouchUser(uid string, at time.Time) (profile *entities.UserProfile, created bool, err error)
	// CountPrediction bumps the user's and the global prediction counters.
	CountPrediction(uid string) error
	Totals() (*entities.UsageStats, error)
	Users() ([]entities.UserProfile, error)
}
