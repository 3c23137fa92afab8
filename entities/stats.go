package entities

import "time"

// UsageStatsID is the key of the single global counters row.
const UsageStatsID = 1

type UsageStats struct {
	ID               uint      `gorm:"primaryKey" json:"-"`
	TotalUsers       int       `json:"total_users"`
	TotalLogins      int       `json:"total_logins"`
	TotalPredictions int       `json:"total_predictions"`
	UpdatedAt        time.Time `json:"updated_at"`
}
