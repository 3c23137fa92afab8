package entities

import "time"

type UserProfile struct {
	UserID           string    `gorm:"primaryKey" json:"user_id"`
	DisplayName      string    `json:"display_name,omitempty"`
	PredictionsCount int       `json:"predictions_count"`
	LoginsCount      int       `json:"logins_count"`
	CreatedAt        time.Time `json:"created_at"`
	LastLoginAt      time.Time `json:"last_login_at"`
}
